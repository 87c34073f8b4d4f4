package routes

import (
	"context"
	"log"
	_ "todotech_backend/docs" // This will be auto-generated
	"todotech_backend/internal/adapter/http/handlers"
	"todotech_backend/internal/adapter/persistence/repository"
	"todotech_backend/internal/infrastructure/config"
	"todotech_backend/internal/infrastructure/database"
	"todotech_backend/internal/infrastructure/payments"
	"todotech_backend/internal/usecase"
	"todotech_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) error {
	uc, err := newPaymentIntentUseCase(context.Background(), cfg)
	if err != nil {
		return err
	}

	router := NewRouter(handlers.NewPaymentIntentHandler(uc))
	log.Printf("[payment][http] listening port=%s mock=%t", cfg.Port, cfg.MockMode)
	return router.Run(":" + cfg.Port)
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(paymentIntentHandler *handlers.PaymentIntentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentIntentRoutes(v1, paymentIntentHandler)
	return router
}

func newPaymentIntentUseCase(ctx context.Context, cfg config.Config) (*usecase.PaymentIntentUseCase, error) {
	registry := usecase.NewPaymentGatewayRegistry(newPaymentGateways(cfg)...)

	var repo interfaces.IPaymentIntentRepository
	if cfg.Persistence.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		repo = repository.NewPaymentIntentDynamoRepository(ddb, cfg.Persistence.PaymentIntentTable)
	} else {
		log.Printf("[payment][http] payment intent persistence disabled")
	}

	return usecase.NewPaymentIntentUseCase(registry, repo), nil
}

// newPaymentGateways returns the gateways that could be configured; a missing
// credential only disables that provider.
func newPaymentGateways(cfg config.Config) []interfaces.IPaymentGateway {
	var gateways []interfaces.IPaymentGateway

	stripeGateway, err := payments.NewStripeGateway(payments.StripeConfig{
		SecretKey: cfg.Stripe.SecretKey,
		APIBase:   cfg.Stripe.APIBase,
		MockMode:  cfg.MockMode,
	})
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		gateways = append(gateways, stripeGateway)
	}

	mpGateway, err := payments.NewMercadoPagoGateway(payments.MercadoPagoConfig{
		AccessToken:             cfg.MercadoPago.AccessToken,
		CashPaymentMethodID:     cfg.MercadoPago.CashPaymentMethodID,
		TransferPaymentMethodID: cfg.MercadoPago.TransferPaymentMethodID,
		MockMode:                cfg.MockMode,
	})
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateways = append(gateways, mpGateway)
	}

	return gateways
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

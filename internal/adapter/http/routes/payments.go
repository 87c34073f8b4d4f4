package routes

import (
	"todotech_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaymentIntents = "/payment-intents"
	PathOrders         = "/orders"
)

func addPaymentIntentRoutes(rg *gin.RouterGroup, h *handlers.PaymentIntentHandler) {
	intents := rg.Group(PathPaymentIntents)
	{
		intents.POST("", h.CreatePaymentIntent)
		intents.POST("/:id/confirm", h.ConfirmPaymentIntent)
		intents.GET("/:id", h.GetPaymentIntent)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id/payment-intents", h.ListPaymentIntentsByOrderID)
	}
}

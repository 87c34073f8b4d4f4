package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	request "todotech_backend/internal/adapter/http/dto/request"
	response "todotech_backend/internal/adapter/http/dto/response"
	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/usecase"
	"todotech_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentIntentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INTENT_INPUT", "Invalid payment intent payload", http.StatusBadRequest)
)

// PaymentIntentHandler handles HTTP requests for payment intents.
type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent
// @Description  Opens a payment intent with the gateway that supports the payment method.
// @Tags         payment-intents
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentIntentCreateRequest  true  "Payment intent"
// @Success      201      {object}  response.PaymentIntentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  response.PaymentIntentResponse
// @Router       /payment-intents [post]
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.PaymentIntentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidPaymentIntentPayload.HTTPStatus, errInvalidPaymentIntentPayload.ToHTTPError())
		return
	}

	req, err := payload.ToEntity()
	if err != nil {
		log.Printf("[payment][handler] create invalid payment method=%s", payload.PaymentMethod)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start order_id=%d method=%s", req.OrderID, req.PaymentMethod)

	res, err := h.usecase.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%d err=%v", req.OrderID, err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writePaymentIntent(c, http.StatusCreated, res)
}

// ConfirmPaymentIntent godoc
// @Summary      Confirm a payment intent
// @Tags         payment-intents
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true   "Payment intent id"
// @Param        request  body      request.PaymentConfirmRequest  false  "Confirmation"
// @Success      200      {object}  response.PaymentIntentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  response.PaymentIntentResponse
// @Router       /payment-intents/{id}/confirm [post]
func (h *PaymentIntentHandler) ConfirmPaymentIntent(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] confirm start payment_intent_id=%s", id)

	var payload request.PaymentConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[payment][handler] confirm invalid payload payment_intent_id=%s err=%v", id, err)
		c.JSON(errInvalidPaymentIntentPayload.HTTPStatus, errInvalidPaymentIntentPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Confirm(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_intent_id=%s err=%v", id, err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writePaymentIntent(c, http.StatusOK, res)
}

// GetPaymentIntent godoc
// @Summary      Get payment intent status
// @Tags         payment-intents
// @Produce      json
// @Param        id   path      string  true  "Payment intent id"
// @Success      200  {object}  response.PaymentIntentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  response.PaymentIntentResponse
// @Router       /payment-intents/{id} [get]
func (h *PaymentIntentHandler) GetPaymentIntent(c *gin.Context) {
	id := c.Param("id")

	res, err := h.usecase.GetStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] status failed payment_intent_id=%s err=%v", id, err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writePaymentIntent(c, http.StatusOK, res)
}

// ListPaymentIntentsByOrderID godoc
// @Summary      List payment intents of an order
// @Tags         payment-intents
// @Produce      json
// @Param        order_id  path      int  true  "Order id"
// @Success      200       {array}   response.PaymentIntentRecordResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payment-intents [get]
func (h *PaymentIntentHandler) ListPaymentIntentsByOrderID(c *gin.Context) {
	orderID, err := strconv.ParseInt(strings.TrimSpace(c.Param("order_id")), 10, 64)
	if err != nil {
		appErr := mapPaymentIntentError(usecase.ErrInvalidOrderID)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	records, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%d err=%v", orderID, err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntentRecords(records))
}

// writePaymentIntent answers 502 with the normalized body when the provider failed.
func writePaymentIntent(c *gin.Context, status int, res entities.PaymentIntentResponse) {
	if res.Failed() {
		log.Printf("[payment][handler] provider failure err=%s", res.ErrorMessage)
		status = http.StatusBadGateway
	} else {
		log.Printf("[payment][handler] success payment_intent_id=%s status=%s", res.PaymentIntentID, res.Status)
	}
	c.JSON(status, response.FromPaymentIntentResponse(res))
}

func mapPaymentIntentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, entities.ErrAmountPrecision):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT_PRECISION", "Amount has more decimals than the currency allows", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_CURRENCY", "Currency must be a three-letter ISO 4217 code", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPaymentIntentID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedPaymentMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Payment method not supported by any gateway", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentIntentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_INTENT_NOT_FOUND", "Payment intent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordsDisabled):
		return pkg.NewDomainErrorSimple("PAYMENT_RECORDS_DISABLED", "Payment intent records are not kept", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

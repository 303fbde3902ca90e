package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "moto_garage/internal/adapter/http/dto/request"
	response "moto_garage/internal/adapter/http/dto/response"
	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"
	"moto_garage/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// CanDeleteOrdersHeader is set by the upstream auth proxy for callers whose
// permission profile allows hard deletion on approved cancellations.
const CanDeleteOrdersHeader = "X-Can-Delete-Orders"

// OrderHandler handles HTTP requests for the order lifecycle: creation,
// status transitions, mid-repair services, finalization and cancellation.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	mechanicID := strings.TrimSpace(c.Query("mechanic_id"))
	if mechanicID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "mechanic_id query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	orders, err := h.usecase.ListByMechanic(c.Request.Context(), mechanicID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromOrder(o))
	}
	c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.Status, payload.Note)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	var payload request.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), payload.Note)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	var payload request.FinalizeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Finalize(c.Request.Context(), payload.ToCommand(c.Param("id")))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if payload.LaborCost < 0 || payload.PartsCost < 0 {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddService(
		c.Request.Context(),
		c.Param("id"),
		strings.TrimSpace(payload.Name),
		entities.CentsFromFloat(payload.LaborCost),
		entities.CentsFromFloat(payload.PartsCost),
	)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) RequestCancellation(c *gin.Context) {
	var payload request.CancellationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.RequestCancellation(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ResolveCancellation approves or rejects a pending cancellation. An approved
// cancellation with the delete capability removes the order entirely, so the
// response has no body in that case.
func (h *OrderHandler) ResolveCancellation(c *gin.Context) {
	var payload request.ResolveCancellationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	canDelete := strings.EqualFold(c.GetHeader(CanDeleteOrdersHeader), "true")
	order, err := h.usecase.ResolveCancellation(c.Request.Context(), c.Param("id"), *payload.Approve, canDelete)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if order == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(*order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderData),
		errors.Is(err, usecase.ErrInvalidServiceData),
		errors.Is(err, usecase.ErrInvalidAdvancePayment),
		errors.Is(err, usecase.ErrInvalidTotals),
		errors.Is(err, usecase.ErrEmptyCancellationReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Status is not part of the configured flow", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoOpTransition):
		return pkg.NewDomainErrorSimple("NO_OP_TRANSITION", "Order is already in the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoNextStatus):
		return pkg.NewDomainErrorSimple("NO_NEXT_STATUS", "Order status has no next status", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Order status changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrCancellationAlreadyRequested):
		return pkg.NewDomainErrorSimple("CANCELLATION_ALREADY_REQUESTED", "Cancellation already requested", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoCancellationPending):
		return pkg.NewDomainErrorSimple("NO_CANCELLATION_PENDING", "Order has no pending cancellation", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeleteNotAllowed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_ALLOWED", "Caller cannot delete orders", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

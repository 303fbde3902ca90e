package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "moto_garage/internal/adapter/http/dto/request"
	response "moto_garage/internal/adapter/http/dto/response"
	"moto_garage/internal/usecase"
	"moto_garage/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderRequestPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_REQUEST_INPUT", "Invalid order request payload", http.StatusBadRequest)
)

// OrderRequestHandler handles the auxiliary-mechanic approval workflow:
// submit a proposed order, list a master's queue, approve or reject.

type OrderRequestHandler struct {
	usecase usecase.IOrderRequestUseCase
}

func NewOrderRequestHandler(uc usecase.IOrderRequestUseCase) *OrderRequestHandler {
	return &OrderRequestHandler{usecase: uc}
}

func (h *OrderRequestHandler) SubmitRequest(c *gin.Context) {
	var payload request.SubmitOrderRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderRequestPayload.HTTPStatus, errInvalidOrderRequestPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidOrderRequestPayload.HTTPStatus, errInvalidOrderRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapOrderRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrderRequest(req))
}

func (h *OrderRequestHandler) ListRequests(c *gin.Context) {
	masterID := strings.TrimSpace(c.Query("master_id"))
	if masterID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "master_id query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	requests, err := h.usecase.ListPendingForMaster(c.Request.Context(), masterID)
	if err != nil {
		appErr := mapOrderRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderRequests(requests))
}

func (h *OrderRequestHandler) ApproveRequest(c *gin.Context) {
	req, order, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ApprovedOrderRequestResponse{
		Request: response.FromOrderRequest(req),
		Order:   response.FromOrder(order),
	})
}

func (h *OrderRequestHandler) RejectRequest(c *gin.Context) {
	var payload request.RejectOrderRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("EMPTY_REJECTION_NOTES", "Rejection notes are required", http.StatusBadRequest).ToHTTPError())
		return
	}

	req, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		appErr := mapOrderRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderRequest(req))
}

func mapOrderRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestData),
		errors.Is(err, usecase.ErrInvalidOrderData),
		errors.Is(err, usecase.ErrInvalidServiceData),
		errors.Is(err, usecase.ErrInvalidAdvancePayment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyRejectionNotes):
		return pkg.NewDomainErrorSimple("EMPTY_REJECTION_NOTES", "Rejection notes are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("ORDER_REQUEST_NOT_FOUND", "Order request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestAlreadyResolved):
		return pkg.NewDomainErrorSimple("ORDER_REQUEST_ALREADY_RESOLVED", "Order request already resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

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
	errInvalidSettlementPayload = pkg.NewDomainErrorSimple("INVALID_SETTLEMENT_INPUT", "Invalid settlement payload", http.StatusBadRequest)
)

// SettlementHandler handles commission earnings and master-to-auxiliary
// payment requests.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

func (h *SettlementHandler) GetEarnings(c *gin.Context) {
	earnings, err := h.usecase.PendingEarnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPendingEarnings(earnings))
}

func (h *SettlementHandler) InitiatePayment(c *gin.Context) {
	var payload request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettlementPayload.HTTPStatus, errInvalidSettlementPayload.ToHTTPError())
		return
	}

	pr, err := h.usecase.InitiatePayment(c.Request.Context(), payload.MasterID, payload.AuxiliaryID, payload.Notes)
	if err != nil {
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentRequest(pr))
}

func (h *SettlementHandler) AcceptPayment(c *gin.Context) {
	pr, err := h.usecase.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRequest(pr))
}

func (h *SettlementHandler) ListPaymentRequests(c *gin.Context) {
	auxiliaryID := strings.TrimSpace(c.Query("auxiliary_id"))
	if auxiliaryID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "auxiliary_id query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	requests, err := h.usecase.ListForAuxiliary(c.Request.Context(), auxiliaryID)
	if err != nil {
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRequests(requests))
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRequestNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUEST_NOT_FOUND", "Payment request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotMasterForAuxiliary):
		return pkg.NewDomainErrorSimple("NOT_MASTER_FOR_AUXILIARY", "Mechanic is not master for this auxiliary", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNothingToSettle):
		return pkg.NewDomainErrorSimple("NOTHING_TO_SETTLE", "No pending commission to settle", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyAccepted):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUEST_ALREADY_ACCEPTED", "Payment request already accepted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "moto_garage/internal/adapter/http/dto/request"
	response "moto_garage/internal/adapter/http/dto/response"
	"moto_garage/internal/usecase"
	"moto_garage/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUpdatePayload = pkg.NewDomainErrorSimple("INVALID_UPDATE_INPUT", "Invalid service update payload", http.StatusBadRequest)
)

// AuthorizationHandler handles staff-side service update proposals and the
// client portal behind public order tokens.
//
// Portal errors never reveal whether an order exists: a bad token is always
// 401, for real and fabricated ids alike.

type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase) *AuthorizationHandler {
	return &AuthorizationHandler{usecase: uc}
}

func (h *AuthorizationHandler) ProposeUpdate(c *gin.Context) {
	var payload request.ProposeUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUpdatePayload.HTTPStatus, errInvalidUpdatePayload.ToHTTPError())
		return
	}

	update, err := h.usecase.ProposeUpdate(c.Request.Context(), payload.ToCommand(c.Param("id")))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceUpdate(update))
}

func (h *AuthorizationHandler) GetBalance(c *gin.Context) {
	balance, err := h.usecase.BalanceDue(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBalanceDue(balance))
}

// GetPortal is the client view: order snapshot, proposed updates and the
// balance due, all behind the unguessable public token.
func (h *AuthorizationHandler) GetPortal(c *gin.Context) {
	order, updates, balance, err := h.usecase.OrderByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PortalResponse{
		Order:   response.FromOrderPublic(order),
		Updates: response.FromServiceUpdates(updates),
		Balance: response.FromBalanceDue(balance),
	})
}

func (h *AuthorizationHandler) ResolveUpdate(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DECISION", "Decision must be approve or reject", http.StatusBadRequest).ToHTTPError())
		return
	}

	update, err := h.usecase.Resolve(c.Request.Context(), c.Param("updateID"), c.Param("token"), payload.Decision)
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceUpdate(update))
}

func mapAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUpdateData),
		errors.Is(err, usecase.ErrInvalidEstimatedPrice),
		errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPublicToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid access token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUpdateNotFound):
		return pkg.NewDomainErrorSimple("UPDATE_NOT_FOUND", "Service update not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyResolved):
		return pkg.NewDomainErrorSimple("UPDATE_ALREADY_RESOLVED", "Service update already resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

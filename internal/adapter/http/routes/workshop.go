package routes

import (
	"moto_garage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders          = "/orders"
	PathPortal          = "/portal"
	PathPaymentRequests = "/payment-requests"
	PathOrderRequests   = "/order-requests"
	PathMechanics       = "/mechanics"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	authorizationHandler *handlers.AuthorizationHandler,
	settlementHandler *handlers.SettlementHandler,
	orderRequestHandler *handlers.OrderRequestHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.ChangeStatus)
		orders.POST("/:id/advance", orderHandler.AdvanceStatus)
		orders.POST("/:id/finalize", orderHandler.FinalizeOrder)
		orders.POST("/:id/services", orderHandler.AddService)
		orders.POST("/:id/cancellation", orderHandler.RequestCancellation)
		orders.PATCH("/:id/cancellation", orderHandler.ResolveCancellation)

		orders.POST("/:id/updates", authorizationHandler.ProposeUpdate)
		orders.GET("/:id/balance", authorizationHandler.GetBalance)
	}

	// Client-facing routes keyed by the unguessable public token.
	portal := rg.Group(PathPortal)
	{
		portal.GET("/:token", authorizationHandler.GetPortal)
		portal.PATCH("/:token/updates/:updateID", authorizationHandler.ResolveUpdate)
	}

	paymentRequests := rg.Group(PathPaymentRequests)
	{
		paymentRequests.POST("", settlementHandler.InitiatePayment)
		paymentRequests.GET("", settlementHandler.ListPaymentRequests)
		paymentRequests.POST("/:id/accept", settlementHandler.AcceptPayment)
	}

	orderRequests := rg.Group(PathOrderRequests)
	{
		orderRequests.POST("", orderRequestHandler.SubmitRequest)
		orderRequests.GET("", orderRequestHandler.ListRequests)
		orderRequests.POST("/:id/approve", orderRequestHandler.ApproveRequest)
		orderRequests.POST("/:id/reject", orderRequestHandler.RejectRequest)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.GET("/:id/earnings", settlementHandler.GetEarnings)
	}
}

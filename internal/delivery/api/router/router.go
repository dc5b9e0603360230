// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/router/handler"
	"harvest/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	InvoiceHandler *handler.InvoiceHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	invoiceHandler *handler.InvoiceHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		invoiceHandler: params.InvoiceHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	apiV1 := e.Group("/api/v1")

	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	self := r.authMiddleware.RequireSelf("userId")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, authenticated)
		authGroup.GET("/profile", r.authHandler.Profile, authenticated)
		authGroup.POST("/verify-email/resend", r.authHandler.ResendVerification, authenticated)
	}

	apiV1.GET("/users", r.authHandler.ListUsers, authenticated, adminOnly)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts, r.authMiddleware.OptionalAuthenticate)
		productsGroup.GET("/:productId", r.productHandler.GetProduct, r.authMiddleware.OptionalAuthenticate)

		productsGroup.POST("", r.productHandler.CreateProduct, authenticated, adminOnly)
		productsGroup.PUT("/:productId", r.productHandler.UpdateProduct, authenticated, adminOnly)
		productsGroup.PATCH("/:productId/stock", r.productHandler.SetProductStock, authenticated, adminOnly)
		productsGroup.PATCH("/:productId/active", r.productHandler.SetProductActive, authenticated, adminOnly)
		productsGroup.DELETE("/:productId", r.productHandler.DeleteProduct, authenticated, adminOnly)
	}

	// Ownership of an order is checked by the usecase; routes keyed by user id are
	// checked here.
	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(authenticated)
	{
		ordersGroup.GET("/form/:userId", r.orderHandler.GetOrderForm, self)
		ordersGroup.POST("/create/:userId", r.orderHandler.CreateOrder, self)
		ordersGroup.GET("/history/:userId", r.orderHandler.ListUserOrders, self)
		ordersGroup.GET("/total/:orderId", r.orderHandler.GetOrderTotal)
		ordersGroup.GET("/list", r.orderHandler.ListOrders, adminOnly)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)

		ordersGroup.PATCH("/approve/:orderId", r.orderHandler.ApproveOrder, adminOnly)
		ordersGroup.PATCH("/status/:orderId", r.orderHandler.UpdateOrderStatus, adminOnly)
		ordersGroup.PATCH("/charges/:orderId", r.orderHandler.AdjustCharges, adminOnly)
		ordersGroup.PATCH("/cancel/:orderId", r.orderHandler.CancelOrder)
		ordersGroup.PATCH("/rating/:orderId", r.orderHandler.RateOrder)
	}

	paymentsGroup := apiV1.Group("/payments")
	paymentsGroup.Use(authenticated)
	{
		paymentsGroup.POST("/upload-proof/:orderId", r.paymentHandler.SubmitProof)
		paymentsGroup.GET("/qr/:orderId", r.paymentHandler.PaymentQR)
	}

	invoicesGroup := apiV1.Group("/invoices")
	invoicesGroup.Use(authenticated)
	{
		invoicesGroup.GET("/order/:orderId", r.invoiceHandler.GetInvoice)
		invoicesGroup.POST("/retry/:orderId", r.invoiceHandler.RetryInvoice, adminOnly)
	}
}

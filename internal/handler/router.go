package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/handler/api"
	"devion-storefront/internal/handler/middleware"
	"devion-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, addressHandler *api.AddressHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, checkoutHandler, addressHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.SessionMiddleware(cfg.Store))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, addressHandler *api.AddressHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: cartHandler.UpdateQuantity},
				{Method: http.MethodPost, Path: "/coupon", Handler: cartHandler.ApplyCoupon},
				{Method: http.MethodPost, Path: "/checkout", Handler: cartHandler.BeginCheckout},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: checkoutHandler.Resume},
				{Method: http.MethodPost, Path: "/coupon", Handler: checkoutHandler.ApplyCoupon},
				{Method: http.MethodPost, Path: "/payment-method", Handler: checkoutHandler.SelectPaymentMethod},
				{Method: http.MethodPost, Path: "/order", Handler: checkoutHandler.PlaceOrder},
			})

			for _, method := range []checkout.PaymentMethod{checkout.MethodPayPal, checkout.MethodMercadoPago} {
				widget := checkoutGroup.Group("/" + method.String())
				addRoutes(widget, []route{
					{Method: http.MethodPost, Path: "/order", Handler: checkoutHandler.CreateWidgetOrder(method)},
					{Method: http.MethodPost, Path: "/capture", Handler: checkoutHandler.ApproveWidgetPayment(method)},
					{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.CancelWidgetPayment(method)},
					{Method: http.MethodPost, Path: "/error", Handler: checkoutHandler.ReportWidgetError(method)},
				})
			}
		}

		addRoutes(apiGroup.Group("/address"), []route{
			{Method: http.MethodGet, Path: "/lookup", Handler: addressHandler.Lookup},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

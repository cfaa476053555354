package routes

import (
	"foodorder/configs"
	"foodorder/controllers"
	"foodorder/middlewares"
	"foodorder/pkg/momo"
	"foodorder/repository"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	momoClient := momo.NewClient(cfg.Momo)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, accountRepo, menuRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, momoClient)
	dashboardSvc := services.NewDashboardService(orderRepo, menuRepo)
	authSvc := services.NewAuthService(accountRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	paymentCtrl := controllers.NewPaymentController(paymentSvc, momoClient)
	dashCtrl := controllers.NewDashboardController(dashboardSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Menu (read-only catalog)
	menu := r.Group("/api/menu-items")
	{
		menu.GET("", menuCtrl.ListAvailable)
		menu.GET("/:id", menuCtrl.Detail)
	}

	// Orders
	orders := r.Group("/api/orders")
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.GET("/account/:accountId", orderCtrl.ListByAccount)
		orders.GET("/status/:status", orderCtrl.ListByStatus)
		orders.GET("/account/:accountId/status/:status", orderCtrl.ListByAccountAndStatus)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
		orders.PUT("/:id/soft-delete", orderCtrl.SoftDelete)
		orders.DELETE("/:id", adminOnly, orderCtrl.Delete)
	}

	// Payments
	payments := r.Group("/api/payments")
	{
		payments.POST("", paymentCtrl.Create)
		payments.GET("", paymentCtrl.List)
		payments.GET("/:id", paymentCtrl.Detail)
		payments.GET("/order/:orderId", paymentCtrl.ListByOrder)
		payments.GET("/status/:status", paymentCtrl.ListByStatus)
		payments.GET("/method/:method", paymentCtrl.ListByMethod)
		payments.GET("/transaction/:transactionId", paymentCtrl.DetailByTransaction)
		payments.POST("/:id/process-momo", paymentCtrl.ProcessMomo)
		// gateway ยิงเข้ามาเอง ไม่มี token — verify ด้วย signature แทน
		payments.POST("/callback", paymentCtrl.Callback)
		payments.POST("/webhook", paymentCtrl.Webhook)
		payments.PUT("/:id", paymentCtrl.Update)
		payments.PUT("/:id/soft-delete", paymentCtrl.SoftDelete)
		payments.DELETE("/:id", adminOnly, paymentCtrl.Delete)
	}

	// Dashboard (admin only)
	dash := r.Group("/api/dashboard", adminOnly)
	{
		dash.GET("/menu-item-stats", dashCtrl.AllStats)
		dash.GET("/menu-item-stats/month", dashCtrl.StatsByMonth)
		dash.GET("/menu-item-stats/range", dashCtrl.StatsByRange)
		dash.GET("/top-menu-items", dashCtrl.TopMenuItems)
	}
}

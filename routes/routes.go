package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-pms-backend/controllers"
	"hotel-pms-backend/middleware"
	"hotel-pms-backend/utils"
)

func parseCorsOrigins() []string {
	raw := utils.Getenv("CORS_ORIGINS", "")
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the route tree. Everything except
// /health and /api/auth sits behind the auth middleware.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	gc *controllers.GuestStayController,
	fc *controllers.FoodOrderController,
	mc *controllers.MenuController,
	pc *controllers.PaymentModeController,
	rc *controllers.RoomController,
	cc *controllers.CategoryController,
	ec *controllers.ExpenseController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth())
	{
		hotels := protected.Group("/hotels")
		{
			hotels.GET("", hc.ListHotels)
			hotels.POST("", hc.CreateHotel)
			hotels.GET("/:id", hc.GetHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)
			hotels.GET("/:id/assignments", hc.ListAssignments)
			hotels.POST("/:id/assignments", hc.AssignManager)
			hotels.GET("/:id/dashboard", hc.Dashboard)
		}

		stays := protected.Group("/guest-stays")
		{
			stays.GET("", gc.ListStays)
			stays.POST("", gc.CreateStay)
			stays.GET("/:id", gc.GetStay)
			stays.PUT("/:id", gc.UpdateStay)
			stays.DELETE("/:id", gc.DeleteStay)
			stays.GET("/:id/pending", gc.GetPending)
			stays.POST("/:id/payments-expenses", gc.RecordPaymentOrExpense)
			stays.GET("/:id/food-orders", fc.GetFoodOrders)
			stays.POST("/:id/food-orders", fc.AddFoodOrder)
		}

		protected.PUT("/food-expenses/:id/food-orders", fc.ReplaceFoodOrder)

		menus := protected.Group("/menus")
		{
			menus.GET("", mc.ListMenus)
			menus.POST("", mc.CreateMenu)
			menus.PUT("/:id", mc.UpdateMenu)
			menus.DELETE("/:id", mc.DeleteMenu)
		}

		modes := protected.Group("/payment-modes")
		{
			modes.GET("", pc.ListPaymentModes)
			modes.POST("", pc.CreatePaymentMode)
			modes.PUT("/:id", pc.UpdatePaymentMode)
			modes.DELETE("/:id", pc.DeletePaymentMode)
		}

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rc.ListRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", cc.ListCategories)
			categories.POST("", cc.CreateCategory)
			categories.DELETE("/:id", cc.DeleteCategory)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", ec.ListExpenses)
			expenses.POST("", ec.CreateExpense)
			expenses.GET("/totals", ec.ExpenseTotals)
			expenses.DELETE("/:id", ec.DeleteExpense)
		}
	}

	return r
}

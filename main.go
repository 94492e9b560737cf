package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel-pms-backend/config"
	"hotel-pms-backend/controllers"
	"hotel-pms-backend/routes"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	utils.InitLogger()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	log.Info().Msg("database connection established, migrations applied")

	// Services
	accessService := services.NewAccessService(db)
	authService := services.NewAuthService(db)
	hotelService := services.NewHotelService(db, accessService)
	stayService := services.NewGuestStayService(db, accessService)
	foodService := services.NewFoodOrderService(db, accessService)
	rollupService := services.NewRollupService(db, accessService, stayService)
	menuService := services.NewMenuService(db)
	modeService := services.NewPaymentModeService(db)
	roomService := services.NewRoomService(db, accessService)
	categoryService := services.NewCategoryService(db, accessService)
	expenseService := services.NewExpenseService(db, accessService)

	// Controllers
	authController := controllers.NewAuthController(authService)
	hotelController := controllers.NewHotelController(hotelService, rollupService)
	stayController := controllers.NewGuestStayController(stayService)
	foodController := controllers.NewFoodOrderController(foodService)
	menuController := controllers.NewMenuController(menuService)
	modeController := controllers.NewPaymentModeController(modeService)
	roomController := controllers.NewRoomController(roomService)
	categoryController := controllers.NewCategoryController(categoryService)
	expenseController := controllers.NewExpenseController(expenseService)

	router := routes.SetupRouter(
		authController,
		hotelController,
		stayController,
		foodController,
		menuController,
		modeController,
		roomController,
		categoryController,
		expenseController,
	)

	addr := ":" + utils.Getenv("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}

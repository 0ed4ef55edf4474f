package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuehive/config"
	"venuehive/cron"
	"venuehive/database"
	bookingRepoPkg "venuehive/database/repository/booking"
	spaceRepoPkg "venuehive/database/repository/space"
	"venuehive/handlers"
	"venuehive/routes"
	"venuehive/services/booking"
	"venuehive/services/payment"
	"venuehive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitEventsClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	spaceRepo := spaceRepoPkg.NewMongoSpaceRepo()

	// services.
	notifier := &booking.RedisNotifier{Client: utils.GetEventsClient()}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		SpaceRepo: spaceRepo,
		Notifier:  notifier,
	}
	paymentService := &payment.DefaultPaymentService{
		BookingRepo: bookingRepo,
		SpaceRepo:   spaceRepo,
		Notifier:    notifier,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	spaceHandler := handlers.NewSpaceHandler(spaceRepo, logger)
	checkoutHandler := handlers.NewCheckoutHandler(paymentService, logger)

	routes.RegisterSpaceRoutes(router, spaceHandler, bookingHandler)
	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterPaymentRoutes(router, checkoutHandler)

	// Background sweep for abandoned checkouts.
	cron.InitExpiryWorker(bookingRepo)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"swiftride/internal/handler"
	"swiftride/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler     *handler.UserHandler
	CarHandler      *handler.CarHandler
	BookingHandler  *handler.BookingHandler
	WalletHandler   *handler.WalletHandler
	TrackingHandler *handler.TrackingHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.ListUsers)
			users.GET("/:id", deps.UserHandler.GetUser)
			users.POST("/:id/kyc", deps.UserHandler.SubmitKYC)
			users.POST("/:id/kyc/review", deps.UserHandler.ReviewKYC)
			users.GET("/:id/bookings", deps.BookingHandler.ListUserBookings)
		}

		// Fleet routes.
		cars := v1.Group("/cars")
		{
			cars.POST("", deps.CarHandler.AddCar)
			cars.GET("", deps.CarHandler.ListAvailable)
			cars.GET("/:id", deps.CarHandler.GetCar)
			cars.PATCH("/:id", deps.CarHandler.UpdateCar)
			cars.DELETE("/:id", deps.CarHandler.DeleteCar)
			cars.POST("/:id/toggle-availability", deps.CarHandler.ToggleAvailability)
		}

		// Host routes.
		hosts := v1.Group("/hosts")
		{
			hosts.GET("/:id/cars", deps.CarHandler.ListHostCars)
		}

		// Booking lifecycle routes.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.CreateBooking)
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
			bookings.POST("/:id/start", deps.BookingHandler.StartTrip)
			bookings.POST("/:id/end", deps.BookingHandler.EndTrip)
			bookings.POST("/:id/cancel", deps.BookingHandler.CancelBooking)
			bookings.POST("/:id/condition-checks", deps.BookingHandler.RecordCondition)
			bookings.GET("/:id/condition-checks/:phase", deps.BookingHandler.GetCondition)
		}

		// Wallet routes.
		wallets := v1.Group("/wallets")
		{
			wallets.GET("/:accountId/balance", deps.WalletHandler.GetBalance)
			wallets.GET("/:accountId/transactions", deps.WalletHandler.GetHistory)
			wallets.POST("/:accountId/topup", deps.WalletHandler.TopUp)
			wallets.POST("/:accountId/withdraw", deps.WalletHandler.Withdraw)
		}

		// Live tracking routes.
		tracking := v1.Group("/tracking")
		{
			tracking.POST("/:bookingId/location", deps.TrackingHandler.UpdateLocation)
			tracking.GET("/:bookingId/location", deps.TrackingHandler.GetLocation)
			tracking.POST("/:bookingId/kill-switch", deps.TrackingHandler.SetKillSwitch)
		}
	}

	return router
}

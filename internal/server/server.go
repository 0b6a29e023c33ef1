package server

import (
	"context"
	"net/http"
	"time"

	"github.com/GeoTsinganos/booking-system-api/internal/auth"
	"github.com/GeoTsinganos/booking-system-api/internal/availability"
	"github.com/GeoTsinganos/booking-system-api/internal/booking"
	"github.com/GeoTsinganos/booking-system-api/internal/catalog"
	"github.com/GeoTsinganos/booking-system-api/internal/config"
	"github.com/GeoTsinganos/booking-system-api/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, redisClient *redis.Client) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userService := user.NewService(user.NewRepository(db), cfg.JWTSecret)
	userHandler := user.NewHandler(userService)

	catalogRepo := catalog.NewRepository(db)
	catalogService := catalog.NewService(catalogRepo, catalog.NewCache(redisClient))
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		booking.NewRepository(db),
		availability.NewRepository(db),
		catalogRepo,
	)
	bookingHandler := booking.NewHandler(bookingService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/services", catalogHandler.ListServices)
		protected.GET("/services/:serviceID", catalogHandler.GetService)
		protected.GET("/services/:serviceID/available-slots", bookingHandler.AvailableSlots)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		// Admin check happens in the service so non-admins get a 403
		// rather than a route that does not exist.
		protected.POST("/bookings/:bookingID/confirm", bookingHandler.ConfirmBooking)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireAdmin())
	{
		admin.POST("/services", catalogHandler.CreateService)
		admin.PUT("/services/:serviceID", catalogHandler.UpdateService)
		admin.DELETE("/services/:serviceID", catalogHandler.DeactivateService)
		admin.GET("/bookings", bookingHandler.ListBookingsByDate)
		admin.GET("/services/:serviceID/bookings", bookingHandler.ListBookingsByService)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

// Handler exposes the router for tests and for http.Server wiring.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

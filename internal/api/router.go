package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/api/handler"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/api/middleware"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/service"
)

// Deps carries the already-constructed store handles and infrastructure the
// router wires into services and handlers. Handles are injected rather than
// opened here so tests and the entrypoint share one construction path.
type Deps struct {
	DB    *mongo.Database
	Redis *redis.Client

	Users        ports.UserRepository
	Inventory    ports.InventoryRepository
	Reservations ports.ReservationRepository
	Dedup        service.RatingDedup
	Summaries    ports.SummaryQueue

	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Services ---
	authService := service.NewAuthService(deps.Users, deps.JWTSecret, deps.TokenTTL)
	inventoryService := service.NewInventoryService(deps.Inventory, deps.Log)
	reservationService := service.NewReservationService(
		deps.Reservations, deps.Inventory, deps.Dedup, deps.Summaries, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	authed := middleware.Auth(deps.JWTSecret, deps.Users)
	adminOnly := middleware.RequireAdmin()

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/user/register", authHandler.Register)

	// --- Hotel management (admin only) ---
	admin := e.Group("/myspace", authed, adminOnly)
	admin.POST("/create-hotel-chain", inventoryHandler.CreateChain)
	admin.POST("/add-hotels-to-chain", inventoryHandler.AddHotels)
	admin.GET("/my-hotels", inventoryHandler.MyHotels)
	admin.PUT("/my-hotels/:hotelId", inventoryHandler.UpdateHotel)
	admin.DELETE("/my-hotels/:hotelId", inventoryHandler.DeleteHotel)
	admin.POST("/add-room/:hotelId", inventoryHandler.AddRoom)
	admin.PUT("/my-hotels/:hotelId/rooms/:roomId", inventoryHandler.UpdateRoom)
	admin.DELETE("/my-hotels/:hotelId/rooms/:roomId", inventoryHandler.DeleteRoom)

	// --- Reservations and ratings (any authenticated user) ---
	e.POST("/reserve/:roomId", reservationHandler.Reserve, authed)
	e.POST("/myspace/rate-review/:roomId", reservationHandler.RateRoom, authed)
	e.POST("/myspace/ratereview/:reservationId", reservationHandler.RateReservation, authed)

	// --- Public catalog ---
	e.GET("/myspace/hotels-with-room-count", inventoryHandler.HotelsWithRoomCount)
	e.GET("/hotels", inventoryHandler.Hotels)
	e.GET("/hotel/:hotelId/rooms", inventoryHandler.HotelRooms)
	e.GET("/rooms/:roomId", inventoryHandler.Room)
	e.GET("/search", inventoryHandler.Search)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

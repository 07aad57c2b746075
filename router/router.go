package router

import (
	"travel-booking-webapp/handlers"
	"travel-booking-webapp/middleware"
	"travel-booking-webapp/model"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New(), recover.New())
	api.Get("/health", handlers.Health)

	// Auth + profile-scoped booking surface
	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Get("/user-bookings", middleware.Authorize(), handlers.UserBookings)
	auth.Post("/add-booking", middleware.Authorize(), handlers.AddBooking)
	auth.Put("/cancel-booking/:id", middleware.Authorize(), handlers.CancelAuthBooking)

	// Bookings
	booking := api.Group("/bookings", middleware.Authorize())
	booking.Post("/simple-create", handlers.SimpleCreate)
	booking.Get("/my-bookings", handlers.MyBookings)
	booking.Get("/:id", handlers.GetBooking)
	booking.Put("/:id/status", handlers.UpdateBookingStatus)

	// Hotels
	hotel := api.Group("/hotels")
	hotel.Get("/", handlers.GetHotels)
	hotel.Get("/:id", handlers.GetHotel)
	hotel.Get("/:id/available-rooms", handlers.AvailableRooms)
	hotel.Post("/", middleware.Authorize(), middleware.RequireRole(model.RoleHotelOwner), handlers.CreateHotel)
	hotel.Put("/:id", middleware.Authorize(), middleware.RequireRole(model.RoleHotelOwner), handlers.UpdateHotel)
	hotel.Post("/:id/rooms", middleware.Authorize(), middleware.RequireRole(model.RoleHotelOwner), handlers.UpsertRoom)
	hotel.Post("/:id/rooms/:roomNumber/hold", middleware.Authorize(), handlers.HoldRoom)
	hotel.Delete("/:id/rooms/:roomNumber/hold", middleware.Authorize(), handlers.ReleaseRoom)

	// Tour packages
	pkg := api.Group("/packages")
	pkg.Get("/", handlers.GetPackages)
	pkg.Get("/:id", handlers.GetPackage)
	pkg.Post("/", middleware.Authorize(), middleware.RequireRole(model.RoleAgent), handlers.CreatePackage)
	pkg.Put("/:id", middleware.Authorize(), middleware.RequireRole(model.RoleAgent), handlers.UpdatePackage)

	// Travel options
	travel := api.Group("/travel")
	travel.Get("/", handlers.GetTravelOptions)
	travel.Get("/:id", handlers.GetTravelOption)
	travel.Post("/", middleware.Authorize(), middleware.RequireRole(model.RoleAgent), handlers.CreateTravelOption)

	// Payments
	payments := api.Group("/payments", middleware.Authorize())
	payments.Get("/", handlers.MyPayments)
	payments.Get("/:id", handlers.GetPayment)

	// Chat support
	chat := api.Group("/chat", middleware.Authorize())
	chat.Post("/sessions", handlers.CreateChatSession)
	chat.Post("/sessions/:id/messages", handlers.AppendChatMessage)
	chat.Delete("/sessions/:id", handlers.DeleteChatSession)
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvalencia/apartment-booking-backend/internal/apartment"
	"github.com/nvalencia/apartment-booking-backend/internal/api"
	"github.com/nvalencia/apartment-booking-backend/internal/auth"
	"github.com/nvalencia/apartment-booking-backend/internal/customer"
	"github.com/nvalencia/apartment-booking-backend/internal/reservation"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Credentials  auth.Credentials
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Apartment module
	aptRepo := apartment.NewPgxRepository(cfg.DBPool)
	aptService := apartment.NewService(aptRepo)

	// Customer module
	custRepo := customer.NewPgxRepository(cfg.DBPool)
	custService := customer.NewService(custRepo)

	// Reservation module
	resRepo := reservation.NewPgxRepository(cfg.DBPool)
	resService := reservation.NewService(resRepo, aptService, custService)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		ApartmentService:   aptService,
		CustomerService:    custService,
		ReservationService: resService,
		Credentials:        cfg.Credentials,
	})

	return &Container{Router: router}
}

package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nvalencia/apartment-booking-backend/internal/apartment"
	aptHttp "github.com/nvalencia/apartment-booking-backend/internal/apartment/http"
	"github.com/nvalencia/apartment-booking-backend/internal/auth"
	"github.com/nvalencia/apartment-booking-backend/internal/customer"
	custHttp "github.com/nvalencia/apartment-booking-backend/internal/customer/http"
	"github.com/nvalencia/apartment-booking-backend/internal/reservation"
	resHttp "github.com/nvalencia/apartment-booking-backend/internal/reservation/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	ApartmentService   apartment.Service
	CustomerService    customer.Service
	ReservationService reservation.Service
	Credentials        auth.Credentials
}

// NewRouter initializes the HTTP router engine: middleware (logging,
// recovery, CORS, basic auth) and the routes of each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"} // local console
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.BasicAuthRequired(cfg.Credentials)

	aptHandler := aptHttp.NewHandler(cfg.ApartmentService)
	custHandler := custHttp.NewHandler(cfg.CustomerService)
	resHandler := resHttp.NewHandler(cfg.ReservationService)

	v1 := r.Group("/v1")
	{
		aptHttp.RegisterRoutes(v1, aptHandler, authMiddleware)
		custHttp.RegisterRoutes(v1, custHandler, authMiddleware)
		resHttp.RegisterRoutes(v1, resHandler, authMiddleware)
	}

	return r
}

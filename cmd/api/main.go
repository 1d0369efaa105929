package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"carrental/internal/config"
	"carrental/internal/database"
	"carrental/internal/middleware"
	"carrental/internal/modules/auth"
	"carrental/internal/modules/fleet"
	"carrental/internal/modules/reservation"
	jwtsvc "carrental/internal/pkg/jwt"
	"carrental/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.EnsureReservationConstraints(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	fleetService := fleet.NewService(vehicleRepo, reservationRepo, authService)
	fleetHandler := fleet.NewHandler(fleetService)

	reservationService := reservation.NewService(reservationRepo, vehicleRepo, authService)
	reservationHandler := reservation.NewHandler(reservationService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Actor())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		fleetHandler.RegisterRoutes(v1)
		reservationHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

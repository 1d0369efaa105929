package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"carrental/internal/config"
	"carrental/internal/database"
	"carrental/internal/domain"
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
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Installing reservation constraints...")
	if err := database.EnsureReservationConstraints(db); err != nil {
		log.Fatal("constraint setup failed:", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vehicles := repository.NewVehicleRepository(db)

	log.Println("Seeding users...")
	seedUser(ctx, users, "Fleet Admin", "admin@demo.com", "admin123", domain.RoleAdmin)
	seedUser(ctx, users, "Demo Customer", "customer@demo.com", "customer123", domain.RoleCustomer)

	log.Println("Seeding vehicles...")
	existing, err := vehicles.GetAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Println("Vehicles already present, skipping")
		return
	}

	demo := []domain.Vehicle{
		{Make: "Toyota", Model: "Corolla", Year: 2022, Color: "White", PricePerDay: 45},
		{Make: "Honda", Model: "Civic", Year: 2021, Color: "Black", PricePerDay: 50},
		{Make: "Ford", Model: "Mustang", Year: 2023, Color: "Red", PricePerDay: 120},
		{Make: "Tesla", Model: "Model 3", Year: 2024, PricePerDay: 110},
		{Make: "Volkswagen", Model: "Golf", Year: 2019, Color: "Blue", PricePerDay: 38},
	}
	for i := range demo {
		if err := vehicles.Create(ctx, &demo[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete")
}

func seedUser(ctx context.Context, users *repository.UserRepository, name, email, password string, role domain.UserRole) {
	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		log.Printf("User %s already present, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
}

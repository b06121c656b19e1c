package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"studiorent/internal/database"
	"studiorent/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studiorent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM studios")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@studiorent.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("admin:", err)
	}

	userHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users := []domain.User{
		{Username: "ayman", Email: "ayman@example.com", PasswordHash: string(userHash), Role: domain.RoleUser},
		{Username: "claire", Email: "claire@example.com", PasswordHash: string(userHash), Role: domain.RoleUser},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("user:", err)
		}
	}

	log.Println("Creating studios...")

	reservedUntil := time.Now().UTC().AddDate(0, 0, 14).Format(domain.DayLayout)
	studios := []domain.Studio{
		{
			Name:         "Studio Lumière",
			City:         "Paris",
			PricePerHour: 45,
			Status:       domain.StudioAvailable,
			Services:     "portrait,mariage",
			Equipments:   "softbox,fond blanc,réflecteur",
			Description:  "Grand studio lumineux au coeur de Paris.",
			CreatedBy:    users[0].ID,
		},
		{
			Name:         "Atelier Nord",
			City:         "Lille",
			PricePerHour: 30,
			Status:       domain.StudioAvailable,
			Services:     "produit,packshot",
			Equipments:   "table de prise de vue,flash",
			Description:  "Espace compact pour la photo produit.",
			CreatedBy:    users[0].ID,
		},
		{
			Name:          "Loft Sud",
			City:          "Marseille",
			PricePerHour:  60,
			Status:        domain.StudioReserved,
			ReservedUntil: &reservedUntil,
			Services:      "mode,portrait",
			Equipments:    "cyclorama,parapluies",
			Description:   "Loft avec verrière, réservé par le propriétaire.",
			CreatedBy:     users[1].ID,
		},
	}
	for i := range studios {
		if err := db.Create(&studios[i]).Error; err != nil {
			log.Fatal("studio:", err)
		}
	}

	log.Println("Creating bookings, reviews and favorites...")

	start := time.Now().UTC().AddDate(0, 0, 3).Format(domain.DayLayout)
	end := time.Now().UTC().AddDate(0, 0, 5).Format(domain.DayLayout)
	booking := domain.Booking{
		UserID:  users[1].ID,
		ItemID:  studios[0].ID,
		Date:    start,
		EndDate: end,
		Status:  domain.BookingConfirmed,
	}
	if err := db.Create(&booking).Error; err != nil {
		log.Fatal("booking:", err)
	}

	review := domain.Review{
		UserID:   users[1].ID,
		StudioID: studios[0].ID,
		Rating:   5,
		Comment:  "Superbe lumière naturelle, très bon accueil.",
	}
	if err := db.Create(&review).Error; err != nil {
		log.Fatal("review:", err)
	}

	favorite := domain.Favorite{UserID: users[1].ID, StudioID: studios[1].ID}
	if err := db.Create(&favorite).Error; err != nil {
		log.Fatal("favorite:", err)
	}

	log.Println("Seed complete.")
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/config"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/routes"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/storage"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDatabase()
	db := config.DB

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.InitRedis()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	store, err := storage.NewDiskStore(uploadDir, "/uploads")
	if err != nil {
		log.Fatalf("failed to init upload storage: %v", err)
	}

	r := routes.SetupRouter(db, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	log.Printf("server running on %s", addr)
	r.Run(addr)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Property{}, &models.PropertyImage{},
		&models.BookingRequest{}, &models.RefreshToken{})
}

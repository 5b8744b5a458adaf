// Command initadmin provisions the single admin account. Registration is
// not exposed over HTTP; operators run this once against the target
// database with ADMIN_EMAIL and ADMIN_PASSWORD set.
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/models"
)

func main() {
	config.Load()

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Println("mongo disconnect:", err)
		}
	}()

	db := client.Database(config.AppEnv.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		log.Printf("admin user already exists: %s", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now()
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.Collection("users").InsertOne(ctx, user); err != nil {
		log.Fatal(err)
	}

	log.Printf("admin user created: %s", email)
}

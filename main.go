package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/mailer"
	"backend/internal/middleware"
	"backend/internal/storage"
)

func main() {
	config.Load()

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
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProjectIndexes(db); err != nil {
		log.Printf("project index warning: %v", err)
	}
	if err := database.EnsurePricingIndexes(db); err != nil {
		log.Printf("pricing index warning: %v", err)
	}
	if err := database.EnsureContactIndexes(db); err != nil {
		log.Printf("contact index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}

	mail := mailer.New(
		config.AppEnv.SMTPHost,
		config.AppEnv.SMTPPort,
		config.AppEnv.SMTPUser,
		config.AppEnv.SMTPPass,
		config.AppEnv.MailFrom,
		config.AppEnv.AlertEmail,
	)

	store, err := storage.NewS3(context.Background(), config.AppEnv.S3Bucket, config.AppEnv.AWSRegion)
	if err != nil {
		log.Fatal("s3 init:", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppEnv.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", handlers.Root())
	r.GET("/api/health", handlers.Health(db))

	r.POST("/api/auth/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL))

	r.GET("/api/projects", handlers.GetProjects(db))
	r.PUT("/api/projects/:id/view", handlers.IncrementProjectViews(db))
	r.PUT("/api/projects/:id/like", handlers.IncrementProjectLikes(db))
	r.GET("/api/pricing", handlers.GetPricing(db))
	r.POST("/api/contact", handlers.SubmitContact(db, mail))

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/dashboard-stats", handlers.DashboardStats(db))
		admin.POST("/upload", handlers.UploadImage(store))

		admin.POST("/projects", handlers.CreateProject(db))
		admin.GET("/projects/:id", handlers.GetProject(db))
		admin.PUT("/projects/:id", handlers.UpdateProject(db))
		admin.DELETE("/projects/:id", handlers.DeleteProject(db))

		admin.POST("/pricing", handlers.CreatePricing(db))
		admin.GET("/pricing/:id", handlers.GetPricingTier(db))
		admin.PUT("/pricing/:id", handlers.UpdatePricing(db))
		admin.DELETE("/pricing/:id", handlers.DeletePricing(db))

		admin.GET("/contacts", handlers.GetContacts(db))
		admin.GET("/contacts/:id", handlers.GetContact(db))
		admin.DELETE("/contacts/:id", handlers.DeleteContact(db))
		admin.PUT("/contacts/:id/status", handlers.UpdateContactStatus(db))
		admin.PUT("/contacts/:id/priority", handlers.UpdateContactPriority(db))
		admin.POST("/contacts/:id/notes", handlers.AddContactNote(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

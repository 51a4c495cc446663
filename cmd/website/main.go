// Command website serves the hospital landing page and its content API.
// The page content lives in an in-memory last-write-wins store; updates
// come from the marketing team (logged in) or the assistant service
// (static API key).
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Amar3x3/seoAgent/database"
	"github.com/Amar3x3/seoAgent/handlers"
	"github.com/Amar3x3/seoAgent/middleware"
	"github.com/Amar3x3/seoAgent/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbClient, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
	}
	defer dbClient.Close()

	userStore := store.NewUserStore(dbClient.DB)
	contentStore := store.NewContentStore()

	authHandlers := handlers.NewAuthHandlers(userStore)
	contentHandlers := handlers.NewContentHandlers(contentStore)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.LoadHTMLGlob("web/templates/*")

	r.GET("/", contentHandlers.Homepage)

	api := r.Group("/api")
	{
		api.POST("/signup", authHandlers.Signup)
		api.POST("/login", authHandlers.Login)
		api.POST("/logout", authHandlers.Logout)
		api.GET("/metadata", contentHandlers.GetMetadata)

		protected := api.Group("/")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/update-metadata", contentHandlers.UpdateMetadata)
		}
	}

	port := os.Getenv("WEBSITE_PORT")
	if port == "" {
		port = "8081"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Website server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Website server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// Command assistant serves the conversational marketing analyst: a chat
// endpoint backed by a tool-calling LLM loop over the warehouse, and the
// fixed performance-analysis pipeline.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Amar3x3/seoAgent/agent"
	"github.com/Amar3x3/seoAgent/database"
	"github.com/Amar3x3/seoAgent/handlers"
	"github.com/Amar3x3/seoAgent/middleware"
	"github.com/Amar3x3/seoAgent/store"
)

const maxOutputTokens = 4096

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	chClient, err := database.NewClickHouseDB()
	if err != nil {
		log.Fatalf("Failed to initialize ClickHouse database: %v", err)
	}
	defer chClient.Close()

	analyticsStore := store.NewAnalyticsStore(chClient)

	model := anthropic.Model(os.Getenv("ANTHROPIC_MODEL"))
	if model == "" {
		model = anthropic.ModelClaude3_5Haiku20241022
	}
	// The client reads ANTHROPIC_API_KEY from the environment.
	llm := agent.NewAnthropicLLM(anthropic.NewClient(), model, maxOutputTokens)

	websiteURL := os.Getenv("WEBSITE_URL")
	if websiteURL == "" {
		websiteURL = "http://localhost:8081"
	}
	tools := agent.NewAssistantTools(analyticsStore, websiteURL, os.Getenv("AUTH_DEFAULT"))
	pipeline := agent.NewPipeline(llm, analyticsStore)

	chatHandlers := handlers.NewChatHandlers(llm, tools, pipeline)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.POST("/chat", chatHandlers.Chat)
		api.POST("/analyze", chatHandlers.Analyze)
	}

	port := os.Getenv("ASSISTANT_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Assistant server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Assistant server failed to start: %v", err)
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

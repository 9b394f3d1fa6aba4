package main

import (
	"log"
	"os"
	"time"

	"github.com/4phone-ma/4phone-golang/internal/ai"
	"github.com/4phone-ma/4phone-golang/internal/database"
	"github.com/4phone-ma/4phone-golang/internal/handlers"
	"github.com/4phone-ma/4phone-golang/internal/routes"
	"github.com/joho/godotenv"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// 2. --- AI Assistant (optional) ---
	// Without a key the chat endpoint still works through the canned
	// responder.
	var aiService *ai.AIService
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		aiService, err = ai.NewAIService(geminiKey, db)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set. Chat will use the rule-based responder only.")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:        db,
		AIService: aiService,
	}

	// 3. --- Background Worker ---
	// Re-derives part statuses every hour so the stored column never
	// drifts from derive(stock, min_stock), even after manual DB edits.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Background worker started: reconciling part statuses hourly")

		for range ticker.C {
			app.ReconcilePartStatuses()
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("Starting 4phone API server on %s...", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

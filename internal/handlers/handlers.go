package handlers

import (
	"database/sql"

	"github.com/4phone-ma/4phone-golang/internal/ai"
)

// Handlers holds all dependencies for our handlers. AIService may be nil
// when no Gemini key is configured; the chat endpoint then answers from the
// built-in responder only.
type Handlers struct {
	DB        *sql.DB
	AIService *ai.AIService
}

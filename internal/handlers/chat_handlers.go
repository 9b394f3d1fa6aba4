package handlers

import (
	"net/http"

	"github.com/4phone-ma/4phone-golang/internal/chatbot"
	"github.com/gin-gonic/gin"
)

// ChatInput defines the structure of the chat request body.
type ChatInput struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language" binding:"omitempty,oneof=ar fr"`
}

// Chat is the handler for POST /v1/chat. It tries the AI assistant first
// (single attempt, no retry) and falls back to the canned responder, so a
// chat request never fails outright.
func (h *Handlers) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	language := input.Language
	if language == "" {
		language = "fr"
	}

	if h.AIService != nil {
		response, err := h.AIService.GenerateResponse(c.Request.Context(), input.Message, language)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"response": response,
				"source":   "ai",
			})
			return
		}
		// Fall through to the canned responder; the customer still gets
		// an answer.
	}

	c.JSON(http.StatusOK, gin.H{
		"response": chatbot.Respond(input.Message, language),
		"source":   "rules",
	})
}

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/4phone-ma/4phone-golang/internal/auth"
	"github.com/4phone-ma/4phone-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Admin Login ---
//

// LoginInput defines the expected JSON for the login endpoint.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login. Unknown user and wrong password
// produce the same response so the endpoint does not leak which usernames
// exist.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Look up the admin account ---
	var admin models.AdminUser
	query := "SELECT id, username, password_hash FROM admin_users WHERE username = ?"
	err := h.DB.QueryRow(query, input.Username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error during login"})
		return
	}

	// 3. --- Verify the password ---
	password := models.Password{Hash: admin.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !matches {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	// 4. --- Issue the session token ---
	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    token,
		"username": admin.Username,
	})
}

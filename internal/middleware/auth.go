package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/4phone-ma/4phone-golang/internal/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the dashboard routes. It validates the Bearer token
// and confirms the admin account still exists before letting the request
// through.
func AuthMiddleware(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}
		tokenString := parts[1]

		adminID, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// The token may outlive the account; re-check the row.
		var username string
		err = db.QueryRow("SELECT username FROM admin_users WHERE id = ?", adminID).Scan(&username)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking session"})
			}
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminUser", username)
		c.Next()
	}
}

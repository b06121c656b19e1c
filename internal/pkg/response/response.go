package response

import "github.com/gin-gonic/gin"

// Error writes the wire error shape: {"error": "..."}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorWithDetails adds a diagnostic detail string, used for store
// failures surfaced as 500s.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details string) {
	c.JSON(statusCode, gin.H{"error": message, "details": details})
}

// Message writes a plain {"message": "..."} acknowledgement.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

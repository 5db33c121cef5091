package utils

import "github.com/gin-gonic/gin"

// JSONError writes the `{"error": ...}` body every failure path uses.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONMessage writes a success body carrying a message plus payload keys.
func JSONMessage(c *gin.Context, code int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

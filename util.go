package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorOut answers API requests that carried bad input.
func errorOut(c *gin.Context, err error) {
	debugPrint("error:", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	c.Abort()
}

// errorOutInternal is for failures that are not the caller's fault; the
// detail only goes to the log.
func errorOutInternal(c *gin.Context, err error) {
	errorPrint("error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error."})
	c.Abort()
}

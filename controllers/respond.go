package controllers

import (
	"net/http"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps taxonomy errors to their status; anything unclassified is
// a 500 with the message withheld.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

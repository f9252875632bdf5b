package controllers

import (
	"net/http"

	"github.com/gueleresra1/Yemeksystem/config"
	"github.com/gueleresra1/Yemeksystem/services"

	"github.com/gin-gonic/gin"
)

// GET /languages  (active locales only)
func ListLanguages(c *gin.Context) {
	svc := services.NewLanguageService(config.DB)
	languages, err := svc.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, languages)
}

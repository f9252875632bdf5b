package controllers

import (
	"net/http"
	"strconv"

	"github.com/gueleresra1/Yemeksystem/config"
	"github.com/gueleresra1/Yemeksystem/middlewares"
	"github.com/gueleresra1/Yemeksystem/services"

	"github.com/gin-gonic/gin"
)

// GET /allergens?page=&size=&language_code=
func ListAllergens(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	svc := services.NewAllergenService(config.DB)
	result, err := svc.ListAllergens(page, size, c.Query("language_code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /allergens/:id
func GetAllergen(c *gin.Context) {
	allergenID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	svc := services.NewAllergenService(config.DB)
	allergen, err := svc.GetAllergen(allergenID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allergen)
}

// POST /allergens  (admin)
func CreateAllergen(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.AllergenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAllergenService(config.DB)
	allergen, err := svc.CreateAllergen(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allergen)
}

// PUT /allergens/:id  (admin)
func UpdateAllergen(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	allergenID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	var input services.AllergenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAllergenService(config.DB)
	allergen, err := svc.UpdateAllergen(actor, allergenID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allergen)
}

// DELETE /allergens/:id  (admin)
func DeleteAllergen(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	allergenID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	svc := services.NewAllergenService(config.DB)
	if err := svc.DeleteAllergen(actor, allergenID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "allergen deleted"})
}

type allergenTranslationInput struct {
	LanguageID uint   `json:"language_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// POST /allergens/:id/translations  (any authenticated user)
func CreateAllergenTranslation(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	allergenID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	var input allergenTranslationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAllergenService(config.DB)
	translation, err := svc.AddTranslation(actor, allergenID, input.LanguageID, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, translation)
}

type allergenTranslationUpdate struct {
	Name string `json:"name" binding:"required"`
}

// PUT /allergens/:id/translations/:language_id  (any authenticated user)
func UpdateAllergenTranslation(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	allergenID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}
	languageID, err := parseID(c.Param("language_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language id"})
		return
	}

	var input allergenTranslationUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAllergenService(config.DB)
	translation, err := svc.UpdateTranslation(actor, allergenID, languageID, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, translation)
}

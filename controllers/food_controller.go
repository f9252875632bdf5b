package controllers

import (
	"net/http"
	"strconv"

	"github.com/gueleresra1/Yemeksystem/config"
	"github.com/gueleresra1/Yemeksystem/middlewares"
	"github.com/gueleresra1/Yemeksystem/services"

	"github.com/gin-gonic/gin"
)

// POST /foods
func CreateFood(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewMenuService(config.DB)
	food, err := svc.CreateFood(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// PUT /foods/:id
func UpdateFood(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	foodID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewMenuService(config.DB)
	food, err := svc.UpdateFood(actor, foodID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id  (soft delete)
func DeleteFood(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	foodID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	svc := services.NewMenuService(config.DB)
	if err := svc.DeleteFood(actor, foodID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}

// GET /foods/:id  (public, soft-deleted rows still readable)
func GetFood(c *gin.Context) {
	foodID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	svc := services.NewMenuService(config.DB)
	food, err := svc.GetFood(foodID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// GET /foods?category=&dealer_id=&active_only=
func ListFoods(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active_only"})
		return
	}

	filter := services.FoodFilter{
		Category:   c.Query("category"),
		ActiveOnly: activeOnly,
	}
	if v := c.Query("dealer_id"); v != "" {
		dealerID, err := parseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dealer_id"})
			return
		}
		filter.DealerID = dealerID
	}

	svc := services.NewMenuService(config.DB)
	foods, err := svc.ListFoods(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// GET /dealer/foods
func ListMyFoods(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	svc := services.NewMenuService(config.DB)
	foods, err := svc.ListDealerFoods(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}

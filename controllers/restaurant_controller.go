package controllers

import (
	"net/http"
	"strconv"

	"github.com/gueleresra1/Yemeksystem/config"
	"github.com/gueleresra1/Yemeksystem/middlewares"
	"github.com/gueleresra1/Yemeksystem/services"

	"github.com/gin-gonic/gin"
)

// POST /restaurants
func CreateRestaurant(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	restaurant, err := svc.CreateRestaurant(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// GET /restaurants?city=&cuisine_type=&active_only=&limit=&offset=
func ListRestaurants(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active_only"})
		return
	}

	filter := services.RestaurantFilter{
		City:        c.Query("city"),
		CuisineType: c.Query("cuisine_type"),
		ActiveOnly:  activeOnly,
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filter.Offset = offset
	}

	svc := services.NewRestaurantService(config.DB)
	restaurants, err := svc.ListRestaurants(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GET /restaurants/:id  (public; a non-numeric id is treated as a slug, the
// public menu handle)
func GetRestaurant(c *gin.Context) {
	svc := services.NewRestaurantService(config.DB)

	param := c.Param("id")
	if restaurantID, err := parseID(param); err == nil {
		restaurant, err := svc.GetRestaurant(restaurantID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant)
		return
	}

	restaurant, err := svc.GetRestaurantBySlug(param)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// PUT /restaurants/:id
func UpdateRestaurant(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	restaurant, err := svc.UpdateRestaurant(actor, restaurantID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// POST /restaurants/:id/categories
func CreateRestaurantCategory(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var input services.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	category, err := svc.CreateCategory(actor, restaurantID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GET /restaurants/:id/categories  (public)
func ListRestaurantCategories(c *gin.Context) {
	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	categories, err := svc.ListCategories(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// PUT /restaurants/:id/settings
func UpdateRestaurantSettings(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	settings, err := svc.UpdateSettings(actor, restaurantID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// POST /orders  (public: customers order without an account)
func PlaceOrder(c *gin.Context) {
	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	order, err := svc.PlaceOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /restaurants/:id/orders?status=
func ListRestaurantOrders(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	orders, err := svc.ListOrders(actor, restaurantID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// PUT /orders/:id/status
func UpdateOrderStatus(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService(config.DB)
	order, err := svc.UpdateOrderStatus(actor, orderID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

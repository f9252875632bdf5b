package routes

import (
	"github.com/gueleresra1/Yemeksystem/controllers"
	"github.com/gueleresra1/Yemeksystem/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}
	// Dealer registration is public; the dealer's own menu needs a token.
	// Lives outside /foods so the static segment does not clash with the
	// /foods/:id wildcard.
	dealer := r.Group("/dealer")
	{
		dealer.POST("/register", controllers.RegisterDealer)
		dealer.GET("/foods", middlewares.AuthMiddleware(), controllers.ListMyFoods)
	}

	// Protected user routes
	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("/me", controllers.GetProfile)
	}

	// Foods: reads are public, mutations need a token
	foods := r.Group("/foods")
	{
		foods.GET("", controllers.ListFoods)
		foods.GET("/:id", controllers.GetFood)
	}
	foodsAuth := r.Group("/foods")
	foodsAuth.Use(middlewares.AuthMiddleware())
	{
		foodsAuth.POST("", controllers.CreateFood)
		foodsAuth.PUT("/:id", controllers.UpdateFood)
		foodsAuth.DELETE("/:id", controllers.DeleteFood)
	}

	// Allergen catalog: reads public, catalog mutation admin-only (checked in
	// the service), translations open to any authenticated user
	allergens := r.Group("/allergens")
	{
		allergens.GET("", controllers.ListAllergens)
		allergens.GET("/:id", controllers.GetAllergen)
	}
	allergensAuth := r.Group("/allergens")
	allergensAuth.Use(middlewares.AuthMiddleware())
	{
		allergensAuth.POST("", controllers.CreateAllergen)
		allergensAuth.PUT("/:id", controllers.UpdateAllergen)
		allergensAuth.DELETE("/:id", controllers.DeleteAllergen)
		allergensAuth.POST("/:id/translations", controllers.CreateAllergenTranslation)
		allergensAuth.PUT("/:id/translations/:language_id", controllers.UpdateAllergenTranslation)
	}

	// Restaurants: storefront reads are public, management needs a token. The
	// :id segment also accepts the public slug, so no extra static route
	// competes with the wildcard.
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", controllers.ListRestaurants)
		restaurants.GET("/:id", controllers.GetRestaurant)
		restaurants.GET("/:id/categories", controllers.ListRestaurantCategories)
	}
	restaurantsAuth := r.Group("/restaurants")
	restaurantsAuth.Use(middlewares.AuthMiddleware())
	{
		restaurantsAuth.POST("", controllers.CreateRestaurant)
		restaurantsAuth.PUT("/:id", controllers.UpdateRestaurant)
		restaurantsAuth.POST("/:id/categories", controllers.CreateRestaurantCategory)
		restaurantsAuth.PUT("/:id/settings", controllers.UpdateRestaurantSettings)
		restaurantsAuth.GET("/:id/orders", controllers.ListRestaurantOrders)
	}

	// Orders live at the root so the static path cannot clash with the
	// /restaurants/:id wildcard. Placing an order is public.
	r.POST("/orders", controllers.PlaceOrder)
	r.PUT("/orders/:id/status", middlewares.AuthMiddleware(), controllers.UpdateOrderStatus)

	r.GET("/languages", controllers.ListLanguages)

	return r
}

package routes

import (
	"strings"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/api/middleware"
	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/config"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, images storage.ImageStore, version string) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(otelgin.Middleware(serviceName(cfg)))
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tagRepo := repository.NewTagRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	shoppingListRepo := repository.NewShoppingListRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(ingredientRepo, tagRepo)
	recipeService := service.NewRecipeService(service.RecipeServiceDeps{
		Recipes:       recipeRepo,
		Ingredients:   ingredientRepo,
		Tags:          tagRepo,
		Favorites:     favoriteRepo,
		Cart:          cartRepo,
		Subscriptions: subscriptionRepo,
		Images:        images,
	}, validator, cfg.RecipeMaxCookingTime)
	membershipService := service.NewMembershipService(service.MembershipServiceDeps{
		Recipes:       recipeRepo,
		Users:         userRepo,
		Favorites:     favoriteRepo,
		Cart:          cartRepo,
		Subscriptions: subscriptionRepo,
		Images:        images,
	})
	shoppingListService := service.NewShoppingListService(cartRepo, shoppingListRepo)
	userService := service.NewUserService(userRepo, subscriptionRepo)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, version)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded images are served from disk when stored locally
	if local, ok := images.(*storage.LocalImageStore); ok {
		router.Static(mediaPath(cfg), local.Root())
	}

	v1 := router.Group("/api/v1")
	{
		// Catalog routes are public
		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", catalogHandler.ListIngredients)
			ingredients.GET("/:id", catalogHandler.GetIngredient)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", catalogHandler.ListTags)
			tags.GET("/:id", catalogHandler.GetTag)
		}

		// Recipe routes
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", optionalAuth, recipeHandler.ListRecipes)
			recipes.POST("", requireAuth, recipeHandler.CreateRecipe)
			recipes.GET("/download_shopping_cart", requireAuth, shoppingListHandler.DownloadShoppingCart)
			recipes.GET("/:id", optionalAuth, recipeHandler.GetRecipe)
			recipes.PATCH("/:id", requireAuth, recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", requireAuth, recipeHandler.DeleteRecipe)

			recipes.POST("/:id/favorite", requireAuth, membershipHandler.AddFavorite)
			recipes.DELETE("/:id/favorite", requireAuth, membershipHandler.RemoveFavorite)
			recipes.POST("/:id/shopping_cart", requireAuth, membershipHandler.AddToCart)
			recipes.DELETE("/:id/shopping_cart", requireAuth, membershipHandler.RemoveFromCart)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", requireAuth, userHandler.GetCurrentUser)
			users.GET("/subscriptions", requireAuth, membershipHandler.ListSubscriptions)
			users.GET("/:id", optionalAuth, userHandler.GetUser)
			users.POST("/:id/subscribe", requireAuth, membershipHandler.Subscribe)
			users.DELETE("/:id/subscribe", requireAuth, membershipHandler.Unsubscribe)
		}

		// Token issuing by email only exists outside production
		if !cfg.IsProduction() {
			authHandler := auth.NewAuthHandler(authService)
			v1.POST("/auth/token", authHandler.IssueToken)
			logger.New().Warn("Development token endpoint enabled at /api/v1/auth/token")
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, version string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

func serviceName(cfg *config.Config) string {
	if name := strings.TrimSpace(cfg.OtelServiceName); name != "" {
		return name
	}
	return "foodgram-backend"
}

func mediaPath(cfg *config.Config) string {
	path := strings.TrimRight(cfg.MediaBaseURL, "/")
	if path == "" || strings.Contains(path, "://") {
		return "/media"
	}
	return path
}

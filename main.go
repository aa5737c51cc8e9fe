package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/flowventory/backend/config"
	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
	"github.com/flowventory/backend/routes"
	"github.com/flowventory/backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to database
	client := config.ConnectDB()
	db := config.GetDatabase(client)

	// Create a new Echo instance
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.GlobalCORS())
	e.Use(middleware.NewRateLimiter().RateLimit())

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.HealthResponse{OK: true})
	})

	// Initialize repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	logRepo := repositories.NewLogRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	cascadeService := services.NewCascadeService(categoryRepo, brandRepo, itemRepo, logRepo)
	itemService := services.NewItemService(itemRepo, categoryRepo, brandRepo, logRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	categoryController := controllers.NewCategoryController(categoryRepo, cascadeService)
	brandController := controllers.NewBrandController(brandRepo, cascadeService)
	itemController := controllers.NewItemController(itemService)
	userController := controllers.NewUserController(userRepo)
	logController := controllers.NewLogController(logRepo)

	// Register routes
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterCategoryRoutes(e, categoryController)
	routes.RegisterBrandRoutes(e, brandController)
	routes.RegisterItemRoutes(e, itemController)
	routes.RegisterUserRoutes(e, userController)
	routes.RegisterLogRoutes(e, logController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"phonecat/internal/auth"
	"phonecat/internal/config"
	"phonecat/internal/handler"
	"phonecat/internal/middleware"
	"phonecat/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	carrierHandler *handler.CarrierHandler,
	manufacturerHandler *handler.ManufacturerHandler,
	phoneHandler *handler.PhoneHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.GET("/seed/catalog", seedHandler.SeedCatalog)

	// Secured routes (require JWT authentication)
	secured := api.Group("", middleware.JWT(tokens, users))

	secured.GET("/dashboard", userHandler.Dashboard)

	// User routes
	secured.GET("/users", userHandler.List)
	secured.GET("/users/me", userHandler.Me)
	secured.GET("/users/:id", userHandler.Get)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete)
	secured.POST("/users/:id/carrier", userHandler.AssignCarrier)

	// Carrier routes
	secured.GET("/carrier/list", carrierHandler.List)
	secured.GET("/carrier/:id", carrierHandler.Get)
	secured.POST("/carrier", carrierHandler.Create)
	secured.PUT("/carrier/:id", carrierHandler.Update)
	secured.DELETE("/carrier/:id", carrierHandler.Delete)

	// Manufacturer routes
	secured.GET("/manufacturer/list", manufacturerHandler.List)
	secured.GET("/manufacturer/:id", manufacturerHandler.Get)
	secured.POST("/manufacturer", manufacturerHandler.Create)
	secured.PUT("/manufacturer/:id", manufacturerHandler.Update)
	secured.DELETE("/manufacturer/:id", manufacturerHandler.Delete)

	// Phone routes
	secured.GET("/phone/list", phoneHandler.List)
	secured.GET("/phone/:id", phoneHandler.Get)
	secured.POST("/phone", phoneHandler.Create)
	secured.POST("/phone/addList", phoneHandler.CreateBatch)
	secured.PUT("/phone/:id", phoneHandler.Update)
	secured.DELETE("/phone/:id", phoneHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

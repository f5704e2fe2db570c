package routes

import (
	"Surplus-Market/internal/api/handlers"
	"Surplus-Market/internal/middleware"
	"Surplus-Market/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	UserHandler handlers.UserHandler
	FoodHandler handlers.FoodHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Items()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		users.Get("/verify", c.UserHandler.VerifyEmail)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")

	// public reads
	items.Get("", c.FoodHandler.GetFoodItems)
	items.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.GetMyFoodItems)
	items.Get("/:id", c.FoodHandler.GetFoodItemDetails)

	// seller writes
	items.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.AddFoodItem)
	items.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.UpdateFoodItem)
	items.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.DeleteFoodItem)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

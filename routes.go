package marketplace

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api. The identity middleware runs
// on every route and never rejects; handlers that need a user call
// RequireUser themselves, so public and protected endpoints share one
// pipeline.
func RegisterRoutes(app *fiber.App, repo RepositoryManager, auther *Auther, cfg Config) {
	logger := defLogger{}

	authCtrl := NewAuthController(
		WithAuthControllerRepo(repo),
		WithAuthControllerAuther(auther),
	)
	products := NewProductController(repo, logger)
	categories := NewCategoryController(repo, logger)
	cart := NewCartController(repo, logger)
	favorites := NewFavoriteController(repo, logger)
	messages := NewMessageController(repo, logger)

	api := app.Group("/api", RequestAuthenticator(auther.TokenService(), cfg))

	api.Post("/register", authCtrl.Register)
	api.Post("/login", authCtrl.Login)
	api.Get("/profile", authCtrl.ProfileShow)
	api.Put("/profile", authCtrl.ProfileUpdate)

	api.Get("/products", products.List)
	api.Post("/products", products.Create)
	api.Get("/products/category/:name", products.ByCategory)
	api.Get("/products/:id", products.Show)
	api.Put("/products/:id", products.Update)
	api.Delete("/products/:id", products.Delete)

	api.Get("/categories", categories.List)
	api.Get("/categories/name/:name", categories.ShowByName)
	api.Get("/categories/:id", categories.Show)

	api.Get("/cart", cart.List)
	api.Post("/cart", cart.Add)
	api.Put("/cart/:productId", cart.UpdateQuantity)
	api.Delete("/cart/:productId", cart.Remove)

	api.Get("/favorites", favorites.List)
	api.Post("/favorites/:productId", favorites.Add)
	api.Delete("/favorites/:productId", favorites.Remove)

	api.Get("/messages", messages.Inbox)
	api.Post("/messages", messages.Send)
}

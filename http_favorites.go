package marketplace

import (
	"github.com/gofiber/fiber/v2"
)

// FavoriteController manages a user's saved listings. Adding the same
// product twice is idempotent.
type FavoriteController struct {
	Logger Logger
	Repo   RepositoryManager
}

func NewFavoriteController(repo RepositoryManager, logger Logger) *FavoriteController {
	if logger == nil {
		logger = defLogger{}
	}
	return &FavoriteController{
		Logger: logger,
		Repo:   repo,
	}
}

// List returns the favorited products, not the join rows.
func (a *FavoriteController) List(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	records, err := a.Repo.Favorites().ByUser(c.UserContext(), user.ID)
	if err != nil {
		return err
	}

	products := make([]*Product, 0, len(records))
	for _, fav := range records {
		if fav.Product != nil {
			products = append(products, fav.Product)
		}
	}

	return c.JSON(products)
}

func (a *FavoriteController) Add(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return err
	}

	product, err := a.Repo.Products().Get(c.UserContext(), productID)
	if err != nil {
		return err
	}

	exists, err := a.Repo.Favorites().Exists(c.UserContext(), user.ID, productID)
	if err != nil {
		return err
	}

	// A repeat add is not an error; it answers with the product either way.
	if exists {
		return c.JSON(product)
	}

	if _, err := a.Repo.Favorites().Add(c.UserContext(), user.ID, productID); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (a *FavoriteController) Remove(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return err
	}

	if err := a.Repo.Favorites().RemoveByUserAndProduct(c.UserContext(), user.ID, productID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

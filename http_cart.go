package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// CartController manages the caller's shopping cart. Every endpoint
// requires an authenticated principal; the cart is scoped to the
// resolved user, never taken from the request body.
type CartController struct {
	Logger Logger
	Repo   RepositoryManager
}

func NewCartController(repo RepositoryManager, logger Logger) *CartController {
	if logger == nil {
		logger = defLogger{}
	}
	return &CartController{
		Logger: logger,
		Repo:   repo,
	}
}

func (a *CartController) List(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	records, err := a.Repo.CartItems().ByUser(c.UserContext(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// CartAddPayload adds a product to the cart. Quantities below one are
// clamped to one.
type CartAddPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Validate will validate the payload
func (r CartAddPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, is.UUID),
	)
}

// CartQuantityPayload sets the quantity of an item already in the cart.
type CartQuantityPayload struct {
	Quantity int `json:"quantity"`
}

// Validate will validate the payload
func (r CartQuantityPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func (a *CartController) Add(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	payload := new(CartAddPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("cart parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return wrapValidation(err, "invalid cart payload")
	}

	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return wrapValidation(err, "invalid product id")
	}

	if _, err := a.Repo.Products().Get(c.UserContext(), productID); err != nil {
		return err
	}

	quantity := clampQuantity(payload.Quantity)

	item, err := a.Repo.CartItems().ByUserAndProduct(c.UserContext(), user.ID, productID)
	switch {
	case err == nil:
		// Re-adding merges quantities instead of duplicating rows.
		item.Quantity += quantity
	case errors.IsNotFound(err):
		item = &CartItem{
			UserID:    user.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
	default:
		return err
	}

	saved, err := a.Repo.CartItems().Save(c.UserContext(), item)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (a *CartController) UpdateQuantity(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return err
	}

	payload := new(CartQuantityPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("cart parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return wrapValidation(err, "invalid cart payload")
	}

	item, err := a.Repo.CartItems().ByUserAndProduct(c.UserContext(), user.ID, productID)
	if err != nil {
		return err
	}

	item.Quantity = clampQuantity(payload.Quantity)

	saved, err := a.Repo.CartItems().Save(c.UserContext(), item)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}

func (a *CartController) Remove(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return err
	}

	if err := a.Repo.CartItems().RemoveByUserAndProduct(c.UserContext(), user.ID, productID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductController owns the listing endpoints. Browsing is open to
// anonymous callers; creating, editing and deleting go through the
// ownership policy.
type ProductController struct {
	Logger Logger
	Repo   RepositoryManager
}

func NewProductController(repo RepositoryManager, logger Logger) *ProductController {
	if logger == nil {
		logger = defLogger{}
	}
	return &ProductController{
		Logger: logger,
		Repo:   repo,
	}
}

func (a *ProductController) List(c *fiber.Ctx) error {
	records, err := a.Repo.Products().ListAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(records)
}

func (a *ProductController) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	record, err := a.Repo.Products().Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(record)
}

func (a *ProductController) ByCategory(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return ErrCategoryNotFound
	}

	records, err := a.Repo.Products().ByCategoryName(c.UserContext(), name)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// ProductPayload carries the listing fields for create and update.
type ProductPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Size        string `json:"size"`
	Condition   string `json:"condition"`
	ImageURL    string `json:"image_url"`
	CategoryID  string `json:"category_id"`
}

// Validate will validate the payload
func (r ProductPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.PriceCents, validation.Min(int64(0))),
		validation.Field(&r.Size, validation.Length(0, 20)),
		validation.Field(&r.Condition, validation.Length(0, 50)),
		validation.Field(&r.ImageURL, validation.Length(0, 500)),
		validation.Field(&r.CategoryID, is.UUID),
	)
}

func (r ProductPayload) categoryID() *uuid.UUID {
	if r.CategoryID == "" {
		return nil
	}
	id, err := uuid.Parse(r.CategoryID)
	if err != nil {
		return nil
	}
	return &id
}

func (a *ProductController) Create(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	payload := new(ProductPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("product parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return wrapValidation(err, "invalid product payload")
	}

	if cid := payload.categoryID(); cid != nil {
		if _, err := a.Repo.Categories().Get(c.UserContext(), *cid); err != nil {
			return err
		}
	}

	record := &Product{
		Title:       payload.Title,
		Description: payload.Description,
		PriceCents:  payload.PriceCents,
		Size:        payload.Size,
		Condition:   payload.Condition,
		ImageURL:    payload.ImageURL,
		CategoryID:  payload.categoryID(),
		OwnerID:     &user.ID,
	}

	saved, err := a.Repo.Products().Save(c.UserContext(), record)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (a *ProductController) Update(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	record, err := a.Repo.Products().Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	decision := Authorize(user, record.OwnerID, OpMutate)
	if !decision.Allowed {
		return decision.Reason
	}

	payload := new(ProductPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("product parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return wrapValidation(err, "invalid product payload")
	}

	record.Title = payload.Title
	record.Description = payload.Description
	record.PriceCents = payload.PriceCents
	record.Size = payload.Size
	record.Condition = payload.Condition
	record.ImageURL = payload.ImageURL
	record.CategoryID = payload.categoryID()

	if decision.Claim {
		// One-time orphan claim: the mutating caller becomes the owner.
		// Concurrent claimants race last-writer-wins.
		if err := a.Repo.Products().SetOwner(c.UserContext(), record.ID, user.ID); err != nil {
			return err
		}
	}

	saved, err := a.Repo.Products().Save(c.UserContext(), record)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}

func (a *ProductController) Delete(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	record, err := a.Repo.Products().Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	decision := Authorize(user, record.OwnerID, OpDelete)
	if !decision.Allowed {
		return decision.Reason
	}

	if err := a.Repo.Products().Remove(c.UserContext(), record.ID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

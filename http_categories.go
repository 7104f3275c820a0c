package marketplace

import (
	"github.com/gofiber/fiber/v2"
)

// CategoryController exposes the read-only category catalog.
type CategoryController struct {
	Logger Logger
	Repo   RepositoryManager
}

func NewCategoryController(repo RepositoryManager, logger Logger) *CategoryController {
	if logger == nil {
		logger = defLogger{}
	}
	return &CategoryController{
		Logger: logger,
		Repo:   repo,
	}
}

func (a *CategoryController) List(c *fiber.Ctx) error {
	records, err := a.Repo.Categories().ListAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(records)
}

func (a *CategoryController) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	record, err := a.Repo.Categories().Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(record)
}

func (a *CategoryController) ShowByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return ErrCategoryNotFound
	}

	record, err := a.Repo.Categories().GetByName(c.UserContext(), name)
	if err != nil {
		return err
	}

	return c.JSON(record)
}

package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// MessageController handles direct messages between users. The inbox
// only ever shows messages addressed to the caller.
type MessageController struct {
	Logger Logger
	Repo   RepositoryManager
}

func NewMessageController(repo RepositoryManager, logger Logger) *MessageController {
	if logger == nil {
		logger = defLogger{}
	}
	return &MessageController{
		Logger: logger,
		Repo:   repo,
	}
}

// Inbox lists received messages, newest first.
func (a *MessageController) Inbox(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	records, err := a.Repo.Messages().InboxFor(c.UserContext(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// MessagePayload addresses the recipient by email.
type MessagePayload struct {
	RecipientEmail string `json:"recipient_email"`
	Content        string `json:"content"`
}

// Validate will validate the payload
func (r MessagePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipientEmail, validation.Required, is.Email),
		validation.Field(&r.Content, validation.Required, validation.Length(1, 5000)),
	)
}

func (a *MessageController) Send(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	payload := new(MessagePayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("message parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return wrapValidation(err, "invalid message payload")
	}

	recipient, err := a.Repo.Users().GetByEmail(c.UserContext(), payload.RecipientEmail)
	if err != nil {
		// An unknown recipient is a bad request, not a missing resource.
		if errors.IsNotFound(err) {
			return ErrRecipientNotFound
		}
		return err
	}

	record := &Message{
		SenderID:    user.ID,
		RecipientID: recipient.ID,
		Content:     payload.Content,
	}

	saved, err := a.Repo.Messages().Send(c.UserContext(), record)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

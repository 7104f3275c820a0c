package marketplace

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// AuthController owns the credential endpoints: registration, login, and the
// caller's own profile.
type AuthController struct {
	Logger Logger
	Repo   RepositoryManager
	Auther Authenticator
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

func WithAuthControllerRepo(repo RepositoryManager) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Repo = repo
		return c
	}
}

func WithAuthControllerAuther(auther Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

func WithAuthControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if logger != nil {
			c.Logger = logger
		}
		return c
	}
}

// RegistrationPayload holds a new user's fields. The password arrives in
// plaintext and is hashed before anything persists; the response never
// includes it.
type RegistrationPayload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// Validate will validate the payload
func (r RegistrationPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.DisplayName, validation.Length(0, 200)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.AvatarURL, validation.Length(0, 500)),
	)
}

func (a *AuthController) Register(c *fiber.Ctx) error {
	payload := new(RegistrationPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Debug("register validate payload", "error", err)
		return wrapValidation(err, "invalid registration payload")
	}

	user, err := a.Auther.Register(c.UserContext(), RegisterPayload{
		Email:       payload.Email,
		Password:    payload.Password,
		DisplayName: payload.DisplayName,
		Bio:         payload.Bio,
		AvatarURL:   payload.AvatarURL,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginPayload is the credential pair presented at login. Transient; it is
// never persisted.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := new(LoginPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		// A malformed login still answers with the generic credentials
		// error; reporting which field failed would leak probing hints.
		a.Logger.Debug("login validate payload", "error", err)
		return ErrInvalidCredentials
	}

	token, err := a.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token})
}

func (a *AuthController) ProfileShow(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// ProfileUpdatePayload carries the self-service editable fields. Email and
// password changes are not part of this surface.
type ProfileUpdatePayload struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// Validate will validate the payload
func (r ProfileUpdatePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.AvatarURL, validation.Length(0, 500)),
	)
}

func (a *AuthController) ProfileUpdate(c *fiber.Ctx) error {
	user, err := RequireUser(c, a.Repo.Users())
	if err != nil {
		return err
	}

	payload := new(ProfileUpdatePayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("profile parse payload", "error", err)
		return wrapValidation(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return wrapValidation(err, "invalid profile payload")
	}

	user.DisplayName = payload.DisplayName
	user.Bio = payload.Bio
	user.AvatarURL = payload.AvatarURL

	updated, err := a.Repo.Users().UpdateProfile(c.UserContext(), user)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

package marketplace

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

// NewErrorHandler returns the fiber error handler that forms the recovery
// boundary for every endpoint. Expected failures carry their HTTP status in
// the rich error; anything else becomes an opaque 500. Nothing in here is
// allowed to crash the process.
func NewErrorHandler(logger Logger, debug bool) fiber.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx, err error) error {
		var richErr *errors.Error
		if !errors.As(err, &richErr) {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(fiber.Map{
					"error": fiber.Map{"message": fe.Message},
				})
			}
			richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
				WithCode(errors.CodeInternal)
		}

		status := richErr.Code
		if status == 0 {
			status = http.StatusInternalServerError
		}

		logger.Info(
			"request error",
			"error", richErr.Message,
			"category", richErr.Category,
			"text_code", richErr.TextCode,
			"path", c.OriginalURL(),
		)
		if debug {
			logger.Debug("request error details", "details", print.MaybePrettyJSON(richErr.Metadata))
		}

		// Internal details stay server-side; the body carries the message the
		// taxonomy deems safe to show.
		message := richErr.Message
		if richErr.Category == errors.CategoryInternal {
			message = "internal server error"
		}

		return c.Status(status).JSON(fiber.Map{
			"error": fiber.Map{
				"message": message,
				"code":    richErr.TextCode,
			},
		})
	}
}

// RequireUser resolves the request's principal to its full user record.
// Anonymous and invalid-token callers get the same ErrUnauthenticated; a 401
// must not reveal whether a token was missing, expired or forged. A valid
// token whose account has since vanished is also a 401, not a 404.
func RequireUser(c *fiber.Ctx, users Users) (*User, error) {
	p := PrincipalFromContext(c.UserContext())
	if !p.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	user, err := users.GetByEmail(c.UserContext(), p.Email())
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := c.Params(name)
	if raw == "" {
		return uuid.Nil, errors.New("missing "+name, errors.CategoryValidation).
			WithCode(errors.CodeBadRequest).
			WithTextCode("MISSING_PARAM")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, wrapValidation(err, "invalid "+name)
	}

	return id, nil
}

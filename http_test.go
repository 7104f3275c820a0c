package marketplace_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/refashion/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(t *testing.T) *fiber.App {
	t.Helper()
	return fiber.New(fiber.Config{
		ErrorHandler: marketplace.NewErrorHandler(nil, false),
	})
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Unauthenticated", marketplace.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"Forbidden", marketplace.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"Not found", marketplace.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"Duplicate email", marketplace.ErrEmailTaken, http.StatusBadRequest, "EMAIL_TAKEN"},
		{"Bad recipient", marketplace.ErrRecipientNotFound, http.StatusBadRequest, "RECIPIENT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorApp(t)
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body struct {
				Error struct {
					Message string `json:"message"`
					Code    string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, decodeBody(resp, &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorHandlerMasksInternalErrors(t *testing.T) {
	app := newErrorApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database password is hunter2", errors.CategoryInternal).
			WithCode(errors.CodeInternal)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, decodeBody(resp, &body))
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "hunter2")
}

type fakeUsers struct {
	marketplace.Users

	byEmail map[string]*marketplace.User
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*marketplace.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, marketplace.ErrUserNotFound
}

func TestRequireUser(t *testing.T) {
	cfg := testConfig()
	svc := marketplace.NewTokenService([]byte(cfg.SigningKey), 1, cfg.Issuer, nil)

	known := &marketplace.User{ID: uuid.New(), Email: "known@example.com"}
	users := &fakeUsers{byEmail: map[string]*marketplace.User{known.Email: known}}

	app := fiber.New(fiber.Config{
		ErrorHandler: marketplace.NewErrorHandler(nil, false),
	})
	app.Use(marketplace.RequestAuthenticator(svc, cfg))
	app.Get("/me", func(c *fiber.Ctx) error {
		user, err := marketplace.RequireUser(c, users)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": user.ID})
	})

	knownToken, err := svc.Generate(known.Email)
	require.NoError(t, err)

	vanishedToken, err := svc.Generate("gone@example.com")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"Anonymous", "", http.StatusUnauthorized},
		{"Invalid token", "Bearer nope", http.StatusUnauthorized},
		{"Valid token, vanished account", "Bearer " + vanishedToken, http.StatusUnauthorized},
		{"Valid token", "Bearer " + knownToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authorization != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authorization)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

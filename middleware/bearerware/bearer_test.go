package bearerware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/refashion/marketplace/middleware/bearerware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	subject string
}

func (s stubClaims) Subject() string {
	return s.subject
}

func stubValidator(goodToken, subject string) bearerware.TokenValidator {
	return bearerware.TokenValidatorFunc(func(tokenString string) (bearerware.AuthClaims, error) {
		if tokenString == goodToken {
			return stubClaims{subject: subject}, nil
		}
		return nil, errors.New("invalid token")
	})
}

func newTestApp(t *testing.T, cfg bearerware.Config) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(bearerware.New(cfg))
	app.Get("/probe", func(c *fiber.Ctx) error {
		state, _ := c.Locals("principal").(bearerware.State)

		subject := ""
		if claims, ok := c.Locals("principal:claims").(bearerware.AuthClaims); ok {
			subject = claims.Subject()
		}

		return c.JSON(fiber.Map{
			"state":   string(state),
			"subject": subject,
		})
	})

	return app
}

func probe(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func TestMiddlewareNeverRejects(t *testing.T) {
	app := newTestApp(t, bearerware.Config{
		TokenValidator: stubValidator("good-token", "user@example.com"),
	})

	for _, header := range []string{"", "Bearer bad-token", "Bearer good-token", "Basic abc"} {
		resp := probe(t, app, header)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
	}
}

func TestMiddlewareStates(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantState     bearerware.State
		wantSubject   string
	}{
		{
			name:          "No header is anonymous",
			authorization: "",
			wantState:     bearerware.StateAnonymous,
		},
		{
			name:          "Bad token is invalid",
			authorization: "Bearer bad-token",
			wantState:     bearerware.StateInvalid,
		},
		{
			name:          "Wrong scheme is invalid, not anonymous",
			authorization: "Basic dXNlcjpwYXNz",
			wantState:     bearerware.StateInvalid,
		},
		{
			name:          "Empty credential is invalid",
			authorization: "Bearer ",
			wantState:     bearerware.StateInvalid,
		},
		{
			name:          "Good token authenticates",
			authorization: "Bearer good-token",
			wantState:     bearerware.StateAuthenticated,
			wantSubject:   "user@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, bearerware.Config{
				TokenValidator: stubValidator("good-token", "user@example.com"),
			})

			resp := probe(t, app, tt.authorization)
			defer resp.Body.Close()

			var body struct {
				State   string `json:"state"`
				Subject string `json:"subject"`
			}
			require.NoError(t, decodeJSON(resp, &body))

			assert.Equal(t, string(tt.wantState), body.State)
			assert.Equal(t, tt.wantSubject, body.Subject)
		})
	}
}

func TestContextEnricher(t *testing.T) {
	type enrichedKey struct{}

	var seenState bearerware.State
	var seenSubject string

	app := fiber.New()
	app.Use(bearerware.New(bearerware.Config{
		TokenValidator: stubValidator("good-token", "user@example.com"),
		ContextEnricher: func(ctx context.Context, state bearerware.State, claims bearerware.AuthClaims) context.Context {
			seenState = state
			if claims != nil {
				seenSubject = claims.Subject()
			}
			return context.WithValue(ctx, enrichedKey{}, state)
		},
	}))
	app.Get("/probe", func(c *fiber.Ctx) error {
		state, _ := c.UserContext().Value(enrichedKey{}).(bearerware.State)
		return c.SendString(string(state))
	})

	resp := probe(t, app, "Bearer good-token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, bearerware.StateAuthenticated, seenState)
	assert.Equal(t, "user@example.com", seenSubject)
}

func TestMissingValidatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		bearerware.New(bearerware.Config{})
	})
}

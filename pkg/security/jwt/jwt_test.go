package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/pkg/auth"
)

func protectedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		id, _ := c.Locals("userId").(string)
		return c.SendString(id)
	})
	return app
}

func TestMiddlewareAcceptsGeneratedToken(t *testing.T) {
	gen := NewGenerator("secret", "resume-builder", time.Minute)
	user := auth.User{ID: uuid.New()}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := protectedApp("secret", "resume-builder")

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	gen := NewGenerator("secret", "resume-builder", time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	cases := []struct {
		name   string
		app    *fiber.App
		header string
	}{
		{"missing header", protectedApp("secret", "resume-builder"), ""},
		{"garbage token", protectedApp("secret", "resume-builder"), "Bearer not-a-jwt"},
		{"wrong secret", protectedApp("other-secret", "resume-builder"), "Bearer " + token},
		{"wrong issuer", protectedApp("secret", "someone-else"), "Bearer " + token},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := tc.app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestTokenSubjectIsUserID(t *testing.T) {
	gen := NewGenerator("secret", "resume-builder", time.Minute)
	user := auth.User{ID: uuid.New()}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", NewAuthMiddleware("secret", "resume-builder"), func(c *fiber.Ctx) error {
		id, _ := c.Locals("userId").(string)
		return c.SendString(id)
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, user.ID.String(), string(body[:n]))
}

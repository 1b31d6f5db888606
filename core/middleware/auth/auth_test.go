package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(New(Config{Secret: secret, PublicPrefixes: []string{"/account"}}))
	app.Get("/inventory", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	app.Post("/account/login", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/accounts-admin", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(secret, "user-1", "traveler", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "traveler", claims.Username)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = IssueToken("", "user-1", "traveler", time.Hour)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := IssueToken(secret, "user-1", "traveler", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	app := newApp()

	t.Run("MissingToken", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/inventory", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/inventory", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := IssueToken(secret, "user-42", "traveler", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/inventory", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "user-42", string(body))
	})

	t.Run("PublicPrefix", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/account/login", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestMiddleware_PublicPrefixMatchesSegments(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/account/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/accounts-admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestIsPublic(t *testing.T) {
	prefixes := []string{"/account", "/swagger/"}

	assert.True(t, isPublic("/account", prefixes))
	assert.True(t, isPublic("/account/register", prefixes))
	assert.True(t, isPublic("/swagger/index.html", prefixes))
	assert.True(t, isPublic("/swagger", prefixes))
	assert.False(t, isPublic("/accounts-admin", prefixes))
	assert.False(t, isPublic("/inventory", prefixes))
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsKey is the Fiber Locals key holding the authenticated user id.
const LocalsKey = "user_id"

// ErrInvalidToken is returned for tokens that fail parsing or verification.
var ErrInvalidToken = errors.New("invalid token")

// Config configures the bearer token middleware.
type Config struct {
	// Secret is the HS256 key tokens are signed with.
	Secret string
	// PublicPrefixes are path prefixes served without a token. A prefix
	// matches whole path segments only: "/account" covers "/account/login"
	// but not "/accounts".
	PublicPrefixes []string
}

// Claims are the JWT claims issued by the account feature.
// The subject is the user id owning the inventory.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// New returns a middleware that requires a valid bearer token on every
// non-public route and stores the user id in Locals.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isPublic(c.Path(), cfg.PublicPrefixes) {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		claims, err := ParseToken(cfg.Secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(LocalsKey, claims.Subject)
		return c.Next()
	}
}

func isPublic(path string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimSuffix(p, "/")
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// UserID returns the authenticated user id of the request, or "".
func UserID(c *fiber.Ctx) string {
	uid, _ := c.Locals(LocalsKey).(string)
	return uid
}

// IssueToken signs a token for userID valid for ttl.
func IssueToken(secret, userID, username string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies a token and returns its claims.
func ParseToken(secret, token string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: jwt secret is not configured", ErrInvalidToken)
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

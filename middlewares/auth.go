package middlewares

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AdminCookie carries the admin session token.
const AdminCookie = "admin_session"

// AdminClaims is the JWT payload for the admin session (subject=admin email).
type AdminClaims struct {
	jwt.RegisteredClaims
}

var (
	secretOnce sync.Once
	jwtSecret  []byte
	secretErr  error
)

func loadJWTSecret() error {
	secretOnce.Do(func() {
		// Prefer SESSION_SECRET, fallback to JWT_SECRET
		sec := os.Getenv("SESSION_SECRET")
		if strings.TrimSpace(sec) == "" {
			sec = os.Getenv("JWT_SECRET")
		}
		if strings.TrimSpace(sec) == "" {
			secretErr = errors.New("session secret not configured (set SESSION_SECRET or JWT_SECRET)")
			return
		}
		jwtSecret = []byte(sec)
	})
	return secretErr
}

// IsAdmin validates the admin session cookie, enforces HS256, and populates
// c.Locals("adminEmail").
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := loadJWTSecret(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "server auth not configured")
		}

		raw := strings.TrimSpace(c.Cookies(AdminCookie))
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "admin login required")
		}

		parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		var claims AdminClaims
		token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}
		if strings.TrimSpace(claims.Subject) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "session missing subject")
		}

		c.Locals("adminEmail", claims.Subject)
		return c.Next()
	}
}

// GenerateAdminJWT signs a new HS256 session token for the admin, expiring in 24h.
func GenerateAdminJWT(email string) (string, error) {
	if err := loadJWTSecret(); err != nil {
		return "", err
	}
	now := time.Now()
	claims := &AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"SonicSavor/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"

var (
	ErrEmptyHeader   = errors.New("empty Authorization header")
	ErrInvalidFormat = errors.New("invalid Authorization format")
	ErrNoSecret      = errors.New("JWT secret not configured")
	ErrMissingClaims = errors.New("token claims are missing required fields")
)

// Claims is the verified content of an admin access token.
type Claims struct {
	TokenID   string
	Subject   string
	Username  string
	ExpiresAt time.Time
}

// Sign issues an HS256 token for data with a fresh jti. It returns the token
// and its expiry as a unix timestamp.
func Sign(data map[string]interface{}, ttl time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(ttl).Unix()

	secret := os.Getenv(AccessTokenSecret)
	if secret == "" {
		return "", 0, fmt.Errorf("%s not set", AccessTokenSecret)
	}

	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	claims["exp"] = expiredAt
	claims["jti"] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyHeader
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}

// Verify parses accessToken with the secret read from secretEnvKey and
// extracts the admin claims.
func Verify(accessToken string, secretEnvKey string) (Claims, error) {
	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return Claims{}, ErrNoSecret
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMissingClaims
	}

	jti, _ := mapClaims["jti"].(string)
	sub, _ := mapClaims["id"].(string)
	username, _ := mapClaims["username"].(string)
	if jti == "" || sub == "" || username == "" {
		return Claims{}, ErrMissingClaims
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrMissingClaims
	}

	return Claims{TokenID: jti, Subject: sub, Username: username, ExpiresAt: exp.Time}, nil
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (Claims, error) {
	accessToken, err := BearerToken(c.Get("Authorization"))
	if err != nil {
		return Claims{}, err
	}
	return Verify(accessToken, secretEnvKey)
}

func GetAdminLoginData(c *fiber.Ctx) (entity.AdminLoginData, error) {
	admin, ok := c.Locals("admin").(entity.AdminLoginData)
	if !ok {
		return entity.AdminLoginData{}, fiber.ErrUnauthorized
	}
	return admin, nil
}

// RevokedKey is the redis key that marks a token id as logged out.
func RevokedKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

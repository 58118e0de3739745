package http

import (
	"errors"
	"net/http"
	"strings"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth_claims"

// Claims is the verified content of an access token. Token issuance lives
// outside this service; the middleware only verifies and trusts the claims.
type Claims struct {
	Role      string `json:"role"`
	PartnerID string `json:"partner_id,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the Bearer token on every request and stores the
// claims in the echo context. Only HS256 tokens are accepted.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := new(Claims)
			_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return secret, nil
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole rejects requests whose token does not carry one of the given
// roles.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role.String()] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFrom(c)
			if err != nil {
				return err
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func claimsFrom(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return claims, nil
}

// currentUserID returns the authenticated user's identity from the token
// subject.
func currentUserID(c echo.Context) (kernel.UUID, error) {
	claims, err := claimsFrom(c)
	if err != nil {
		return kernel.UUID{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

// currentPartnerID returns the delivery partner aggregate linked to the
// authenticated account.
func currentPartnerID(c echo.Context) (kernel.UUID, error) {
	claims, err := claimsFrom(c)
	if err != nil {
		return kernel.UUID{}, err
	}

	id, err := kernel.UUIDFromString(claims.PartnerID)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusForbidden, "token carries no partner identity")
	}
	return id, nil
}

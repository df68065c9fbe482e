package middleware

import (
	"strings"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/errors"

	"github.com/labstack/echo/v4"
)

// accessTokenCookie is the cookie consulted when no Authorization header is
// present, so browser clients can authenticate without scripting headers.
const accessTokenCookie = "access_token"

// AuthMiddleware guards routes behind a verified access token.
type AuthMiddleware struct {
	codec       service.TokenCodec
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.TokenCodec, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{codec: codec, accountRepo: accountRepo}
}

// Authenticate validates the access token and resolves the account it was
// issued to. The Authorization header wins over the access_token cookie when
// both are present. On success the principal is attached to the request
// context for handlers and role gates downstream.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var tokenString string

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return response.Unauthorized(c, "Invalid token format, must be Bearer token")
			}
		} else {
			cookie, err := c.Cookie(accessTokenCookie)
			if err != nil || cookie.Value == "" {
				return response.Unauthorized(c, "Missing access token")
			}
			tokenString = cookie.Value
		}

		claims, err := m.codec.Verify(tokenString, service.TokenTypeAccess)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return response.NotFound(c, "Account not found")
			}

			return errors.WithStack(err)
		}

		if !account.IsActive {
			return response.Forbidden(c, "Account has been deactivated")
		}

		principal := &entity.Principal{
			AccountID: account.ID,
			Username:  account.Username,
			Email:     account.Email,
			Role:      account.Role,
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
			if !ok {
				return response.Forbidden(c, "Permission denied: principal missing")
			}

			if principal.Role != requiredRole {
				return response.Forbidden(c, "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "proximity/internal/delivery/context"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// keyScopes holds the verified scopes on echo.Context
const keyScopes = "operator_scopes"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Logger   *slog.Logger
	TokenSvc service.TokenService `optional:"true"`
}

// AuthMiddleware guards the operator query API with bearer tokens.
// Without a token service every request passes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	if params.TokenSvc == nil {
		params.Logger.Warn("Operator auth disabled, query API is open")
	}

	return &AuthMiddleware{tokenSvc: params.TokenSvc}
}

// Enabled reports whether tokens are being checked.
func (m *AuthMiddleware) Enabled() bool {
	return m.tokenSvc != nil
}

// Authenticate validates the bearer token and stores the operator on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.tokenSvc == nil {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("must be a Bearer token")
		}

		token, err := m.tokenSvc.ValidateOperatorToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		deliverycontext.SetOperator(c, token.Subject)
		c.Set(keyScopes, token.Scopes)

		return next(c)
	}
}

// RequireScope checks the scope granted by Authenticate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.tokenSvc == nil {
				return next(c)
			}

			scopes, _ := c.Get(keyScopes).([]string)
			if !slices.Contains(scopes, scope) {
				return domainerrors.ErrForbidden.WithDetails("require '" + scope + "' scope")
			}

			return next(c)
		}
	}
}

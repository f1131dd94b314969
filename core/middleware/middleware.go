package middleware

import (
	"fmt"
	"strings"
	"time"

	"internhub/core/cache"
	"internhub/core/constants"
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token and stores its claims in context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}
			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(ctx.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", err)
					return controller.NewErrorResponse(500, errors.ErrInternalServer, "Failed to verify session")
				}
				if blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Session has been revoked")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Invalid or expired token")
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}

// RequireRole guards a route group to a single role. Must run after AuthMiddleware.
func (m *Middleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "User not authenticated")
			}
			if claims.Role != role {
				return controller.NewErrorResponse(403, errors.ErrForbidden, "Insufficient permissions")
			}
			return next(ctx)
		}
	}
}

// RateLimit caps requests per user per window using redis. Bookkeeping is
// best-effort: if redis is unavailable the request goes through.
func (m *Middleware) RateLimit(limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if m.cache == nil {
				return next(ctx)
			}

			key := constants.RedisKeyRateLimit + ctx.Path() + ":" + ctx.RealIP()
			if claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims); ok {
				key = fmt.Sprintf("%s%s:%s", constants.RedisKeyRateLimit, ctx.Path(), claims.UserID)
			}

			count, err := m.cache.IncrWithTTL(ctx.Request().Context(), key, window)
			if err != nil {
				logger.Warn("Middleware:RateLimit:IncrWithTTL:Error:", err)
				return next(ctx)
			}
			if count > int64(limit) {
				return controller.NewErrorResponse(429, errors.ErrInvalidInput, "Too many requests, please slow down")
			}
			return next(ctx)
		}
	}
}

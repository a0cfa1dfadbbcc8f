package http_auth_middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/common"
	session_auth "github.com/johnziss9/SceneStack-sub000/internal/service/session_auth"
)

const (
	// SessionHeader carries the token minted by the identity service.
	SessionHeader = "X-Session-Token"

	userIDKey = "user_id"
)

type TokenResolver interface {
	Resolve(token string) (uuid.UUID, error)
}

type Middleware struct {
	resolver TokenResolver
	logger   *slog.Logger
}

type MiddlewareOption func(*Middleware)

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(
	resolver TokenResolver,
	opts ...MiddlewareOption,
) *Middleware {
	m := &Middleware{
		resolver: resolver,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AuthRequired resolves the session header into a user id and stores it on
// the request context for handlers to pick up via UserID.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(SessionHeader)
		if t == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Error: fmt.Sprintf("no %s header", SessionHeader),
				Code:  http.StatusUnauthorized,
			})
			ctx.Abort()
			return
		}

		userID, err := m.resolver.Resolve(t)
		if err != nil {
			if errors.Is(err, session_auth.ErrNoSession) {
				m.logger.Warn("unknown session token")
				ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Error: "invalid session token",
					Code:  http.StatusUnauthorized,
				})
				ctx.Abort()
				return
			}

			m.logger.Error("session resolution failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "internal error",
				Code:  http.StatusInternalServerError,
			})
			ctx.Abort()
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// UserID reads the authenticated user id placed by AuthRequired.
func UserID(ctx *gin.Context) (uuid.UUID, bool) {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

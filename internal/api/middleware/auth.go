package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/auth"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
	msgAdminOnly    = "доступ запрещен"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// TokenParser интерфейс проверки JWT токенов
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware проверки JWT токенов
type Auth struct {
	parser TokenParser
	logger Logger
}

// NewAuth создает новый экземпляр auth middleware
func NewAuth(parser TokenParser, logger Logger) *Auth {
	return &Auth{
		parser: parser,
		logger: logger,
	}
}

// Authenticate проверяет Bearer токен и кладет ID и роль пользователя в контекст
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			a.logger.Warn("auth: missing token for %s %s", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.parser.Parse(token)
		if err != nil {
			a.logger.Warn("auth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только пользователей с ролью admin.
// Используется после Authenticate.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			a.logger.Warn("auth: admin access denied for user=%d to %s %s", UserID(r.Context()), r.Method, r.URL.Path)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// UserID возвращает ID пользователя из контекста запроса
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// UserRole возвращает роль пользователя из контекста запроса
func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// IsAdmin проверяет, что в контексте запроса роль admin
func IsAdmin(ctx context.Context) bool {
	return UserRole(ctx) == string(domain.RoleAdmin)
}

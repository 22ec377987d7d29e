package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/pkg/tokens"
)

const CtxUserID = "user_id"

var ErrNoSession = errors.New("no session")

// SessionResolver turns the access token carried by a request into the
// authenticated user id.
type SessionResolver struct {
	JWTSecret []byte
}

func NewSessionResolver(secret []byte) *SessionResolver {
	return &SessionResolver{JWTSecret: secret}
}

func (m *SessionResolver) Resolve(r *http.Request) (uuid.UUID, error) {
	raw := bearerToken(r)
	if raw == "" {
		if ck, err := r.Cookie(tokens.AccessCookieName); err == nil {
			raw = ck.Value
		}
	}
	if raw == "" {
		return uuid.Nil, ErrNoSession
	}

	claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
	if err != nil {
		return uuid.Nil, errors.Join(ErrNoSession, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, ErrNoSession
	}
	return userID, nil
}

func (m *SessionResolver) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.Resolve(c.Request())
		if err != nil {
			if _, ckErr := c.Cookie(tokens.AccessCookieName); ckErr == nil {
				c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/"))
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		c.Set(CtxUserID, userID)
		return next(c)
	}
}

// UserID returns the id stored by RequireAuth, or uuid.Nil when the route
// is not behind it.
func UserID(c echo.Context) uuid.UUID {
	id, _ := c.Get(CtxUserID).(uuid.UUID)
	return id
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

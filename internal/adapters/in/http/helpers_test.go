package http

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type handlerFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

func (f handlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(t *testing.T, h Handlers) *echo.Echo {
	t.Helper()
	e, err := NewEcho(NewServer(h, discardLogger()), RouterConfig{
		JWTSecret: testSecret,
		BodyLimit: "12M",
		Gatherer:  prometheus.NewRegistry(),
	}, discardLogger())
	require.NoError(t, err)
	return e
}

func signToken(t *testing.T, method jwt.SigningMethod, secret []byte, userID, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := tok.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func bearer(t *testing.T, actor kernel.Actor) string {
	t.Helper()
	return "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, actor.ID.String(), string(actor.Role))
}

func newActor(role kernel.Role) kernel.Actor {
	return kernel.Actor{ID: kernel.NewUUID(), Role: role}
}

func doJSON(t *testing.T, e *echo.Echo, method, target, auth, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}


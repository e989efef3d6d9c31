package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wardrobe/config"
	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/delivery/http/middleware"
	"wardrobe/internal/delivery/http/router"
	"wardrobe/internal/delivery/http/router/handler"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	mockUsecase "wardrobe/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo           *echo.Echo
	auth           *mockUsecase.MockAuthUsecase
	oauth          *mockUsecase.MockOAuthUsecase
	biometric      *mockUsecase.MockBiometricUsecase
	recommendation *mockUsecase.MockRecommendationUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{CORS: &config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}}}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	s := &testServer{
		auth:           mockUsecase.NewMockAuthUsecase(t),
		oauth:          mockUsecase.NewMockOAuthUsecase(t),
		biometric:      mockUsecase.NewMockBiometricUsecase(t),
		recommendation: mockUsecase.NewMockRecommendationUsecase(t),
	}

	r := router.NewRouter(router.RouterParams{
		AuthHandler:           handler.NewAuthHandler(s.auth),
		OAuthHandler:          handler.NewOAuthHandler(s.oauth),
		BiometricHandler:      handler.NewBiometricHandler(s.biometric),
		RecommendationHandler: handler.NewRecommendationHandler(s.recommendation),
		AuthMiddleware:        middleware.NewAuthMiddleware(s.auth),
	})
	s.echo = newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), r)

	return s
}

func (s *testServer) do(method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_ServiceEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = s.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wardrobe_http_request_duration_seconds")
}

func TestServer_ProtectedRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/biometrics/me"},
		{http.MethodPost, "/biometrics/me"},
		{http.MethodGet, "/recommendations/me"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(route.method, route.path, nil, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
		})
	}
}

func TestServer_AuthenticatedRequest(t *testing.T) {
	s := newTestServer(t)
	account := &entity.Account{ID: uuid.New(), Email: "jane@example.com", IsActive: true}

	s.auth.EXPECT().CurrentAccount(mock.Anything, "jwt-token").Return(account, nil).Once()
	s.recommendation.EXPECT().GetRecommendations(mock.Anything, account.ID).
		Return(nil, domainerrors.ErrProfileNotFound.WithDetails("Please complete analysis first.")).Once()

	rec := s.do(http.MethodGet, "/recommendations/me", nil, map[string]string{
		echo.HeaderAuthorization: "Bearer jwt-token",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please complete analysis first.")
}

func TestServer_UnknownRouteIsNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/nope", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestServer_BodyLimit(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/users/", strings.NewReader(`{"full_name":"`+strings.Repeat("x", 2048)+`"}`),
		map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodOptions, "/token", nil, map[string]string{
		echo.HeaderOrigin:                     "http://localhost:3000",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

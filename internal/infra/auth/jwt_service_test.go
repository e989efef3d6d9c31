package auth

import (
	"testing"
	"time"

	"wardrobe/config"
	domainerrors "wardrobe/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func requireTokenErrorKind(t *testing.T, err error, kind domainerrors.TokenErrorKind) {
	t.Helper()

	require.Error(t, err)
	var tokenErr *domainerrors.TokenError
	require.True(t, errors.As(err, &tokenErr), "expected *TokenError, got %T", err)
	assert.Equal(t, kind, tokenErr.Kind)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	for _, subject := range []string{"test@example.com", "Mixed.Case@Example.com", "a"} {
		token, err := svc.Issue(subject, time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		got, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	}
}

func TestJWTService_Claims(t *testing.T) {
	svc := newTestJWTService(t, testSecret)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	token, err := svc.Issue("test@example.com", svc.LoginTTL())
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", claims.Subject)
	assert.Equal(t, fixed.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, testSecret)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	assert.Equal(t, 15*time.Minute, svc.DefaultTTL())
	assert.Equal(t, 30*time.Minute, svc.LoginTTL())

	for _, ttl := range []time.Duration{0, -time.Hour} {
		token, err := svc.Issue("test@example.com", ttl)
		require.NoError(t, err)

		claims := &jwt.RegisteredClaims{}
		_, _, err = jwt.NewParser().ParseUnverified(token, claims)
		require.NoError(t, err)
		assert.Equal(t, fixed.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
	}
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	cfg := &config.Config{Token: &config.TokenConfig{DefaultTTL: time.Minute, LoginTTL: time.Hour}}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, svc.DefaultTTL())
	assert.Equal(t, time.Hour, svc.LoginTTL())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, testSecret)
	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("test@example.com", time.Minute)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	requireTokenErrorKind(t, err, domainerrors.ExpiredToken)
}

func TestJWTService_DifferentSecret(t *testing.T) {
	issuer := newTestJWTService(t, "another_secret_entirely")
	verifier := newTestJWTService(t, testSecret)

	token, err := issuer.Issue("test@example.com", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	requireTokenErrorKind(t, err, domainerrors.InvalidSignature)
}

func TestJWTService_ExpiredWithDifferentSecretIsInvalidSignature(t *testing.T) {
	issuer := newTestJWTService(t, "another_secret_entirely")
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	verifier := newTestJWTService(t, testSecret)

	token, err := issuer.Issue("test@example.com", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	requireTokenErrorKind(t, err, domainerrors.InvalidSignature)
}

func TestJWTService_OtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t, testSecret)
	claims := jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{"HS384": hs384, "none": none} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Validate(token)
			requireTokenErrorKind(t, err, domainerrors.InvalidSignature)
		})
	}
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	requireTokenErrorKind(t, err, domainerrors.MissingSubject)
}

func TestJWTService_MissingExpiry(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "test@example.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	requireTokenErrorKind(t, err, domainerrors.InvalidSignature)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := svc.Validate(token)
		requireTokenErrorKind(t, err, domainerrors.InvalidSignature)
	}
}

func TestJWTService_ErrorDoesNotLeakSecret(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	_, err := svc.Validate("a.b.c")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testSecret)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

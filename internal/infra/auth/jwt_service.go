package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"wardrobe/config"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/service"
)

var signingMethod = jwt.SigningMethodHS256

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte
	defaultTTL time.Duration
	loginTTL   time.Duration
	now        func() time.Time // shared by Issue and Validate
}

// NewJWTService is the constructor for jwtService.
// It fails fast when the signing secret is missing.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret:     []byte(cfg.SecretKey.Access),
		defaultTTL: 15 * time.Minute,
		loginTTL:   30 * time.Minute,
		now:        time.Now,
	}
	if cfg.Token != nil {
		if cfg.Token.DefaultTTL > 0 {
			svc.defaultTTL = cfg.Token.DefaultTTL
		}
		if cfg.Token.LoginTTL > 0 {
			svc.loginTTL = cfg.Token.LoginTTL
		}
	}

	return svc, nil
}

// Issue creates a signed token for subject.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Validate checks the signature, algorithm and expiry of tokenString and returns its subject.
func (s *jwtService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if token.Method != signingMethod {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domainerrors.NewTokenError(domainerrors.ExpiredToken)
		}

		return "", domainerrors.NewTokenError(domainerrors.InvalidSignature)
	}
	if !token.Valid {
		return "", domainerrors.NewTokenError(domainerrors.InvalidSignature)
	}

	if claims.Subject == "" {
		return "", domainerrors.NewTokenError(domainerrors.MissingSubject)
	}

	return claims.Subject, nil
}

// DefaultTTL returns the lifetime used when none is requested.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// LoginTTL returns the lifetime of login tokens.
func (s *jwtService) LoginTTL() time.Duration {
	return s.loginTTL
}

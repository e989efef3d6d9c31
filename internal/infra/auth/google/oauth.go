package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wardrobe/config"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

	defaultScopes  = "openid email profile"
	defaultTimeout = 10 * time.Second

	// maxResponseSize caps how much of a provider response is read.
	maxResponseSize = 1 << 20
)

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	authURL     string
	tokenURL    string
	userInfoURL string

	client *http.Client
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthService {
	return NewOAuthServiceWithClient(cfg, nil)
}

// NewOAuthServiceWithClient creates a Google OAuth service that sends its
// requests through client. A nil client gets one with the configured timeout.
func NewOAuthServiceWithClient(cfg *config.Config, client *http.Client) service.OAuthService {
	s := &OAuthService{
		scopes:      defaultScopes,
		authURL:     googleOAuthURL,
		tokenURL:    googleTokenURL,
		userInfoURL: googleUserInfoURL,
	}

	timeout := defaultTimeout
	if cfg != nil && cfg.GoogleOAuth != nil {
		g := cfg.GoogleOAuth
		s.clientID = g.ClientID
		s.clientSecret = g.ClientSecret
		s.redirectURI = g.RedirectURI
		if g.Scopes != "" {
			s.scopes = g.Scopes
		}
		if g.AuthURL != "" {
			s.authURL = g.AuthURL
		}
		if g.TokenURL != "" {
			s.tokenURL = g.TokenURL
		}
		if g.UserInfoURL != "" {
			s.userInfoURL = g.UserInfoURL
		}
		if g.Timeout > 0 {
			timeout = g.Timeout
		}
	}

	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	s.client = client

	return s
}

// GetProvider returns the OAuth provider type
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// BuildAuthorizationURL constructs the Google consent URL. The result only
// depends on configuration.
func (s *OAuthService) BuildAuthorizationURL() string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("access_type", "offline")

	return s.authURL + "?" + params.Encode()
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int    `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, _, err := s.do(req)
	if err != nil {
		return "", err
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", domainerrors.ErrInvalidProviderResponse.WithDetails("token response is not valid JSON")
	}

	// Google reports a rejected code in the body, usually with a 400 status.
	if tokenResp.Error != "" {
		return "", domainerrors.NewOAuthExchangeError(tokenResp.Error, tokenResp.ErrorDescription)
	}
	if tokenResp.AccessToken == "" {
		return "", domainerrors.ErrInvalidProviderResponse.WithDetails("token response has no access_token")
	}

	return tokenResp.AccessToken, nil
}

type userInfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GetUserInfo retrieves user information using an access token
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, domainerrors.ErrInvalidProviderResponse.WithDetails(
			"user info request failed with status " + http.StatusText(status))
	}

	var googleUser userInfoResponse
	if err := json.Unmarshal(body, &googleUser); err != nil {
		return nil, domainerrors.ErrInvalidProviderResponse.WithDetails("user info response is not valid JSON")
	}
	if googleUser.Email == "" {
		return nil, domainerrors.ErrProviderEmailMissing
	}

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
	}, nil
}

// do sends req and returns the response body. Transport failures become
// ErrNetwork; the body is always closed.
func (s *OAuthService) do(req *http.Request) ([]byte, int, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(domainerrors.ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(domainerrors.ErrNetwork, err.Error())
	}

	return body, resp.StatusCode, nil
}

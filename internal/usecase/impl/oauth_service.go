package impl

import (
	"context"
	"log/slog"
	"net/url"

	"wardrobe/config"
	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/infra/metrics"
	"wardrobe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// oauthService implements the OAuthUsecase interface on top of one provider client.
type oauthService struct {
	provider     service.OAuthService
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	frontendURL  *url.URL
	logger       *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Provider     service.OAuthService
	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
// It fails when the frontend redirect target is not an absolute URL.
func NewOAuthService(params OAuthServiceParams) (usecase.OAuthUsecase, error) {
	raw := ""
	if params.Config != nil && params.Config.Frontend != nil {
		raw = params.Config.Frontend.URL
	}

	frontendURL, err := url.Parse(raw)
	if err != nil || frontendURL.Scheme == "" || frontendURL.Host == "" {
		return nil, errors.Errorf("frontend.url must be an absolute URL, got %q", raw)
	}

	return &oauthService{
		provider:     params.Provider,
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		frontendURL:  frontendURL,
		logger:       params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginURL returns the provider consent URL.
func (srv *oauthService) LoginURL() string {
	return srv.provider.BuildAuthorizationURL()
}

// HandleCallback walks the whole chain for one callback: exchange the code,
// fetch the identity, resolve the account, issue a token and build the
// redirect. Nothing is retried.
func (srv *oauthService) HandleCallback(ctx context.Context, code string) (string, error) {
	redirectURL, err := srv.handleCallback(ctx, code)
	metrics.OAuthCallbacks.WithLabelValues(srv.provider.GetProvider().String(), callbackOutcome(err)).Inc()

	return redirectURL, err
}

func (srv *oauthService) handleCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("authorization code is required")
	}

	providerToken, err := srv.provider.ExchangeCodeForToken(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return "", err
	}

	user, err := srv.provider.GetUserInfo(ctx, providerToken)
	if err != nil {
		srv.log(ctx).Warn("OAuth user info request failed", slog.Any("error", err))

		return "", err
	}

	account, err := srv.resolveAccount(ctx, user)
	if err != nil {
		return "", err
	}
	if !account.IsActive {
		return "", domainerrors.ErrAuthentication
	}

	token, err := srv.tokenService.Issue(account.Email, srv.tokenService.LoginTTL())
	if err != nil {
		return "", errors.Wrap(err, "failed to issue access token")
	}

	return srv.redirectWithToken(token), nil
}

// resolveAccount finds the account for the provider identity, creating a
// federated one on first sight. When two callbacks race on the same new
// email, the unique index rejects the second insert and the loser re-reads
// the winner's row from the primary.
func (srv *oauthService) resolveAccount(ctx context.Context, user *service.OAuthUser) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	account = entity.NewFederatedAccount(user.Email, user.Name, srv.provider.GetProvider())
	err = srv.accountRepo.Create(ctx, account)
	if err == nil {
		srv.log(ctx).Info("Federated account created",
			slog.String("accountID", account.ID.String()),
			slog.String("provider", account.Provider.String()),
		)

		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountConflict) {
		return nil, errors.Wrap(err, "failed to create federated account")
	}

	existing, err := srv.accountRepo.FindByEmailPrimary(ctx, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account after create conflict")
	}
	srv.log(ctx).Debug("Federated account created concurrently, using existing row")

	return existing, nil
}

// redirectWithToken appends token to the frontend URL, keeping any query it already has.
func (srv *oauthService) redirectWithToken(token string) string {
	target := *srv.frontendURL
	query := target.Query()
	query.Set("token", token)
	target.RawQuery = query.Encode()

	return target.String()
}

func callbackOutcome(err error) string {
	var exchangeErr *domainerrors.OAuthExchangeError

	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &exchangeErr):
		return metrics.OutcomeExchangeError
	case errors.Is(err, domainerrors.ErrNetwork):
		return metrics.OutcomeNetworkError
	case errors.Is(err, domainerrors.ErrInvalidProviderResponse):
		return metrics.OutcomeInvalidIdentity
	case errors.Is(err, domainerrors.ErrValidationFailed), errors.Is(err, domainerrors.ErrAuthentication):
		return metrics.OutcomeFailure
	default:
		return metrics.OutcomeInternalError
	}
}

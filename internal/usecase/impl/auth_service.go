// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

// dummyPasswordHash is compared against when no usable hash exists, so an
// unknown email costs the same bcrypt work as a wrong password.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local email/password account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at most %d bytes", service.MaxPasswordBytes))
	}

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		metrics.Registrations.WithLabelValues(metrics.OutcomeDuplicate).Inc()

		return nil, domainerrors.ErrDuplicateAccount
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := entity.NewLocalAccount(input.Email, hash, input.FullName)
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// Another registration for the same email committed first.
		if errors.Is(err, repository.ErrAccountConflict) {
			metrics.Registrations.WithLabelValues(metrics.OutcomeDuplicate).Inc()

			return nil, domainerrors.ErrDuplicateAccount
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	metrics.Registrations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))

	return account, nil
}

// Login verifies a password and issues a login-lifetime bearer token. Every
// rejection is the same ErrAuthentication so callers cannot tell which
// emails exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrAuthentication
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account")
	}

	hash := dummyPasswordHash
	if account != nil && account.HasLocalPassword() {
		hash = account.PasswordHash
	}
	matched := srv.hasher.Check(ctx, input.Password, hash)

	if account == nil || !account.HasLocalPassword() || !account.IsActive || !matched {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeFailure).Inc()

		return nil, domainerrors.ErrAuthentication
	}

	token, err := srv.tokenService.Issue(account.Email, srv.tokenService.LoginTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()

	return &usecase.TokenOutput{AccessToken: token, TokenType: usecase.TokenTypeBearer}, nil
}

// CurrentAccount validates token and resolves its subject.
func (srv *authService) CurrentAccount(ctx context.Context, token string) (*entity.Account, error) {
	subject, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByEmail(ctx, subject)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token subject")
	}
	if !account.IsActive {
		return nil, domainerrors.ErrInvalidToken
	}

	return account, nil
}

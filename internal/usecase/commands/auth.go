package commands

import (
	"context"
	"log/slog"

	"staybooking/internal/domain/user"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/clock"
	"staybooking/internal/pkg/errs"
	"staybooking/internal/pkg/jwt"
	"staybooking/internal/pkg/password"
	"staybooking/internal/usecase/queries"
	"staybooking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type RegisterParams struct {
	Email    string
	Password string
	Role     string
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (uuid.UUID, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	pool       *pgxpool.Pool
	clock      clock.Clock
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	pool *pgxpool.Pool,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
		pool:       pool,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (uuid.UUID, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	rawPassword, err := user.NewPassword(params.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	role, err := user.NewRole(params.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	// Nobody self-registers as admin.
	if role == user.RoleAdmin {
		return uuid.Nil, errs.Mark(errs.New("role not allowed"), ErrDomainValidation)
	}

	hash, err := password.HashPassword(rawPassword.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, role)

	return shared.WithDefaultRetry(ctx, a.pool, func(tx db.DBTX) (uuid.UUID, error) {
		if createErr := a.userRepo.Create(ctx, tx, entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return uuid.Nil, ErrEmailTaken
			}
			return uuid.Nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return entity.ID(), nil
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	view, err := a.validateUser(ctx, email, rawPassword)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}

	_, err = shared.RunInTx(ctx, a.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, a.userRepo.UpdateLastLogin(ctx, tx, view.ID, a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; the timestamp is best effort.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, rawPassword string) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

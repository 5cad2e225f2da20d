package service

import (
	"context"
	"time"

	"catalog-be/internal/apperror"
	"catalog-be/internal/dto"
	"catalog-be/internal/entity"
	"catalog-be/internal/mapper"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/repository/contract"
	"catalog-be/internal/repository/specification"
	"catalog-be/internal/repository/unitofwork"
	"catalog-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   contract.SessionRepository
	issuer     *security.TokenIssuer
	refreshTTL time.Duration
	mapper     *mapper.UserMapper
	publisher  events.Publisher
	observer   *Observer
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessions contract.SessionRepository,
	issuer *security.TokenIssuer,
	refreshTTL time.Duration,
	userMapper *mapper.UserMapper,
	publisher events.Publisher,
	obs *Observer,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		issuer:     issuer,
		refreshTTL: refreshTTL,
		mapper:     userMapper,
		publisher:  publisher,
		observer:   obs,
	}
}

var errBadCredentials = &apperror.AuthenticationError{Reason: "invalid username or password"}

// Register creates an enabled account holding only ROLE_USER.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if req == nil {
		return nil, errMissingBody
	}
	return observe(ctx, s.observer, OpAuthRegister, map[string]interface{}{"username": req.Username}, func() (*dto.UserDTO, error) {
		if err := req.Validate(); err != nil {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return nil, storeErr("begin transaction", err)
		}
		defer uow.Rollback()

		repo := uow.UserRepository()
		taken, err := repo.Count(ctx, specification.ByUsername{Username: req.Username})
		if err != nil {
			return nil, storeErr("count users by username", err)
		}
		if taken > 0 {
			return nil, apperror.NewValidationError("username", "is already taken")
		}
		taken, err = repo.Count(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, storeErr("count users by email", err)
		}
		if taken > 0 {
			return nil, apperror.NewValidationError("email", "is already registered")
		}

		user := &entity.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Roles:        []entity.Role{entity.RoleUser},
			Enabled:      true,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, storeErr("create user", err)
		}
		if err := uow.Commit(); err != nil {
			return nil, storeErr("commit user", err)
		}

		publishAfterCommit(ctx, s.publisher, s.observer.logger, s.observer.module,
			events.NewEvent(events.UserRegistered, map[string]interface{}{"id": *user.Id, "username": user.Username}))
		return s.mapper.ToDestObject(user)
	})
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil {
		return nil, errMissingBody
	}
	return observe(ctx, s.observer, OpAuthLogin, map[string]interface{}{"username": req.Username}, func() (*dto.LoginResponse, error) {
		if err := req.Validate(); err != nil {
			return nil, err
		}

		user, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
		if err != nil {
			return nil, storeErr("find user by username", err)
		}
		if user == nil {
			return nil, errBadCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return nil, errBadCredentials
		}
		if !user.CanAuthenticate() {
			return nil, &apperror.AuthenticationError{Reason: "account is disabled, locked or expired"}
		}

		res, err := s.issue(ctx, user)
		if err != nil {
			return nil, err
		}
		publishAfterCommit(ctx, s.publisher, s.observer.logger, s.observer.module,
			events.NewEvent(events.UserLoggedIn, map[string]interface{}{"id": *user.Id, "username": user.Username}))
		return res, nil
	})
}

// Refresh rotates the refresh token: the presented one is consumed and a new
// pair is issued from the current account state.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	return observe(ctx, s.observer, OpAuthRefresh, nil, func() (*dto.LoginResponse, error) {
		if refreshToken == "" {
			return nil, apperror.NewValidationError("refresh_token", "is required")
		}

		session, err := s.sessions.Take(ctx, refreshToken)
		if err != nil {
			return nil, storeErr("take session", err)
		}
		if session == nil {
			return nil, &apperror.AuthenticationError{Reason: "unknown or expired refresh token"}
		}

		id := session.UserId
		user, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByID{ID: &id})
		if err != nil {
			return nil, storeErr("find user by id", err)
		}
		if user == nil || !user.CanAuthenticate() {
			return nil, &apperror.AuthenticationError{Reason: "account is no longer usable"}
		}
		return s.issue(ctx, user)
	})
}

// Logout forgets the refresh token. Unknown tokens are ignored.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	_, err := observe(ctx, s.observer, OpAuthLogout, nil, func() (struct{}, error) {
		if refreshToken == "" {
			return struct{}{}, nil
		}
		return struct{}{}, storeErr("delete session", s.sessions.Delete(ctx, refreshToken))
	})
	return err
}

func (s *authService) issue(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	principal := &security.Principal{UserId: *user.Id, Username: user.Username, Roles: user.Roles}
	accessToken, _, err := s.issuer.Issue(principal)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Token:     uuid.NewString(),
		UserId:    principal.UserId,
		Username:  principal.Username,
		Roles:     principal.Roles,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.sessions.Save(ctx, session, s.refreshTTL); err != nil {
		return nil, storeErr("save session", err)
	}

	userDTO, err := s.mapper.ToDestObject(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: session.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.issuer.TTL().Seconds()),
		User:         userDTO,
	}, nil
}

var errMissingBody = apperror.NewValidationError("body", "is required")

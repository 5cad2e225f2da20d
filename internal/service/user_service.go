package service

import (
	"context"

	"catalog-be/internal/apperror"
	"catalog-be/internal/dto"
	"catalog-be/internal/mapper"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/repository/specification"
	"catalog-be/internal/repository/unitofwork"
	"catalog-be/pkg/events"
)

type IUserService interface {
	Me(ctx context.Context) (*dto.UserDTO, error)
	FindByUsername(ctx context.Context, username string) (*dto.UserDTO, error)
	FindAll(ctx context.Context, enabledOnly bool) ([]*dto.UserDTO, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.UserMapper
	publisher  events.Publisher
	observer   *Observer
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	userMapper *mapper.UserMapper,
	publisher events.Publisher,
	obs *Observer,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		mapper:     userMapper,
		publisher:  publisher,
		observer:   obs,
	}
}

func (s *userService) Me(ctx context.Context) (*dto.UserDTO, error) {
	return observe(ctx, s.observer, OpUserMe, nil, func() (*dto.UserDTO, error) {
		principal := security.PrincipalFromContext(ctx)
		if principal == nil {
			return nil, &apperror.AuthenticationError{Reason: "anonymous caller"}
		}
		id := principal.UserId
		return s.findOne(ctx, id, specification.ByID{ID: &id})
	})
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*dto.UserDTO, error) {
	return observe(ctx, s.observer, OpUserFindByUsername, map[string]interface{}{"username": username}, func() (*dto.UserDTO, error) {
		if username == "" {
			return nil, apperror.NewNotFoundError("user", username)
		}
		return s.findOne(ctx, username, specification.ByUsername{Username: username})
	})
}

func (s *userService) findOne(ctx context.Context, key any, specs ...specification.Specification) (*dto.UserDTO, error) {
	user, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, storeErr("find user", err)
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("user", key)
	}
	return s.mapper.ToDestObject(user)
}

// FindAll lists user accounts. With enabledOnly set, disabled accounts are
// left out.
func (s *userService) FindAll(ctx context.Context, enabledOnly bool) ([]*dto.UserDTO, error) {
	return observe(ctx, s.observer, OpUserFindAll, map[string]interface{}{"enabled_only": enabledOnly}, func() ([]*dto.UserDTO, error) {
		var specs []specification.Specification
		if enabledOnly {
			specs = append(specs, specification.EnabledUsers{})
		}
		users, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, storeErr("find all users", err)
		}
		return s.mapper.ToDestObjectList(users)
	})
}

// Delete removes a user account. Unknown ids are a no-op.
func (s *userService) Delete(ctx context.Context, id int64) error {
	_, err := observe(ctx, s.observer, OpUserDelete, map[string]interface{}{"id": id}, func() (struct{}, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return struct{}{}, storeErr("begin transaction", err)
		}
		defer uow.Rollback()

		repo := uow.UserRepository()
		existing, err := repo.FindOne(ctx, specification.ByID{ID: &id})
		if err != nil {
			return struct{}{}, storeErr("find user by id", err)
		}
		if existing == nil {
			return struct{}{}, nil
		}
		if err := repo.Delete(ctx, id); err != nil {
			return struct{}{}, storeErr("delete user", err)
		}
		if err := uow.Commit(); err != nil {
			return struct{}{}, storeErr("commit user delete", err)
		}

		publishAfterCommit(ctx, s.publisher, s.observer.logger, s.observer.module,
			events.NewEvent(events.UserDeleted, map[string]interface{}{"id": id, "username": existing.Username}))
		return struct{}{}, nil
	})
	return err
}

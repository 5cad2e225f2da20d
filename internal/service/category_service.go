package service

import (
	"context"

	"catalog-be/internal/apperror"
	"catalog-be/internal/dto"
	"catalog-be/internal/entity"
	"catalog-be/internal/mapper"
	"catalog-be/internal/repository/specification"
	"catalog-be/internal/repository/unitofwork"
	"catalog-be/pkg/events"
)

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CategoryDTO) (*dto.CategoryDTO, error)
	Update(ctx context.Context, id int64, req *dto.CategoryDTO) (*dto.CategoryDTO, error)
	FindById(ctx context.Context, id int64) (*dto.CategoryDTO, error)
	FindByName(ctx context.Context, name string) (*dto.CategoryDTO, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*dto.CategoryDTO, error)
	FindWithProductsByName(ctx context.Context, name string) (*dto.CategoryDTO, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAllByEnabled(ctx context.Context, enabled bool, page, size int) (*dto.PageResponse[*dto.CategoryDTO], error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.CategoryMapper
	publisher  events.Publisher
	observer   *Observer
}

func NewCategoryService(
	uowFactory unitofwork.RepositoryFactory,
	categoryMapper *mapper.CategoryMapper,
	publisher events.Publisher,
	obs *Observer,
) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
		mapper:     categoryMapper,
		publisher:  publisher,
		observer:   obs,
	}
}

// Create stores a new category together with the products it carries. Each
// nested product gets its total price derived like a standalone product.
func (s *categoryService) Create(ctx context.Context, req *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	return observe(ctx, s.observer, OpCategoryCreate, map[string]interface{}{"name": categoryName(req)}, func() (*dto.CategoryDTO, error) {
		category, err := s.toEntity(req)
		if err != nil {
			return nil, err
		}
		category.Id = nil
		for _, p := range category.Products {
			p.Id = nil
			p.Version = 0
			p.Price = TotalPrice(p.Quantity, p.UnitPrice)
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return nil, storeErr("begin transaction", err)
		}
		defer uow.Rollback()

		if err := uow.CategoryRepository().Create(ctx, category); err != nil {
			return nil, storeErr("create category", err)
		}
		if err := uow.Commit(); err != nil {
			return nil, storeErr("commit category", err)
		}

		s.published(ctx, events.CategorySaved, category)
		return s.mapper.ToDestObject(category)
	})
}

// Update replaces the scalar fields of an existing category. Products are
// left untouched.
func (s *categoryService) Update(ctx context.Context, id int64, req *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	return observe(ctx, s.observer, OpCategoryUpdate, map[string]interface{}{"id": id}, func() (*dto.CategoryDTO, error) {
		category, err := s.toEntity(req)
		if err != nil {
			return nil, err
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return nil, storeErr("begin transaction", err)
		}
		defer uow.Rollback()

		repo := uow.CategoryRepository()
		current, err := repo.FindOne(ctx, specification.ByID{ID: &id}, specification.WithProducts{})
		if err != nil {
			return nil, storeErr("find category by id", err)
		}
		if current == nil {
			return nil, apperror.NewNotFoundError("category", id)
		}

		current.Name = category.Name
		current.Description = category.Description
		current.Enabled = category.Enabled
		current.Type = category.Type
		if err := repo.Update(ctx, current); err != nil {
			return nil, storeErr("update category", err)
		}
		if err := uow.Commit(); err != nil {
			return nil, storeErr("commit category", err)
		}

		s.published(ctx, events.CategorySaved, current)
		return s.mapper.ToDestObject(current)
	})
}

func (s *categoryService) toEntity(req *dto.CategoryDTO) (*entity.Category, error) {
	if req == nil {
		return nil, apperror.NewValidationError("body", "is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mapper.ToSourceObject(req)
}

func (s *categoryService) FindById(ctx context.Context, id int64) (*dto.CategoryDTO, error) {
	return observe(ctx, s.observer, OpCategoryFindById, map[string]interface{}{"id": id}, func() (*dto.CategoryDTO, error) {
		return s.findOne(ctx, id, specification.ByID{ID: &id})
	})
}

func (s *categoryService) FindByName(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	return observe(ctx, s.observer, OpCategoryFindByName, map[string]interface{}{"name": name}, func() (*dto.CategoryDTO, error) {
		if name == "" {
			return nil, apperror.NewNotFoundError("category", name)
		}
		return s.findOne(ctx, name, specification.ByName{Name: name})
	})
}

func (s *categoryService) FindByNameIgnoreCase(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	return observe(ctx, s.observer, OpCategoryFindIgnoring, map[string]interface{}{"name": name}, func() (*dto.CategoryDTO, error) {
		if name == "" {
			return nil, apperror.NewNotFoundError("category", name)
		}
		return s.findOne(ctx, name, specification.ByNameIgnoreCase{Name: name})
	})
}

func (s *categoryService) FindWithProductsByName(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	return observe(ctx, s.observer, OpCategoryWithProducts, map[string]interface{}{"name": name}, func() (*dto.CategoryDTO, error) {
		if name == "" {
			return nil, apperror.NewNotFoundError("category", name)
		}
		return s.findOne(ctx, name, specification.ByName{Name: name}, specification.WithProducts{})
	})
}

func (s *categoryService) findOne(ctx context.Context, key any, specs ...specification.Specification) (*dto.CategoryDTO, error) {
	category, err := s.uowFactory.NewUnitOfWork(ctx).CategoryRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, storeErr("find category", err)
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("category", key)
	}
	return s.mapper.ToDestObject(category)
}

func (s *categoryService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return observe(ctx, s.observer, OpCategoryExists, map[string]interface{}{"name": name}, func() (bool, error) {
		if name == "" {
			return false, nil
		}
		n, err := s.uowFactory.NewUnitOfWork(ctx).CategoryRepository().Count(ctx, specification.ByName{Name: name})
		if err != nil {
			return false, storeErr("count categories by name", err)
		}
		return n > 0, nil
	})
}

func (s *categoryService) FindAllByEnabled(ctx context.Context, enabled bool, page, size int) (*dto.PageResponse[*dto.CategoryDTO], error) {
	details := map[string]interface{}{"enabled": enabled, "page": page, "size": size}
	return observe(ctx, s.observer, OpCategoryFindAll, details, func() (*dto.PageResponse[*dto.CategoryDTO], error) {
		repo := s.uowFactory.NewUnitOfWork(ctx).CategoryRepository()
		pageReq := specification.PageRequest(page, size)
		filter := specification.ByEnabled{Enabled: enabled}

		total, err := repo.Count(ctx, filter)
		if err != nil {
			return nil, storeErr("count categories", err)
		}
		categories, err := repo.FindAll(ctx, filter, pageReq)
		if err != nil {
			return nil, storeErr("find categories by enabled", err)
		}

		result := &entity.Page[entity.Category]{
			Content:   categories,
			PageIndex: pageReq.Offset / pageReq.Limit,
			PageSize:  pageReq.Limit,
			Total:     total,
		}
		return toPageResponse(result, s.mapper.ToCategoryDtos)
	})
}

// Delete removes the category if it exists; its products are kept and
// detached. Deleting an unknown id is a no-op.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	_, err := observe(ctx, s.observer, OpCategoryDelete, map[string]interface{}{"id": id}, func() (struct{}, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return struct{}{}, storeErr("begin transaction", err)
		}
		defer uow.Rollback()

		repo := uow.CategoryRepository()
		existing, err := repo.FindOne(ctx, specification.ByID{ID: &id})
		if err != nil {
			return struct{}{}, storeErr("find category by id", err)
		}
		if existing == nil {
			return struct{}{}, nil
		}
		if err := repo.Delete(ctx, id); err != nil {
			return struct{}{}, storeErr("delete category", err)
		}
		if err := uow.Commit(); err != nil {
			return struct{}{}, storeErr("commit category delete", err)
		}

		s.published(ctx, events.CategoryDeleted, existing)
		return struct{}{}, nil
	})
	return err
}

func (s *categoryService) published(ctx context.Context, eventType string, c *entity.Category) {
	publishAfterCommit(ctx, s.publisher, s.observer.logger, s.observer.module, events.NewEvent(eventType, map[string]interface{}{
		"id":   *c.Id,
		"name": c.Name,
		"type": c.Type.String(),
	}))
}

func categoryName(req *dto.CategoryDTO) string {
	if req == nil {
		return ""
	}
	return req.Name
}

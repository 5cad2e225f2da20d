package service

import (
	"context"

	"catalog-be/internal/apperror"
	"catalog-be/internal/dto"
	"catalog-be/internal/entity"
	"catalog-be/internal/mapper"
	"catalog-be/internal/pkg/serverutils"
	"catalog-be/internal/repository/specification"
	"catalog-be/internal/repository/unitofwork"
	"catalog-be/pkg/events"
)

type IProductService interface {
	CreateOrUpdateProduct(ctx context.Context, req *dto.ProductDTO) (*dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id int64, req *dto.ProductDTO) (*dto.ProductDTO, error)
	FindById(ctx context.Context, id int64) (*dto.ProductDTO, error)
	FindByName(ctx context.Context, name string) (*dto.ProductDTO, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*dto.ProductDTO, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]*dto.ProductDTO, error)
	FindAllByActive(ctx context.Context, active bool, page, size int) (*dto.PageResponse[*dto.ProductDTO], error)
	FilterByName(ctx context.Context, query string) ([]*dto.ProductDTO, error)
	FindAllByCategory(ctx context.Context, categoryId int64) ([]*dto.ProductDTO, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.ProductMapper
	publisher  events.Publisher
	observer   *Observer
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	productMapper *mapper.ProductMapper,
	publisher events.Publisher,
	obs *Observer,
) IProductService {
	return &productService{
		uowFactory: uowFactory,
		mapper:     productMapper,
		publisher:  publisher,
		observer:   obs,
	}
}

// CreateOrUpdateProduct derives the total price and persists the product in
// one transaction. A product with an id is an update guarded by the stored
// version.
func (s *productService) CreateOrUpdateProduct(ctx context.Context, req *dto.ProductDTO) (*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductSave, map[string]interface{}{"name": nameOf(req)}, func() (*dto.ProductDTO, error) {
		return s.save(ctx, req)
	})
}

// UpdateProduct checks the id exists, then stores req under that id.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req *dto.ProductDTO) (*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductUpdate, map[string]interface{}{"id": id}, func() (*dto.ProductDTO, error) {
		if req == nil {
			return nil, apperror.NewValidationError("body", "is required")
		}
		existing, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().FindOne(ctx, specification.ByID{ID: &id})
		if err != nil {
			return nil, storeErr("find product by id", err)
		}
		if existing == nil {
			return nil, apperror.NewNotFoundError("product", id)
		}

		withId := *req
		withId.Id = &id
		return s.save(ctx, &withId)
	})
}

func (s *productService) save(ctx context.Context, req *dto.ProductDTO) (*dto.ProductDTO, error) {
	if req == nil {
		return nil, apperror.NewValidationError("body", "is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.mapper.ToSourceObject(req)
	if err != nil {
		return nil, err
	}
	product.Price = TotalPrice(product.Quantity, product.UnitPrice)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, storeErr("begin transaction", err)
	}
	defer uow.Rollback()

	repo := uow.ProductRepository()
	if product.Id == nil {
		if err := repo.Create(ctx, product); err != nil {
			return nil, storeErr("create product", err)
		}
	} else {
		current, err := repo.FindOne(ctx, specification.ByID{ID: product.Id})
		if err != nil {
			return nil, storeErr("find product by id", err)
		}
		if current == nil {
			return nil, apperror.NewNotFoundError("product", *product.Id)
		}
		product.Version = current.Version
		product.CreatedAt = current.CreatedAt
		if err := repo.Update(ctx, product); err != nil {
			return nil, storeErr("update product", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, storeErr("commit product", err)
	}

	publishAfterCommit(ctx, s.publisher, s.observer.logger, s.observer.module, events.NewEvent(events.ProductSaved, map[string]interface{}{
		"id":    *product.Id,
		"name":  product.Name,
		"price": product.Price.String(),
	}))

	return s.mapper.ToDestObject(product)
}

func (s *productService) FindById(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductFindById, map[string]interface{}{"id": id}, func() (*dto.ProductDTO, error) {
		return s.findOne(ctx, id, specification.ByID{ID: &id})
	})
}

func (s *productService) FindByName(ctx context.Context, name string) (*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductFindByName, map[string]interface{}{"name": name}, func() (*dto.ProductDTO, error) {
		if name == "" {
			return nil, apperror.NewNotFoundError("product", name)
		}
		return s.findOne(ctx, name, specification.ByName{Name: name})
	})
}

func (s *productService) FindByNameIgnoreCase(ctx context.Context, name string) (*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductFindIgnoring, map[string]interface{}{"name": name}, func() (*dto.ProductDTO, error) {
		if name == "" {
			return nil, apperror.NewNotFoundError("product", name)
		}
		return s.findOne(ctx, name, specification.ByNameIgnoreCase{Name: name})
	})
}

func (s *productService) findOne(ctx context.Context, key any, specs ...specification.Specification) (*dto.ProductDTO, error) {
	product, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, storeErr("find product", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("product", key)
	}
	return s.mapper.ToDestObject(product)
}

func (s *productService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return observe(ctx, s.observer, OpProductExists, map[string]interface{}{"name": name}, func() (bool, error) {
		if name == "" {
			return false, nil
		}
		n, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().Count(ctx, specification.ByName{Name: name})
		if err != nil {
			return false, storeErr("count products by name", err)
		}
		return n > 0, nil
	})
}

func (s *productService) FindAll(ctx context.Context) ([]*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductFindAll, nil, func() ([]*dto.ProductDTO, error) {
		products, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().FindAll(ctx)
		if err != nil {
			return nil, storeErr("find all products", err)
		}
		return s.mapper.ToProductDtos(products)
	})
}

func (s *productService) FindAllByActive(ctx context.Context, active bool, page, size int) (*dto.PageResponse[*dto.ProductDTO], error) {
	details := map[string]interface{}{"active": active, "page": page, "size": size}
	return observe(ctx, s.observer, OpProductFindByActive, details, func() (*dto.PageResponse[*dto.ProductDTO], error) {
		repo := s.uowFactory.NewUnitOfWork(ctx).ProductRepository()
		pageReq := specification.PageRequest(page, size)
		filter := specification.ByActive{Active: active}

		total, err := repo.Count(ctx, filter)
		if err != nil {
			return nil, storeErr("count products", err)
		}
		products, err := repo.FindAll(ctx, filter, pageReq)
		if err != nil {
			return nil, storeErr("find products by active", err)
		}

		result := &entity.Page[entity.Product]{
			Content:   products,
			PageIndex: pageReq.Offset / pageReq.Limit,
			PageSize:  pageReq.Limit,
			Total:     total,
		}
		return toPageResponse(result, s.mapper.ToProductDtos)
	})
}

// FilterByName returns every product whose name contains query, ignoring
// case and accents. The match runs in process so accent folding is the same
// whatever the database collation.
func (s *productService) FilterByName(ctx context.Context, query string) ([]*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductFilter, map[string]interface{}{"query": query}, func() ([]*dto.ProductDTO, error) {
		products, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().FindAll(ctx)
		if err != nil {
			return nil, storeErr("find all products", err)
		}

		matched := make([]*entity.Product, 0, len(products))
		for _, p := range products {
			if serverutils.ContainsIgnoreCase(p.Name, query) {
				matched = append(matched, p)
			}
		}
		return s.mapper.ToProductDtos(serverutils.DistinctBy(matched, mapper.ProductKey))
	})
}

// FindAllByCategory lists the products attached to a category. An unknown
// category yields an empty list.
func (s *productService) FindAllByCategory(ctx context.Context, categoryId int64) ([]*dto.ProductDTO, error) {
	return observe(ctx, s.observer, OpProductByCategory, map[string]interface{}{"category_id": categoryId}, func() ([]*dto.ProductDTO, error) {
		products, err := s.uowFactory.NewUnitOfWork(ctx).ProductRepository().FindAll(ctx, specification.ByCategoryID{CategoryID: categoryId})
		if err != nil {
			return nil, storeErr("find products by category", err)
		}
		return s.mapper.ToProductDtos(products)
	})
}

// Delete removes the product if it exists. Deleting an unknown id is a no-op.
func (s *productService) Delete(ctx context.Context, id int64) error {
	_, err := observe(ctx, s.observer, OpProductDelete, map[string]interface{}{"id": id}, func() (struct{}, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return struct{}{}, storeErr("begin transaction", err)
		}
		defer uow.Rollback()

		repo := uow.ProductRepository()
		existing, err := repo.FindOne(ctx, specification.ByID{ID: &id})
		if err != nil {
			return struct{}{}, storeErr("find product by id", err)
		}
		if existing == nil {
			return struct{}{}, nil
		}
		if err := repo.Delete(ctx, id); err != nil {
			return struct{}{}, storeErr("delete product", err)
		}
		if err := uow.Commit(); err != nil {
			return struct{}{}, storeErr("commit product delete", err)
		}

		publishAfterCommit(ctx, s.publisher, s.observer.logger, s.observer.module,
			events.NewEvent(events.ProductDeleted, map[string]interface{}{"id": id, "name": existing.Name}))
		return struct{}{}, nil
	})
	return err
}

func nameOf(req *dto.ProductDTO) string {
	if req == nil {
		return ""
	}
	return req.Name
}

func toPageResponse[S any, D any](page *entity.Page[S], convert func([]*S) ([]*D, error)) (*dto.PageResponse[*D], error) {
	content, err := convert(page.Content)
	if err != nil {
		return nil, err
	}
	return &dto.PageResponse[*D]{
		Content:       content,
		Page:          page.PageIndex,
		Size:          page.PageSize,
		TotalElements: page.Total,
		TotalPages:    page.TotalPages(),
	}, nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

// CatalogService serves the product catalog and its admin CRUD surface.
type CatalogService struct {
	products *database.Collection[models.Product]
	logger   *zap.Logger
}

func NewCatalogService(products *database.Collection[models.Product], logger *zap.Logger) *CatalogService {
	return &CatalogService{products: products, logger: logger}
}

// List returns the catalog, optionally narrowed by a case-insensitive name
// search and a category filter.
func (s *CatalogService) List(ctx context.Context, query, category string) ([]models.Product, *apperrors.Error) {
	products, err := s.products.All(ctx)
	if err != nil {
		s.logger.Error("Failed to load products", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	if query == "" && category == "" {
		return products, nil
	}

	q := strings.ToLower(query)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// Get returns a single product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, *apperrors.Error) {
	product, err := s.products.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return product, nil
}

// Create adds a product with a generated id.
func (s *CatalogService) Create(ctx context.Context, product models.Product) (*models.Product, *apperrors.Error) {
	if aerr := validateProduct(product); aerr != nil {
		return nil, aerr
	}

	product.ID = uuid.NewString()
	if err := s.products.Put(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	s.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("name", product.Name))
	return &product, nil
}

// Update replaces the product with the given id.
func (s *CatalogService) Update(ctx context.Context, id string, product models.Product) (*models.Product, *apperrors.Error) {
	if aerr := validateProduct(product); aerr != nil {
		return nil, aerr
	}

	if _, err := s.products.Get(ctx, id); errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	product.ID = id
	if err := s.products.Put(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.String("product_id", id), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &product, nil
}

// Delete removes the product with the given id.
func (s *CatalogService) Delete(ctx context.Context, id string) *apperrors.Error {
	if _, err := s.products.Get(ctx, id); errors.Is(err, database.ErrNotFound) {
		return apperrors.ErrNotFound
	} else if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	s.logger.Info("Product deleted", zap.String("product_id", id))
	return nil
}

func validateProduct(p models.Product) *apperrors.Error {
	fields := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "This field is required"
	}
	if p.Price <= 0 {
		fields["price"] = "Price must be greater than zero"
	}
	if p.Stock < 0 {
		fields["stock"] = "Stock cannot be negative"
	}
	if p.DiscountPrice != nil {
		if *p.DiscountPrice <= 0 {
			fields["discount_price"] = "Discount price must be greater than zero"
		} else if *p.DiscountPrice > p.Price {
			fields["discount_price"] = "Discount price cannot exceed the regular price"
		}
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

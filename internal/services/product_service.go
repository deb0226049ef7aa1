package services

import (
	"errors"
	"fmt"

	"techmart/internal/models"
	"techmart/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagination bounds for catalog listings. The limit is clamped so a
// single request can never drag the whole catalog into memory.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ProductService handles catalog queries and admin product management.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// List runs a filtered, paginated catalog query. Page defaults to 1
// and limit to DefaultPageSize; a limit above MaxPageSize is clamped.
// Results are newest first and pages is ceil(total/limit).
func (s *ProductService) List(filter models.ProductFilter, page, limit int) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := (page - 1) * limit
	products, total, err := s.repo.List(filter, offset, limit)
	if err != nil {
		return nil, err
	}

	return &models.ProductPage{
		Products: products,
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

// Get retrieves a single product by ID.
func (s *ProductService) Get(id string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create adds a new product to the catalog. Stock defaults to zero,
// images to an empty list and specs stay null when absent.
func (s *ProductService) Create(req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       *req.Price,
		Images:      req.Images,
		Specs:       req.Specs,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update merges the provided fields into an existing product and
// refreshes its update timestamp. An unknown ID leaves nothing
// mutated.
func (s *ProductService) Update(id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Specs != nil {
		product.Specs = req.Specs
	}

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

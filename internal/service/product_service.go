package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService defines catalog operations
type ProductService interface {
	ListAvailable(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListAvailable(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products from repo: %w", err)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a product. Unit type defaults to kg and new products are available unless stated otherwise.
func (s *productService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	product := &model.Product{
		Name:         req.Name,
		UnitType:     req.UnitType,
		Availability: true,
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if product.UnitType == "" {
		product.UnitType = model.DefaultUnitType
	}
	if req.Availability != nil {
		product.Availability = *req.Availability
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}

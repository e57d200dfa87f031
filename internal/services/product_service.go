package services

import (
	"giftshop/internal/models"
	"giftshop/internal/repositories"
)

// ProductService handles business logic related to the gift catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new catalog entry. New products default to active
// so they show up in the storefront immediately.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.IsActive = true
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. Orders placed before the
// update keep their own item snapshots and are unaffected.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

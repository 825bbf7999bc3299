package mock

import (
	"context"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

var _ prodscrape.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of prodscrape.ProductService.
type ProductService struct {
	CreateProductsFn         func(ctx context.Context, products []*prodscrape.Product) error
	FindProductsFn           func(ctx context.Context, filter prodscrape.ProductFilter) ([]*prodscrape.Product, error)
	DeleteProductsBySourceFn func(ctx context.Context, sourceURL string) error
}

func (s *ProductService) CreateProducts(ctx context.Context, products []*prodscrape.Product) error {
	return s.CreateProductsFn(ctx, products)
}

func (s *ProductService) FindProducts(ctx context.Context, filter prodscrape.ProductFilter) ([]*prodscrape.Product, error) {
	return s.FindProductsFn(ctx, filter)
}

func (s *ProductService) DeleteProductsBySource(ctx context.Context, sourceURL string) error {
	return s.DeleteProductsBySourceFn(ctx, sourceURL)
}

var _ prodscrape.ProductWriter = (*ProductWriter)(nil)

// ProductWriter is a mock implementation of prodscrape.ProductWriter.
type ProductWriter struct {
	WriteProductsFn func(ctx context.Context, products []*prodscrape.Product) error
}

func (w *ProductWriter) WriteProducts(ctx context.Context, products []*prodscrape.Product) error {
	return w.WriteProductsFn(ctx, products)
}

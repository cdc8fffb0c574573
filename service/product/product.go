package product

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

type ProductService interface {
	List(ctx context.Context, page, limit int) (*model.Page[model.Product], error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, input *model.ProductInput) (*model.Product, error)
	Update(ctx context.Context, id int64, input *model.ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productServiceImpl struct {
	client *client.Client
}

func NewProductService(c *client.Client) ProductService {
	return &productServiceImpl{client: c}
}

func (s *productServiceImpl) List(ctx context.Context, page, limit int) (*model.Page[model.Product], error) {
	var res model.Page[model.Product]
	if err := s.client.Get(ctx, client.Paginated("/products", page, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id int64) (*model.Product, error) {
	var res model.Product
	if err := s.client.Get(ctx, fmt.Sprintf("/products/%d", id), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *productServiceImpl) Create(ctx context.Context, input *model.ProductInput) (*model.Product, error) {
	var res model.Product
	if err := s.client.Post(ctx, "/products", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id int64, input *model.ProductInput) (*model.Product, error) {
	var res model.Product
	if err := s.client.Put(ctx, fmt.Sprintf("/products/%d", id), input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/products/%d", id))
}

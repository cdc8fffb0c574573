package category

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

type CategoryService interface {
	List(ctx context.Context, page, limit int) (*model.Page[model.Category], error)
	// ListAll fetches the unpaginated "simple" list used to populate
	// reference dropdowns and name lookups.
	ListAll(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, input *model.CategoryInput) (*model.Category, error)
	Update(ctx context.Context, id int64, input *model.CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryServiceImpl struct {
	client *client.Client
}

func NewCategoryService(c *client.Client) CategoryService {
	return &categoryServiceImpl{client: c}
}

func (s *categoryServiceImpl) List(ctx context.Context, page, limit int) (*model.Page[model.Category], error) {
	var res model.Page[model.Category]
	if err := s.client.Get(ctx, client.Paginated("/categories", page, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *categoryServiceImpl) ListAll(ctx context.Context) ([]model.Category, error) {
	// The simple list still arrives wrapped in the data envelope.
	var res model.Page[model.Category]
	if err := s.client.Get(ctx, "/categories", &res); err != nil {
		return nil, err
	}
	return res.Items(), nil
}

func (s *categoryServiceImpl) Get(ctx context.Context, id int64) (*model.Category, error) {
	var res model.Category
	if err := s.client.Get(ctx, fmt.Sprintf("/categories/%d", id), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, input *model.CategoryInput) (*model.Category, error) {
	var res model.Category
	if err := s.client.Post(ctx, "/categories", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, id int64, input *model.CategoryInput) (*model.Category, error) {
	var res model.Category
	if err := s.client.Put(ctx, fmt.Sprintf("/categories/%d", id), input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}

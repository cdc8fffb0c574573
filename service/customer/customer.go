package customer

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

type CustomerService interface {
	List(ctx context.Context, page, limit int) (*model.Page[model.Customer], error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
}

type customerServiceImpl struct {
	client *client.Client
}

func NewCustomerService(c *client.Client) CustomerService {
	return &customerServiceImpl{client: c}
}

func (s *customerServiceImpl) List(ctx context.Context, page, limit int) (*model.Page[model.Customer], error) {
	var res model.Page[model.Customer]
	if err := s.client.Get(ctx, client.Paginated("/auth/users", page, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *customerServiceImpl) Get(ctx context.Context, id int64) (*model.Customer, error) {
	var res model.Customer
	if err := s.client.Get(ctx, fmt.Sprintf("/auth/users/%d", id), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

package servicearea

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

type ServiceAreaService interface {
	List(ctx context.Context) ([]model.ServiceArea, error)
	Create(ctx context.Context, input *model.ServiceAreaInput) (*model.ServiceArea, error)
	ByPincode(ctx context.Context, pincode string) (*model.ServiceArea, error)
	Delete(ctx context.Context, id int64) error
}

type serviceAreaServiceImpl struct {
	client *client.Client
}

func NewServiceAreaService(c *client.Client) ServiceAreaService {
	return &serviceAreaServiceImpl{client: c}
}

func (s *serviceAreaServiceImpl) List(ctx context.Context) ([]model.ServiceArea, error) {
	var res []model.ServiceArea
	if err := s.client.Get(ctx, "/service-area/", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *serviceAreaServiceImpl) Create(ctx context.Context, input *model.ServiceAreaInput) (*model.ServiceArea, error) {
	var res model.ServiceArea
	if err := s.client.Post(ctx, "/service-area/", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *serviceAreaServiceImpl) ByPincode(ctx context.Context, pincode string) (*model.ServiceArea, error) {
	var res model.ServiceArea
	path := "/service-area/by-pincode?pincode=" + url.QueryEscape(pincode)
	if err := s.client.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *serviceAreaServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/service-area/%d", id))
}

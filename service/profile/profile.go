package profile

import (
	"context"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

type ProfileService interface {
	Me(ctx context.Context) (*model.User, error)
	UpdateMe(ctx context.Context, input *model.UserInput) (*model.User, error)
}

type profileServiceImpl struct {
	client *client.Client
}

func NewProfileService(c *client.Client) ProfileService {
	return &profileServiceImpl{client: c}
}

func (s *profileServiceImpl) Me(ctx context.Context) (*model.User, error) {
	var res model.User
	if err := s.client.Get(ctx, "/auth/me", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *profileServiceImpl) UpdateMe(ctx context.Context, input *model.UserInput) (*model.User, error) {
	var res model.User
	if err := s.client.Put(ctx, "/auth/me", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

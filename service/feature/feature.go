package feature

import (
	"context"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

// FeatureService serves the flat reference lists; neither endpoint is
// paginated.
type FeatureService interface {
	Features(ctx context.Context) ([]model.Feature, error)
	Includes(ctx context.Context) ([]model.Include, error)
}

type featureServiceImpl struct {
	client *client.Client
}

func NewFeatureService(c *client.Client) FeatureService {
	return &featureServiceImpl{client: c}
}

func (s *featureServiceImpl) Features(ctx context.Context) ([]model.Feature, error) {
	var res []model.Feature
	if err := s.client.Get(ctx, "/features", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *featureServiceImpl) Includes(ctx context.Context) ([]model.Include, error) {
	var res []model.Include
	if err := s.client.Get(ctx, "/includes", &res); err != nil {
		return nil, err
	}
	return res, nil
}

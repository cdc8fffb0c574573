package analytics

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

// Filters narrows the analytics window. Zero values are omitted from the
// query entirely.
type Filters struct {
	Year      int
	Month     int
	StartDate string
	EndDate   string
}

func (f Filters) query() string {
	q := url.Values{}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if f.Month != 0 {
		q.Set("month", strconv.Itoa(f.Month))
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	return q.Encode()
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, filters Filters) (*model.Analytics, error)
}

type analyticsServiceImpl struct {
	client *client.Client
}

func NewAnalyticsService(c *client.Client) AnalyticsService {
	return &analyticsServiceImpl{client: c}
}

func (s *analyticsServiceImpl) Dashboard(ctx context.Context, filters Filters) (*model.Analytics, error) {
	path := "/auth/analytics"
	if q := filters.query(); q != "" {
		path += "?" + q
	}
	var res model.Analytics
	if err := s.client.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

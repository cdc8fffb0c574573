package booking

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/model"
)

type BookingService interface {
	List(ctx context.Context, page, limit int) (*model.Page[model.Booking], error)
	UpdateStatus(ctx context.Context, id int64, update *model.BookingStatusUpdate) (*model.Booking, error)
}

type bookingServiceImpl struct {
	client *client.Client
}

func NewBookingService(c *client.Client) BookingService {
	return &bookingServiceImpl{client: c}
}

func (s *bookingServiceImpl) List(ctx context.Context, page, limit int) (*model.Page[model.Booking], error) {
	var res model.Page[model.Booking]
	if err := s.client.Get(ctx, client.Paginated("/bookings", page, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *bookingServiceImpl) UpdateStatus(ctx context.Context, id int64, update *model.BookingStatusUpdate) (*model.Booking, error) {
	var res model.Booking
	if err := s.client.Patch(ctx, fmt.Sprintf("/bookings/%d/status", id), update, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

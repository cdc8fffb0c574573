package bookings

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/booking"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
)

// Form edits a booking's status and payment flag via the status endpoint.
type Form struct {
	bookings booking.BookingService
	notifier notify.Notifier

	id     int64
	Status model.BookingStatus
	IsPaid bool
}

func NewForm(bookings booking.BookingService, notifier notify.Notifier) *Form {
	return &Form{bookings: bookings, notifier: notifier}
}

func (f *Form) Seed(b model.Booking) {
	f.id = b.ID
	f.Status = b.Status
	f.IsPaid = b.IsPaid
}

func (f *Form) Submit(ctx context.Context) error {
	if f.id == 0 {
		return fmt.Errorf("%w: no booking selected", cerr.ErrValidation)
	}
	if !f.Status.Valid() {
		notify.Failure(f.notifier, "Error", "Please select a valid status")
		return fmt.Errorf("%w: unknown status %q", cerr.ErrValidation, f.Status)
	}
	_, err := f.bookings.UpdateStatus(ctx, f.id, &model.BookingStatusUpdate{
		Status: f.Status,
		IsPaid: f.IsPaid,
	})
	if err != nil {
		if !cerr.IsSessionExpired(err) {
			notify.Failure(f.notifier, "Error", "Failed to update booking.")
		}
		return err
	}
	notify.Success(f.notifier, "Success", "Booking updated successfully.")
	return nil
}

package serviceareas

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/servicearea"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	validatorx "github.com/cleanduds/admin-dashboard/utils/validator"
)

// Form is the add-service-area dialog: a six-digit pincode plus the list of
// areas it covers.
type Form struct {
	areas    servicearea.ServiceAreaService
	notifier notify.Notifier

	Draft model.ServiceAreaInput
}

func NewForm(areas servicearea.ServiceAreaService, notifier notify.Notifier) *Form {
	return &Form{areas: areas, notifier: notifier}
}

func (f *Form) Reset() {
	f.Draft = model.ServiceAreaInput{Areas: []string{}}
}

// AddArea appends a non-empty, trimmed area name.
func (f *Form) AddArea(area string) {
	area = strings.TrimSpace(area)
	if area == "" {
		return
	}
	f.Draft.Areas = append(f.Draft.Areas, area)
}

func (f *Form) Submit(ctx context.Context) error {
	f.Draft.Pincode = strings.TrimSpace(f.Draft.Pincode)
	if err := validatorx.ValidateStruct(&f.Draft); err != nil {
		notify.Failure(f.notifier, "Error", "Please enter a valid 6-digit pincode")
		return fmt.Errorf("%w: %v", cerr.ErrValidation, err)
	}
	if _, err := f.areas.Create(ctx, &f.Draft); err != nil {
		if !cerr.IsSessionExpired(err) {
			notify.Failure(f.notifier, "Error", "Failed to save service area")
		}
		return err
	}
	notify.Success(f.notifier, "Success", "Service area added successfully")
	return nil
}

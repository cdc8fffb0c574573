// Package serviceareas drives the delivery-location page: pincode list,
// add-with-areas dialog, by-pincode detail view and confirmed deletion.
package serviceareas

import (
	"context"
	"sync"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/servicearea"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
)

type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

type Controller struct {
	areas     servicearea.ServiceAreaService
	notifier  notify.Notifier
	confirmer Confirmer

	mu      sync.Mutex
	seq     uint64
	loading bool
	items   []model.ServiceArea
}

func NewController(areas servicearea.ServiceAreaService, notifier notify.Notifier, confirmer Confirmer) *Controller {
	return &Controller{areas: areas, notifier: notifier, confirmer: confirmer}
}

// Load fetches the full, unpaginated list of service areas.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	res, err := c.areas.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil
	}
	c.loading = false
	if err != nil {
		if cerr.IsSessionExpired(err) {
			return nil
		}
		c.items = []model.ServiceArea{}
		notify.Failure(c.notifier, "Error", "Failed to fetch service areas")
		return err
	}
	if res == nil {
		res = []model.ServiceArea{}
	}
	c.items = res
	return nil
}

// Delete confirms, deletes, and drops the row from local state; the list is
// not refetched.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	ok, err := c.confirmer.Confirm(ctx, "Are you sure you want to delete this service area?")
	if err != nil || !ok {
		return err
	}
	if err := c.areas.Delete(ctx, id); err != nil {
		if cerr.IsSessionExpired(err) {
			return nil
		}
		notify.Failure(c.notifier, "Error", "Failed to delete service area")
		return err
	}
	c.mu.Lock()
	kept := c.items[:0]
	for _, area := range c.items {
		if area.ID != id {
			kept = append(kept, area)
		}
	}
	c.items = kept
	c.mu.Unlock()
	notify.Success(c.notifier, "Success", "Service area deleted successfully")
	return nil
}

// Detail fetches the areas served for one pincode.
func (c *Controller) Detail(ctx context.Context, pincode string) (*model.ServiceArea, error) {
	area, err := c.areas.ByPincode(ctx, pincode)
	if err != nil {
		if cerr.IsSessionExpired(err) {
			return nil, err
		}
		notify.Failure(c.notifier, "Error", "Failed to fetch service area details")
		return nil, err
	}
	return area, nil
}

func (c *Controller) Items() []model.ServiceArea {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.ServiceArea{}, c.items...)
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

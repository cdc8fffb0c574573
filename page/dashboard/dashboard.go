// Package dashboard drives the analytics overview: a filter set and one
// aggregated payload per load.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/analytics"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
)

type Controller struct {
	analytics analytics.AnalyticsService
	notifier  notify.Notifier

	mu      sync.Mutex
	seq     uint64
	loading bool
	filters analytics.Filters
	data    *model.Analytics
}

func NewController(svc analytics.AnalyticsService, notifier notify.Notifier) *Controller {
	return &Controller{
		analytics: svc,
		notifier:  notifier,
		filters:   analytics.Filters{Year: time.Now().Year()},
	}
}

// SetFilters replaces the filter set; callers follow up with Load.
func (c *Controller) SetFilters(f analytics.Filters) {
	c.mu.Lock()
	c.filters = f
	c.mu.Unlock()
}

func (c *Controller) Filters() analytics.Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	filters := c.filters
	c.mu.Unlock()

	data, err := c.analytics.Dashboard(ctx, filters)

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
		c.data = nil
		notify.Failure(c.notifier, "Error", "Failed to load analytics")
		return err
	}
	c.data = data
	return nil
}

// Data returns the last loaded payload, nil before the first successful
// load.
func (c *Controller) Data() *model.Analytics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

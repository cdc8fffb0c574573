// Package bookings drives the bookings list page: paginated load, search by
// customer name or booking id, and the status/payment editor.
package bookings

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/booking"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
)

const defaultPageSize = 10

type Controller struct {
	bookings booking.BookingService
	notifier notify.Notifier
	pageSize int

	mu         sync.Mutex
	seq        uint64
	loading    bool
	items      []model.Booking
	page       int
	totalPages int
	search     string
}

func NewController(bookings booking.BookingService, notifier notify.Notifier) *Controller {
	return &Controller{
		bookings: bookings,
		notifier: notifier,
		pageSize: defaultPageSize,
		page:     1,
	}
}

func (c *Controller) Load(ctx context.Context, pageNum int) error {
	if pageNum < 1 {
		pageNum = 1
	}
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	res, err := c.bookings.List(ctx, pageNum, c.pageSize)

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
		c.items = []model.Booking{}
		c.totalPages = 0
		notify.Failure(c.notifier, "Error", "Failed to load bookings")
		return err
	}
	c.items = res.Items()
	c.totalPages = pageCount(res)
	c.page = pageNum
	return nil
}

// pageCount recomputes total pages from the envelope's total and limit,
// falling back to the envelope's own totalPages when limit is unusable.
func pageCount(res *model.Page[model.Booking]) int {
	if res.Limit <= 0 {
		return res.TotalPages
	}
	pages := int((res.Total + int64(res.Limit) - 1) / int64(res.Limit))
	return pages
}

func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()
}

// Visible filters the loaded page by customer name (case-insensitive) or
// booking id substring.
func (c *Controller) Visible() []model.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.search == "" {
		return append([]model.Booking{}, c.items...)
	}
	term := strings.ToLower(c.search)
	out := []model.Booking{}
	for _, b := range c.items {
		if strings.Contains(strings.ToLower(b.User.Name), term) ||
			strings.Contains(strconv.FormatInt(b.ID, 10), c.search) {
			out = append(out, b)
		}
	}
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

func (c *Controller) ShowPagination() bool {
	return c.TotalPages() > 1
}

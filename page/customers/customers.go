// Package customers drives the read-only customer directory and its detail
// modal.
package customers

import (
	"context"
	"strings"
	"sync"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/customer"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
)

const defaultPageSize = 10

type Controller struct {
	customers customer.CustomerService
	notifier  notify.Notifier
	pageSize  int

	mu         sync.Mutex
	seq        uint64
	loading    bool
	items      []model.Customer
	page       int
	totalPages int
	search     string
}

func NewController(customers customer.CustomerService, notifier notify.Notifier) *Controller {
	return &Controller{
		customers: customers,
		notifier:  notifier,
		pageSize:  defaultPageSize,
		page:      1,
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

	res, err := c.customers.List(ctx, pageNum, c.pageSize)

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
		c.items = []model.Customer{}
		c.totalPages = 0
		notify.Failure(c.notifier, "Error", "Failed to load customers")
		return err
	}
	c.items = res.Items()
	c.totalPages = res.TotalPages
	c.page = pageNum
	return nil
}

// Detail fetches the full customer record for the detail modal.
func (c *Controller) Detail(ctx context.Context, id int64) (*model.Customer, error) {
	full, err := c.customers.Get(ctx, id)
	if err != nil {
		if cerr.IsSessionExpired(err) {
			return nil, err
		}
		notify.Failure(c.notifier, "Error", "Failed to load customer details")
		return nil, err
	}
	return full, nil
}

func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()
}

func (c *Controller) Visible() []model.Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.search == "" {
		return append([]model.Customer{}, c.items...)
	}
	term := strings.ToLower(c.search)
	out := []model.Customer{}
	for _, cust := range c.items {
		if strings.Contains(strings.ToLower(cust.Name), term) ||
			strings.Contains(strings.ToLower(cust.Email), term) {
			out = append(out, cust)
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

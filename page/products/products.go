// Package products drives the product list page: load, client-side search,
// pagination, confirmed deletion, and the create/edit modal.
package products

import (
	"context"
	"strings"
	"sync"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/category"
	"github.com/cleanduds/admin-dashboard/service/product"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	"github.com/cleanduds/admin-dashboard/utils/logger"
	"go.uber.org/zap"
)

const defaultPageSize = 10

// Confirmer asks the user to approve a destructive action and reports the
// answer asynchronously.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

type Controller struct {
	products   product.ProductService
	categories category.CategoryService
	notifier   notify.Notifier
	confirmer  Confirmer
	pageSize   int

	mu         sync.Mutex
	seq        uint64
	loading    bool
	items      []model.Product
	refs       []model.Category
	page       int
	totalPages int
	search     string
}

func NewController(products product.ProductService, categories category.CategoryService, notifier notify.Notifier, confirmer Confirmer) *Controller {
	return &Controller{
		products:   products,
		categories: categories,
		notifier:   notifier,
		confirmer:  confirmer,
		pageSize:   defaultPageSize,
		page:       1,
	}
}

// Load fetches one page of products. A stale response (one overtaken by a
// newer Load) is discarded. On failure the list resets to empty and one
// toast is emitted; an expired session leaves state untouched.
func (c *Controller) Load(ctx context.Context, pageNum int) error {
	if pageNum < 1 {
		pageNum = 1
	}
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	res, err := c.products.List(ctx, pageNum, c.pageSize)

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
		c.items = []model.Product{}
		c.totalPages = 0
		notify.Failure(c.notifier, "Error", "Failed to load products")
		return err
	}
	c.items = res.Items()
	c.totalPages = res.TotalPages
	c.page = pageNum
	return nil
}

// LoadCategories refreshes the reference list behind CategoryName. Failure
// is logged, not surfaced: the page still renders with "Unknown" names.
func (c *Controller) LoadCategories(ctx context.Context) {
	refs, err := c.categories.ListAll(ctx)
	if err != nil {
		logger.Error("failed to load categories", zap.Error(err))
		return
	}
	c.mu.Lock()
	c.refs = refs
	c.mu.Unlock()
}

// Delete asks for confirmation, deletes, and reloads the current page. A
// declined confirmation issues no request.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	ok, err := c.confirmer.Confirm(ctx, "Are you sure you want to delete this product?")
	if err != nil || !ok {
		return err
	}
	if err := c.products.Delete(ctx, id); err != nil {
		if cerr.IsSessionExpired(err) {
			return nil
		}
		notify.Failure(c.notifier, "Error", "Failed to delete product")
		return err
	}
	notify.Success(c.notifier, "Success", "Product deleted successfully")
	return c.Load(ctx, c.Page())
}

// SetSearch narrows Visible to the already-loaded page; it never refetches.
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()
}

// Visible returns the loaded page filtered by the search term,
// case-insensitively over name and description.
func (c *Controller) Visible() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.search == "" {
		return append([]model.Product{}, c.items...)
	}
	term := strings.ToLower(c.search)
	out := []model.Product{}
	for _, p := range c.items {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryName resolves a category id against the loaded reference list.
func (c *Controller) CategoryName(id int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ref := range c.refs {
		if ref.ID == id {
			return ref.Name
		}
	}
	return "Unknown"
}

func (c *Controller) Categories() []model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Category{}, c.refs...)
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

// ShowPagination reports whether the pagination control is rendered.
func (c *Controller) ShowPagination() bool {
	return c.TotalPages() > 1
}

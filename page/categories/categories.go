// Package categories drives the category list page and its editor modal.
package categories

import (
	"context"
	"strings"
	"sync"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/category"
	"github.com/cleanduds/admin-dashboard/service/feature"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	"github.com/cleanduds/admin-dashboard/utils/logger"
	"go.uber.org/zap"
)

const defaultPageSize = 10

type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

type Controller struct {
	categories category.CategoryService
	features   feature.FeatureService
	notifier   notify.Notifier
	confirmer  Confirmer
	pageSize   int

	mu         sync.Mutex
	seq        uint64
	loading    bool
	items      []model.Category
	refs       []model.Feature
	page       int
	totalPages int
	search     string
}

func NewController(categories category.CategoryService, features feature.FeatureService, notifier notify.Notifier, confirmer Confirmer) *Controller {
	return &Controller{
		categories: categories,
		features:   features,
		notifier:   notifier,
		confirmer:  confirmer,
		pageSize:   defaultPageSize,
		page:       1,
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

	res, err := c.categories.List(ctx, pageNum, c.pageSize)

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
		c.items = []model.Category{}
		c.totalPages = 0
		notify.Failure(c.notifier, "Error", "Failed to load categories")
		return err
	}
	c.items = res.Items()
	c.totalPages = res.TotalPages
	c.page = pageNum
	return nil
}

// LoadFeatures refreshes the reference list shown in the editor's
// multi-select. Failure only logs; the modal renders without checkboxes.
func (c *Controller) LoadFeatures(ctx context.Context) {
	refs, err := c.features.Features(ctx)
	if err != nil {
		logger.Error("failed to load features", zap.Error(err))
		return
	}
	c.mu.Lock()
	c.refs = refs
	c.mu.Unlock()
}

func (c *Controller) Delete(ctx context.Context, id int64) error {
	ok, err := c.confirmer.Confirm(ctx, "Are you sure you want to delete this category?")
	if err != nil || !ok {
		return err
	}
	if err := c.categories.Delete(ctx, id); err != nil {
		if cerr.IsSessionExpired(err) {
			return nil
		}
		notify.Failure(c.notifier, "Error", "Failed to delete category")
		return err
	}
	notify.Success(c.notifier, "Success", "Category deleted successfully")
	return c.Load(ctx, c.Page())
}

func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()
}

func (c *Controller) Visible() []model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.search == "" {
		return append([]model.Category{}, c.items...)
	}
	term := strings.ToLower(c.search)
	out := []model.Category{}
	for _, cat := range c.items {
		if strings.Contains(strings.ToLower(cat.Name), term) ||
			strings.Contains(strings.ToLower(cat.Description), term) {
			out = append(out, cat)
		}
	}
	return out
}

func (c *Controller) Features() []model.Feature {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Feature{}, c.refs...)
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

package products

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/product"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	validatorx "github.com/cleanduds/admin-dashboard/utils/validator"
)

// Form holds the draft behind the product create/edit modal. The zero id
// means create; Submit issues exactly one request, or none when validation
// fails.
type Form struct {
	products product.ProductService
	notifier notify.Notifier

	id    int64
	Draft model.ProductInput
}

func NewForm(products product.ProductService, notifier notify.Notifier) *Form {
	return &Form{products: products, notifier: notifier}
}

// SeedEdit copies the editable fields of an existing product into the draft.
func (f *Form) SeedEdit(p model.Product) {
	f.id = p.ID
	f.Draft = model.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		PricePerKg:  p.PricePerKg,
		Savings:     p.Savings,
		Popular:     p.Popular,
		CategoryID:  p.CategoryID,
		FeatureIDs:  append([]int64{}, p.FeatureIDs...),
		IncludeIDs:  append([]int64{}, p.IncludeIDs...),
	}
}

// SeedCreate resets the draft to defaults, preselecting the first available
// category.
func (f *Form) SeedCreate(categories []model.Category) {
	f.id = 0
	f.Draft = model.ProductInput{
		FeatureIDs: []int64{},
		IncludeIDs: []int64{},
	}
	if len(categories) > 0 {
		f.Draft.CategoryID = categories[0].ID
	}
}

func (f *Form) Editing() bool {
	return f.id != 0
}

func (f *Form) ToggleFeature(id int64) {
	f.Draft.FeatureIDs = model.ToggleID(f.Draft.FeatureIDs, id)
}

func (f *Form) ToggleInclude(id int64) {
	f.Draft.IncludeIDs = model.ToggleID(f.Draft.IncludeIDs, id)
}

// Submit validates the draft, then creates or updates depending on how the
// form was seeded. The draft is left intact on failure so the user can
// retry.
func (f *Form) Submit(ctx context.Context) error {
	if err := validatorx.ValidateStruct(&f.Draft); err != nil {
		notify.Failure(f.notifier, "Error", "Please fill in all required fields")
		return fmt.Errorf("%w: %v", cerr.ErrValidation, err)
	}

	verb := "create"
	var err error
	if f.Editing() {
		verb = "update"
		_, err = f.products.Update(ctx, f.id, &f.Draft)
	} else {
		_, err = f.products.Create(ctx, &f.Draft)
	}
	if err != nil {
		if !cerr.IsSessionExpired(err) {
			notify.Failure(f.notifier, "Error", fmt.Sprintf("Failed to %s product", verb))
		}
		return err
	}
	notify.Success(f.notifier, "Success", fmt.Sprintf("Product %sd successfully", verb))
	return nil
}

package categories

import (
	"context"
	"fmt"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/category"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	validatorx "github.com/cleanduds/admin-dashboard/utils/validator"
)

// Form is the category editor modal's draft. Categories may arrive with
// embedded feature objects; model.Category has already normalized those to
// ids by the time the form is seeded.
type Form struct {
	categories category.CategoryService
	notifier   notify.Notifier

	id    int64
	Draft model.CategoryInput
}

func NewForm(categories category.CategoryService, notifier notify.Notifier) *Form {
	return &Form{categories: categories, notifier: notifier}
}

func (f *Form) SeedEdit(c model.Category) {
	f.id = c.ID
	f.Draft = model.CategoryInput{
		Name:        c.Name,
		Description: c.Description,
		FeatureIDs:  append([]int64{}, c.FeatureIDs...),
	}
}

func (f *Form) SeedCreate() {
	f.id = 0
	f.Draft = model.CategoryInput{FeatureIDs: []int64{}}
}

func (f *Form) Editing() bool {
	return f.id != 0
}

func (f *Form) ToggleFeature(id int64) {
	f.Draft.FeatureIDs = model.ToggleID(f.Draft.FeatureIDs, id)
}

func (f *Form) Submit(ctx context.Context) error {
	if err := validatorx.ValidateStruct(&f.Draft); err != nil {
		notify.Failure(f.notifier, "Error", "Please fill all required fields")
		return fmt.Errorf("%w: %v", cerr.ErrValidation, err)
	}

	verb := "create"
	var err error
	if f.Editing() {
		verb = "update"
		_, err = f.categories.Update(ctx, f.id, &f.Draft)
	} else {
		_, err = f.categories.Create(ctx, &f.Draft)
	}
	if err != nil {
		if !cerr.IsSessionExpired(err) {
			notify.Failure(f.notifier, "Error", fmt.Sprintf("Failed to %s category", verb))
		}
		return err
	}
	notify.Success(f.notifier, "Success", fmt.Sprintf("Category %sd successfully", verb))
	return nil
}

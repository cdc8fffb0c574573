// Package profile drives the admin's own profile view and edit form.
package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/service/profile"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	validatorx "github.com/cleanduds/admin-dashboard/utils/validator"
)

type Controller struct {
	profile  profile.ProfileService
	notifier notify.Notifier

	mu    sync.Mutex
	me    *model.User
	Draft model.UserInput
}

func NewController(svc profile.ProfileService, notifier notify.Notifier) *Controller {
	return &Controller{profile: svc, notifier: notifier}
}

// Load fetches the current profile and seeds the edit draft from it.
func (c *Controller) Load(ctx context.Context) error {
	me, err := c.profile.Me(ctx)
	if err != nil {
		if cerr.IsSessionExpired(err) {
			return nil
		}
		notify.Failure(c.notifier, "Error", "Failed to load profile")
		return err
	}
	c.mu.Lock()
	c.me = me
	c.Draft = model.UserInput{Name: me.Name, Email: me.Email}
	c.mu.Unlock()
	return nil
}

// Submit saves the draft and refreshes the held profile on success.
func (c *Controller) Submit(ctx context.Context) error {
	if err := validatorx.ValidateStruct(&c.Draft); err != nil {
		notify.Failure(c.notifier, "Error", "Please enter a valid email address")
		return fmt.Errorf("%w: %v", cerr.ErrValidation, err)
	}
	updated, err := c.profile.UpdateMe(ctx, &c.Draft)
	if err != nil {
		if !cerr.IsSessionExpired(err) {
			notify.Failure(c.notifier, "Error", "Failed to update profile")
		}
		return err
	}
	c.mu.Lock()
	c.me = updated
	c.mu.Unlock()
	notify.Success(c.notifier, "Success", "Profile updated successfully")
	return nil
}

// Me returns the last loaded profile, nil before the first load.
func (c *Controller) Me() *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.me
}

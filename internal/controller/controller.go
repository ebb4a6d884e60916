// Package controller keeps a view of a user's AI profiles in step with the
// backend.
//
// The backend is the source of truth. The controller never patches its list
// locally: every successful mutation is followed by a full re-fetch, and the
// render callback receives a fresh State after each change.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ruminaider/profilectl/internal/identity"
	"github.com/ruminaider/profilectl/internal/opener"
	"github.com/ruminaider/profilectl/internal/profiles"
)

// ErrNotFound is returned when a profile name is not in the loaded list.
var ErrNotFound = errors.New("profile not found")

// Backend is the profile API the controller drives.
type Backend interface {
	ListProfiles(ctx context.Context) ([]profiles.Profile, error)
	CreateProfile(ctx context.Context, p profiles.Profile) error
	UpdateProfile(ctx context.Context, oldName string, p profiles.Profile) error
	DeleteProfile(ctx context.Context, name string) error
	GenerateProfile(ctx context.Context, profession string) (profiles.Generated, error)
	Defaults(ctx context.Context) (profiles.Defaults, error)
}

// Options configures a Controller.
type Options struct {
	Username string
	// Notifier receives PROFILE_UPDATED after each successful update.
	// Nil means there is no opener.
	Notifier opener.Notifier
	Logger   *slog.Logger
	OnRender func(State)
}

// Controller owns the profile list, the edit form and its submit mode, the
// alert banner and the busy flag. It is safe for concurrent use.
type Controller struct {
	backend  Backend
	notifier opener.Notifier
	log      *slog.Logger

	renderMu sync.Mutex
	render   func(State)

	mu sync.Mutex
	st State
	// issuedGen and appliedGen order list refreshes: a response is only
	// applied when its ticket is newer than the last one applied.
	issuedGen  uint64
	appliedGen uint64
}

// New returns a controller for backend.
func New(backend Backend, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		backend:  backend,
		notifier: opts.Notifier,
		log:      log,
		render:   opts.OnRender,
		st: State{
			Username: identity.Resolve(opts.Username),
			Mode:     CreateMode(),
		},
	}
}

// OnRender replaces the render callback.
func (c *Controller) OnRender(fn func(State)) {
	c.renderMu.Lock()
	c.render = fn
	c.renderMu.Unlock()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.clone()
}

// Username returns the identity the controller acts for.
func (c *Controller) Username() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Username
}

// emit bumps the state version and hands a snapshot to the render
// callback. It must be called without c.mu held.
func (c *Controller) emit() {
	c.mu.Lock()
	c.st.Version++
	st := c.st.clone()
	c.mu.Unlock()

	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if c.render != nil {
		c.render(st)
	}
}

func (c *Controller) update(fn func(st *State)) {
	c.mu.Lock()
	fn(&c.st)
	c.mu.Unlock()
	c.emit()
}

func (c *Controller) showAlert(kind AlertKind, msg string) {
	c.update(func(st *State) {
		st.Alert = &Alert{Kind: kind, Message: msg}
	})
}

// fail routes an operation failure to the alert banner and returns it.
func (c *Controller) fail(what string, err error) error {
	c.log.Warn(what, "err", err)
	c.showAlert(AlertError, fmt.Sprintf("%s: %v", what, err))
	return fmt.Errorf("%s: %w", what, err)
}

func (c *Controller) notFound(name string) error {
	c.showAlert(AlertError, fmt.Sprintf("Profile %s not found.", name))
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Load runs the page start-up sequence. It warns guests, fetches the
// defaults and the list concurrently, and then opens deepLink for editing
// when it names a profile.
func (c *Controller) Load(ctx context.Context, deepLink string) error {
	if identity.IsGuest(c.Username()) {
		c.showAlert(AlertWarning, identity.GuestWarning)
	}

	var (
		g       errgroup.Group
		listErr error
	)
	g.Go(func() error {
		return c.LoadDefaults(ctx)
	})
	g.Go(func() error {
		listErr = c.Refresh(ctx)
		return listErr
	})
	err := g.Wait()

	if listErr == nil && deepLink != "" {
		if openErr := c.OpenEdit(deepLink); openErr != nil {
			return openErr
		}
	}
	return err
}

// LoadDefaults fetches the server-side parameter defaults and turns them
// into form placeholders.
func (c *Controller) LoadDefaults(ctx context.Context) error {
	d, err := c.backend.Defaults(ctx)
	if err != nil {
		return c.fail("Could not load defaults", err)
	}
	c.update(func(st *State) {
		st.Placeholders = d.Placeholders()
	})
	return nil
}

// Refresh replaces the list with the backend's current one.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issuedGen++
	gen := c.issuedGen
	c.mu.Unlock()

	list, err := c.backend.ListProfiles(ctx)

	c.mu.Lock()
	stale := gen <= c.appliedGen
	if err == nil && !stale {
		c.appliedGen = gen
		c.st.Profiles = list
		c.st.Loaded = true
	}
	c.mu.Unlock()

	if stale {
		c.log.Debug("discarding stale profile list", "generation", gen)
		return nil
	}
	if err != nil {
		return c.fail("Could not load profiles", err)
	}
	c.emit()
	return nil
}

// OpenNew opens an empty form in create mode.
func (c *Controller) OpenNew() {
	c.update(func(st *State) {
		st.Form = profiles.Fields{}
		st.Mode = CreateMode()
		st.ModalOpen = true
	})
}

// OpenEdit fills the form from the loaded profile called name and switches
// the submit mode to update it. Unknown names raise the not-found alert and
// leave the form closed.
func (c *Controller) OpenEdit(name string) error {
	c.mu.Lock()
	p, ok := profiles.Find(c.st.Profiles, name)
	if ok {
		c.st.Form = profiles.FieldsFrom(p)
		c.st.Mode = EditMode(name)
		c.st.ModalOpen = true
	}
	c.mu.Unlock()

	if !ok {
		return c.notFound(name)
	}
	c.emit()
	return nil
}

// CloseModal hides the form without touching its contents or mode.
func (c *Controller) CloseModal() {
	c.update(func(st *State) {
		st.ModalOpen = false
	})
}

// Form returns the current form values.
func (c *Controller) Form() profiles.Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Form
}

// SetForm stores edited form values.
func (c *Controller) SetForm(f profiles.Fields) {
	c.update(func(st *State) {
		st.Form = f
	})
}

// DismissAlert clears the banner.
func (c *Controller) DismissAlert() {
	c.update(func(st *State) {
		st.Alert = nil
	})
}

// Submit sends the form according to the current mode.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	mode, f := c.st.Mode, c.st.Form
	c.mu.Unlock()

	if mode.Editing {
		return c.Update(ctx, mode.Name, f)
	}
	return c.Create(ctx, f)
}

func (c *Controller) resetForm() {
	c.update(func(st *State) {
		st.Form = profiles.Fields{}
		st.Mode = CreateMode()
		st.ModalOpen = false
	})
}

// Create stores f as a new profile. A blank display name takes the name.
func (c *Controller) Create(ctx context.Context, f profiles.Fields) error {
	p := profiles.WithDefaultDisplayName(f.Profile)
	if err := c.backend.CreateProfile(ctx, p); err != nil {
		return c.fail("Could not save profile", err)
	}
	c.resetForm()
	return c.Refresh(ctx)
}

// Update replaces the profile stored as oldName with f and tells the opener.
func (c *Controller) Update(ctx context.Context, oldName string, f profiles.Fields) error {
	p := profiles.WithDefaultDisplayName(f.Profile)
	if err := c.backend.UpdateProfile(ctx, oldName, p); err != nil {
		return c.fail("Could not update profile", err)
	}
	c.resetForm()
	err := c.Refresh(ctx)
	c.notify(ctx, p)
	return err
}

func (c *Controller) notify(ctx context.Context, p profiles.Profile) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Notify(ctx, opener.ProfileUpdated(p)); err != nil {
		c.log.Warn("notifying opener failed", "profile", p.Name, "err", err)
	}
}

// Delete removes the named profile. There is no confirmation step.
func (c *Controller) Delete(ctx context.Context, name string) error {
	if err := c.backend.DeleteProfile(ctx, name); err != nil {
		return c.fail("Could not delete profile", err)
	}
	return c.Refresh(ctx)
}

// Duplicate stores a copy of the loaded profile called name as
// "<name>-copy".
func (c *Controller) Duplicate(ctx context.Context, name string) error {
	c.mu.Lock()
	p, ok := profiles.Find(c.st.Profiles, name)
	c.mu.Unlock()
	if !ok {
		return c.notFound(name)
	}

	if err := c.backend.CreateProfile(ctx, profiles.Duplicate(p)); err != nil {
		return c.fail("Could not duplicate profile", err)
	}
	return c.Refresh(ctx)
}

// Generate drafts profile fields for profession and copies them into the
// form. Busy is set for the duration of the call, failures included.
func (c *Controller) Generate(ctx context.Context, profession string) error {
	c.update(func(st *State) {
		st.Form.Profession = profession
		st.Busy = true
	})
	defer c.update(func(st *State) {
		st.Busy = false
	})

	gen, err := c.backend.GenerateProfile(ctx, profession)
	if err != nil {
		return c.fail("Could not generate profile", err)
	}
	c.update(func(st *State) {
		st.Form.ApplyGenerated(gen)
	})
	return nil
}

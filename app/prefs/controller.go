package prefs

import (
	"context"
	"fmt"

	"github.com/umputun/shade/app/enum"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage
//go:generate moq -out mocks/page.go -pkg mocks -skip-ensure -fmt goimports . Page

const (
	// DefaultKey is the storage key holding the display-mode preference.
	DefaultKey = "theme"
	// DefaultControlID is the id of the clickable toggle element.
	DefaultControlID = "theme-toggle"
)

// Marker is the live dark-mode flag of a page root.
type Marker interface {
	IsDark() bool
	SetDark(dark bool)
}

// Page is a rendered document the controller can wire itself to.
type Page interface {
	Marker
	HasElement(id string) bool
}

// Storage is a persistent string key/value store scoped to one visitor.
// Get returns an empty string for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Config holds controller settings. Zero fields get defaults.
type Config struct {
	Key       string
	ControlID string
	Initial   func(stored enum.Theme, systemPrefersDark bool) bool
	Toggled   func(current bool) bool
}

// Controller applies and persists the display-mode preference.
type Controller struct {
	key       string
	controlID string
	initial   func(stored enum.Theme, systemPrefersDark bool) bool
	toggled   func(current bool) bool
}

// NewController makes a Controller, filling missing config fields with defaults.
func NewController(cfg Config) *Controller {
	c := &Controller{key: cfg.Key, controlID: cfg.ControlID, initial: cfg.Initial, toggled: cfg.Toggled}
	if c.key == "" {
		c.key = DefaultKey
	}
	if c.controlID == "" {
		c.controlID = DefaultControlID
	}
	if c.initial == nil {
		c.initial = ComputeInitialMode
	}
	if c.toggled == nil {
		c.toggled = ComputeToggledMode
	}
	return c
}

// Stored returns the preference currently persisted in storage.
// Values other than "dark" and "light" read as unset.
func (c *Controller) Stored(ctx context.Context, st Storage) (enum.Theme, error) {
	v, err := st.Get(ctx, c.key)
	if err != nil {
		return enum.ThemeUnset, fmt.Errorf("read %s preference: %w", c.key, err)
	}
	return enum.ThemeFromStored(v), nil
}

// Initialize sets the root marker from the stored preference, falling back to
// systemPrefersDark when nothing is stored.
func (c *Controller) Initialize(ctx context.Context, root Marker, st Storage, systemPrefersDark bool) error {
	stored, err := c.Stored(ctx, st)
	if err != nil {
		return err
	}
	root.SetDark(c.Mode(stored, systemPrefersDark))
	return nil
}

// Mode returns the effective dark flag for a stored preference and system signal.
func (c *Controller) Mode(stored enum.Theme, systemPrefersDark bool) bool {
	return c.initial(stored, systemPrefersDark)
}

// OnToggle flips the root marker and persists the new value as "dark" or "light".
func (c *Controller) OnToggle(ctx context.Context, root Marker, st Storage) (enum.Theme, error) {
	next := c.toggled(root.IsDark())
	root.SetDark(next)
	theme := enum.ThemeOf(next)
	if err := st.Set(ctx, c.key, theme.String()); err != nil {
		return theme, fmt.Errorf("write %s preference: %w", c.key, err)
	}
	return theme, nil
}

// Wire initializes the page and returns the click binding for its toggle control.
// A page without the control is left untouched and gets a nil binding.
func (c *Controller) Wire(ctx context.Context, page Page, st Storage, systemPrefersDark bool) (*Binding, error) {
	if !page.HasElement(c.controlID) {
		return nil, nil
	}
	if err := c.Initialize(ctx, page, st, systemPrefersDark); err != nil {
		return nil, err
	}
	return &Binding{ctrl: c, page: page, storage: st}, nil
}

// Binding is the click handler attached to a wired page.
type Binding struct {
	ctrl    *Controller
	page    Page
	storage Storage
}

// Toggle handles one click. It does nothing on a nil binding.
func (b *Binding) Toggle(ctx context.Context) (enum.Theme, error) {
	if b == nil {
		return enum.ThemeUnset, nil
	}
	return b.ctrl.OnToggle(ctx, b.page, b.storage)
}

package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/enum"
	"github.com/umputun/shade/app/prefs/mocks"
)

func TestController_Initialize(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		system   bool
		expected bool
	}{
		{name: "stored dark", stored: "dark", system: false, expected: true},
		{name: "stored light wins over system dark", stored: "light", system: true, expected: false},
		{name: "unset follows system dark", stored: "", system: true, expected: true},
		{name: "unset follows system light", stored: "", system: false, expected: false},
		{name: "garbage treated as unset", stored: "blue", system: true, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := newMemStorage(map[string]string{"theme": tc.stored})
			c := NewController(Config{})
			root := &Flag{}

			require.NoError(t, c.Initialize(context.Background(), root, st, tc.system))
			assert.Equal(t, tc.expected, root.IsDark())
			assert.Empty(t, st.SetCalls(), "initialize never writes")

			// second run with the same storage gives the same marker
			require.NoError(t, c.Initialize(context.Background(), root, st, tc.system))
			assert.Equal(t, tc.expected, root.IsDark())
		})
	}

	t.Run("light resets a dark marker", func(t *testing.T) {
		root := &Flag{dark: true}
		err := NewController(Config{}).Initialize(context.Background(), root, newMemStorage(map[string]string{"theme": "light"}), true)
		require.NoError(t, err)
		assert.False(t, root.IsDark())
	})

	t.Run("storage error", func(t *testing.T) {
		st := &mocks.StorageMock{
			GetFunc: func(context.Context, string) (string, error) { return "", errors.New("db is gone") },
		}
		root := &Flag{}
		err := NewController(Config{}).Initialize(context.Background(), root, st, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read theme preference")
		assert.False(t, root.IsDark())
	})
}

func TestController_OnToggle(t *testing.T) {
	t.Run("light to dark persists dark", func(t *testing.T) {
		st := newMemStorage(nil)
		root := &Flag{}
		theme, err := NewController(Config{}).OnToggle(context.Background(), root, st)
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeDark, theme)
		assert.True(t, root.IsDark())
		assert.Equal(t, "dark", st.data["theme"])
	})

	t.Run("dark to light persists light", func(t *testing.T) {
		st := newMemStorage(map[string]string{"theme": "dark"})
		root := &Flag{dark: true}
		theme, err := NewController(Config{}).OnToggle(context.Background(), root, st)
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeLight, theme)
		assert.False(t, root.IsDark())
		assert.Equal(t, "light", st.data["theme"])
	})

	t.Run("double toggle restores marker and stored value", func(t *testing.T) {
		for _, start := range []string{"dark", "light"} {
			st := newMemStorage(map[string]string{"theme": start})
			c := NewController(Config{})
			root := &Flag{}
			require.NoError(t, c.Initialize(context.Background(), root, st, false))
			before := root.IsDark()

			_, err := c.OnToggle(context.Background(), root, st)
			require.NoError(t, err)
			assert.NotEqual(t, start, st.data["theme"])
			_, err = c.OnToggle(context.Background(), root, st)
			require.NoError(t, err)

			assert.Equal(t, before, root.IsDark())
			assert.Equal(t, start, st.data["theme"])
		}
	})

	t.Run("storage error keeps flipped marker", func(t *testing.T) {
		st := &mocks.StorageMock{
			SetFunc: func(context.Context, string, string) error { return errors.New("read-only") },
		}
		root := &Flag{}
		_, err := NewController(Config{}).OnToggle(context.Background(), root, st)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write theme preference")
		assert.True(t, root.IsDark())
	})
}

func TestController_Wire(t *testing.T) {
	t.Run("missing control is a silent no-op", func(t *testing.T) {
		st := newMemStorage(map[string]string{"theme": "dark"})
		page := &mocks.PageMock{
			HasElementFunc: func(string) bool { return false },
		}
		b, err := NewController(Config{}).Wire(context.Background(), page, st, true)
		require.NoError(t, err)
		assert.Nil(t, b)
		assert.Empty(t, st.GetCalls())
		assert.Empty(t, page.SetDarkCalls())

		theme, err := b.Toggle(context.Background())
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeUnset, theme)
		assert.Empty(t, st.SetCalls())
	})

	t.Run("control present initializes and binds toggle", func(t *testing.T) {
		st := newMemStorage(nil)
		dark := false
		page := &mocks.PageMock{
			HasElementFunc: func(id string) bool { return id == "theme-toggle" },
			IsDarkFunc:     func() bool { return dark },
			SetDarkFunc:    func(v bool) { dark = v },
		}
		b, err := NewController(Config{}).Wire(context.Background(), page, st, false)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.False(t, dark)

		theme, err := b.Toggle(context.Background())
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeDark, theme)
		assert.True(t, dark)
		assert.Equal(t, "dark", st.data["theme"])
		require.Len(t, page.HasElementCalls(), 1)
		assert.Equal(t, "theme-toggle", page.HasElementCalls()[0].ID)
	})

	t.Run("init error returns no binding", func(t *testing.T) {
		st := &mocks.StorageMock{
			GetFunc: func(context.Context, string) (string, error) { return "", errors.New("boom") },
		}
		page := &mocks.PageMock{HasElementFunc: func(string) bool { return true }}
		b, err := NewController(Config{}).Wire(context.Background(), page, st, false)
		require.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestController_Mode(t *testing.T) {
	c := NewController(Config{})
	for _, stored := range []enum.Theme{enum.ThemeUnset, enum.ThemeLight, enum.ThemeDark} {
		for _, sys := range []bool{false, true} {
			assert.Equal(t, ComputeInitialMode(stored, sys), c.Mode(stored, sys), "stored %s, system dark %v", stored, sys)
		}
	}
}

func TestController_CustomConfig(t *testing.T) {
	st := newMemStorage(map[string]string{"display": "dark"})
	c := NewController(Config{
		Key:       "display",
		ControlID: "switch",
		Initial:   func(enum.Theme, bool) bool { return false }, // always start light
		Toggled:   func(bool) bool { return true },              // always go dark
	})

	page := &mocks.PageMock{HasElementFunc: func(id string) bool { return id == "switch" }}
	dark := true
	page.IsDarkFunc = func() bool { return dark }
	page.SetDarkFunc = func(v bool) { dark = v }

	assert.False(t, c.Mode(enum.ThemeDark, true))

	b, err := c.Wire(context.Background(), page, st, true)
	require.NoError(t, err)
	assert.False(t, dark)
	require.Len(t, st.GetCalls(), 1)
	assert.Equal(t, "display", st.GetCalls()[0].Key)

	_, err = b.Toggle(context.Background())
	require.NoError(t, err)
	_, err = b.Toggle(context.Background())
	require.NoError(t, err)
	assert.True(t, dark)
	assert.Equal(t, "dark", st.data["display"])
}

// memStorage is a StorageMock backed by a map
type memStorage struct {
	*mocks.StorageMock
	data map[string]string
}

func newMemStorage(init map[string]string) *memStorage {
	m := &memStorage{data: map[string]string{}}
	for k, v := range init {
		if v != "" {
			m.data[k] = v
		}
	}
	m.StorageMock = &mocks.StorageMock{
		GetFunc: func(_ context.Context, key string) (string, error) { return m.data[key], nil },
		SetFunc: func(_ context.Context, key, value string) error {
			m.data[key] = value
			return nil
		},
	}
	return m
}

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/prefs"
	"github.com/umputun/shade/app/server/internal"
	"github.com/umputun/shade/app/server/web/mocks"
)

func TestHandler_HandleIndex(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		systemDark bool
		expected   bool
	}{
		{name: "unset, system dark", stored: "", systemDark: true, expected: true},
		{name: "unset, system light", stored: "", systemDark: false, expected: false},
		{name: "light wins over system dark", stored: "light", systemDark: true, expected: false},
		{name: "dark wins over system light", stored: "dark", systemDark: false, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := newMemStore()
			if tc.stored != "" {
				st.data["v1/theme"] = tc.stored
			}
			h := newTestHandler(t, st)

			req := newVisitorRequest(http.MethodGet, "/", "v1")
			if tc.systemDark {
				req.Header.Set(internal.ColorSchemeHint, `"dark"`)
			}
			rec := httptest.NewRecorder()
			h.handleIndex(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			doc := parseBody(t, rec)
			assert.Equal(t, tc.expected, doc.IsDark())
			assert.True(t, doc.HasElement(prefs.DefaultControlID))
			assert.Empty(t, st.SetCalls(), "rendering never writes")
		})
	}

	t.Run("store error", func(t *testing.T) {
		st := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "", errStore },
		}
		h := newTestHandler(t, st)
		rec := httptest.NewRecorder()
		h.handleIndex(rec, newVisitorRequest(http.MethodGet, "/", "v1"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_HandleAbout(t *testing.T) {
	st := newMemStore()
	st.data["v1/theme"] = "dark"
	h := newTestHandler(t, st)

	req := newVisitorRequest(http.MethodGet, "/about", "v1")
	req.Header.Set(internal.ColorSchemeHint, "dark")
	rec := httptest.NewRecorder()
	h.handleAbout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseBody(t, rec)
	assert.False(t, doc.IsDark(), "no control, marker stays at default")
	assert.Empty(t, st.GetCalls(), "storage is not read without a control")
}

func TestHandler_HandleThemeToggle(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		systemDark bool
		expected   string
	}{
		{name: "unset, system light -> dark", stored: "", systemDark: false, expected: "dark"},
		{name: "unset, system dark -> light", stored: "", systemDark: true, expected: "light"},
		{name: "light -> dark", stored: "light", systemDark: true, expected: "dark"},
		{name: "dark -> light", stored: "dark", systemDark: false, expected: "light"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := newMemStore()
			if tc.stored != "" {
				st.data["v1/theme"] = tc.stored
			}
			h := newTestHandler(t, st)

			req := newVisitorRequest(http.MethodPost, "/web/theme", "v1")
			if tc.systemDark {
				req.Header.Set(internal.ColorSchemeHint, "dark")
			}
			rec := httptest.NewRecorder()
			h.handleThemeToggle(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			assert.Equal(t, tc.expected, st.data["v1/theme"])
			require.Len(t, st.SetCalls(), 1)
			assert.Equal(t, "v1", st.SetCalls()[0].Scope)
		})
	}

	t.Run("toggle twice restores stored value", func(t *testing.T) {
		st := newMemStore()
		st.data["v1/theme"] = "light"
		h := newTestHandler(t, st)

		for range 2 {
			rec := httptest.NewRecorder()
			h.handleThemeToggle(rec, newVisitorRequest(http.MethodPost, "/web/theme", "v1"))
			require.Equal(t, http.StatusSeeOther, rec.Code)
		}
		assert.Equal(t, "light", st.data["v1/theme"])
	})

	t.Run("htmx request gets refresh header", func(t *testing.T) {
		st := newMemStore()
		h := newTestHandler(t, st)
		req := newVisitorRequest(http.MethodPost, "/web/theme", "v1")
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
		assert.Equal(t, "dark", st.data["v1/theme"])
	})

	t.Run("page without control stores nothing", func(t *testing.T) {
		st := newMemStore()
		h := newTestHandler(t, st)
		req := httptest.NewRequest(http.MethodPost, "/web/theme", strings.NewReader(url.Values{"page": {"about"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req = req.WithContext(internal.WithVisitor(req.Context(), "v1"))
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, st.SetCalls())
		assert.Empty(t, st.GetCalls())
	})

	t.Run("unknown page", func(t *testing.T) {
		h := newTestHandler(t, newMemStore())
		req := httptest.NewRequest(http.MethodPost, "/web/theme?page=nope", http.NoBody)
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("redirect honors base url", func(t *testing.T) {
		st := newMemStore()
		h, err := New(st, prefs.NewController(prefs.Config{}), Config{BaseURL: "/shade"})
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, newVisitorRequest(http.MethodPost, "/web/theme", "v1"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/shade/", rec.Header().Get("Location"))
	})

	t.Run("store write error", func(t *testing.T) {
		st := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "light", nil },
			SetFunc: func(context.Context, string, string, string) error { return errStore },
		}
		h := newTestHandler(t, st)
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, newVisitorRequest(http.MethodPost, "/web/theme", "v1"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("store read error", func(t *testing.T) {
		st := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "", errStore },
		}
		h := newTestHandler(t, st)
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, newVisitorRequest(http.MethodPost, "/web/theme", "v1"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, st.SetCalls())
	})
}

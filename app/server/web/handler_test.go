package web

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/page"
	"github.com/umputun/shade/app/prefs"
	"github.com/umputun/shade/app/server/internal"
	"github.com/umputun/shade/app/server/web/mocks"
	"github.com/umputun/shade/app/store"
)

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	require.NoError(t, err)
	data, err := fs.ReadFile(sfs, "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), "html.dark")
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	for _, p := range pages {
		assert.NotNil(t, tmpl.Lookup(p.template), p.template)
	}
}

func TestHandler_RenderDocument(t *testing.T) {
	h := newTestHandler(t, newMemStore())

	t.Run("index has toggle control", func(t *testing.T) {
		doc, err := h.renderDocument("index")
		require.NoError(t, err)
		assert.True(t, doc.HasElement(prefs.DefaultControlID))
		assert.False(t, doc.IsDark())
	})

	t.Run("about has no toggle control", func(t *testing.T) {
		doc, err := h.renderDocument("about")
		require.NoError(t, err)
		assert.False(t, doc.HasElement(prefs.DefaultControlID))
	})

	t.Run("unknown page", func(t *testing.T) {
		_, err := h.renderDocument("missing")
		require.Error(t, err)
	})
}

func TestHandler_URL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{name: "no base", baseURL: "", path: "/about", want: "/about"},
		{name: "with base", baseURL: "/shade", path: "/about", want: "/shade/about"},
		{name: "root with base", baseURL: "/shade", path: "/", want: "/shade/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &Handler{baseURL: tc.baseURL}
			assert.Equal(t, tc.want, h.url(tc.path))
		})
	}
}

// memStore is a PrefStoreMock backed by a map keyed by scope and key
type memStore struct {
	*mocks.PrefStoreMock
	data map[string]string
}

func newMemStore() *memStore {
	m := &memStore{data: map[string]string{}}
	m.PrefStoreMock = &mocks.PrefStoreMock{
		GetFunc: func(_ context.Context, scope, key string) (string, error) {
			v, ok := m.data[scope+"/"+key]
			if !ok {
				return "", store.ErrNotFound
			}
			return v, nil
		},
		SetFunc: func(_ context.Context, scope, key, value string) error {
			m.data[scope+"/"+key] = value
			return nil
		},
	}
	return m
}

func newTestHandler(t *testing.T, st PrefStore) *Handler {
	t.Helper()
	h, err := New(st, prefs.NewController(prefs.Config{}), Config{Version: "test"})
	require.NoError(t, err)
	return h
}

// newVisitorRequest makes a request already carrying a visitor id in its context.
func newVisitorRequest(method, target, visitor string) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	return req.WithContext(internal.WithVisitor(req.Context(), visitor))
}

// parseBody parses a recorded HTML response.
func parseBody(t *testing.T, rec *httptest.ResponseRecorder) *page.Document {
	t.Helper()
	doc, err := page.Parse(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

var errStore = errors.New("store unavailable")

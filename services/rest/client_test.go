package restsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

type memStore struct {
	sess    auth.Session
	cleared int
}

func (m *memStore) Load() (auth.Session, error) { return m.sess, nil }
func (m *memStore) Save(s auth.Session) error   { m.sess = s; return nil }
func (m *memStore) Clear() error                { m.sess = auth.Session{}; m.cleared++; return nil }

func testConfig(baseURL string) *core.Config {
	conf := &core.Config{}
	conf.API.BaseURL = baseURL
	conf.API.Timeout = 5 * time.Second
	return conf
}

func newTestClient(t *testing.T, handler http.Handler, store auth.Store, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(testConfig(srv.URL), store, core.NopLogger{}, opts...)
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	e := echo.New()
	e.GET("/api/ping", func(c echo.Context) error {
		got = c.Request().Header.Clone()
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	store := &memStore{sess: auth.Session{Token: "tok-123", Role: auth.RoleNurse}}
	client := newTestClient(t, e, store)

	require.NoError(t, client.Get(context.Background(), "/api/ping", nil, nil))
	assert.Equal(t, "Bearer tok-123", got.Get(echo.HeaderAuthorization))
	assert.Equal(t, "application/json", got.Get(echo.HeaderAccept))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestAnonymousRequestsCarryNoBearer(t *testing.T) {
	var got http.Header
	e := echo.New()
	e.GET("/api/ping", func(c echo.Context) error {
		got = c.Request().Header.Clone()
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	client := newTestClient(t, e, &memStore{})
	require.NoError(t, client.Get(context.Background(), "/api/ping", nil, nil))
	assert.Empty(t, got.Get(echo.HeaderAuthorization))
}

func TestQueryMerging(t *testing.T) {
	var got url.Values
	e := echo.New()
	e.GET("/api/items", func(c echo.Context) error {
		got = c.QueryParams()
		return c.JSON(http.StatusOK, echo.Map{})
	})

	client := newTestClient(t, e, &memStore{})
	v := url.Values{"keyword": []string{"para"}}
	// an embedded query in the path survives the merge
	require.NoError(t, client.Get(context.Background(), "/api/items?read=true", v, nil))
	assert.Equal(t, "para", got.Get("keyword"))
	assert.Equal(t, "true", got.Get("read"))
}

func TestSessionExpiry(t *testing.T) {
	e := echo.New()
	e.GET("/api/students", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "token expired"})
	})

	t.Run("authenticated 401 purges the session and fires the hook once", func(t *testing.T) {
		store := &memStore{sess: auth.Session{Token: "stale", Role: auth.RoleNurse}}
		var hookCalls int
		client := newTestClient(t, e, store, WithSessionExpiredHook(func() { hookCalls++ }))

		err := client.Get(context.Background(), "/api/students", nil, nil)
		assert.True(t, core.IsUnauthorized(err))
		assert.Equal(t, 1, store.cleared)
		assert.Equal(t, 1, hookCalls)
		assert.False(t, store.sess.Authenticated())
	})

	t.Run("anonymous 401 is a plain backend error", func(t *testing.T) {
		store := &memStore{}
		var hookCalls int
		client := newTestClient(t, e, store, WithSessionExpiredHook(func() { hookCalls++ }))

		err := client.Get(context.Background(), "/api/students", nil, nil)
		var apiErr *core.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "token expired", apiErr.Message)
		assert.Zero(t, store.cleared)
		assert.Zero(t, hookCalls)
	})
}

func TestErrorMessages(t *testing.T) {
	e := echo.New()
	e.GET("/api/with-message", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "student code already taken"})
	})
	e.GET("/api/with-error", func(c echo.Context) error {
		return c.JSON(http.StatusConflict, echo.Map{"error": "conflicting update"})
	})
	e.GET("/api/opaque", func(c echo.Context) error {
		return c.Blob(http.StatusBadGateway, "text/html", []byte("<html>nope</html>"))
	})

	client := newTestClient(t, e, &memStore{})
	ctx := context.Background()

	tests := []struct {
		path string
		code int
		msg  string
	}{
		{"/api/with-message", http.StatusBadRequest, "student code already taken"},
		{"/api/with-error", http.StatusConflict, "conflicting update"},
		{"/api/opaque", http.StatusBadGateway, http.StatusText(http.StatusBadGateway)},
	}
	for _, tt := range tests {
		err := client.Get(ctx, tt.path, nil, nil)
		var apiErr *core.APIError
		require.ErrorAs(t, err, &apiErr, tt.path)
		assert.Equal(t, tt.code, apiErr.StatusCode)
		assert.Equal(t, tt.msg, apiErr.Message)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	client := NewClient(testConfig(srv.URL), &memStore{}, core.NopLogger{})
	err := client.Get(context.Background(), "/api/students", nil, nil)

	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNetwork())
	assert.Equal(t, 0, core.StatusCode(err))
}

func TestList(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}

	e := echo.New()
	e.GET("/api/array", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []item{{ID: "a"}, {ID: "b"}})
	})
	e.GET("/api/paged", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"content":       []item{{ID: "a"}},
			"totalElements": 41,
			"totalPages":    3,
			"number":        2,
			"size":          20,
		})
	})
	e.GET("/api/null", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte("null"))
	})
	e.GET("/api/scalar", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`"surprise"`))
	})
	e.GET("/api/object", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"notContent": true})
	})

	client := newTestClient(t, e, &memStore{})
	ctx := context.Background()

	t.Run("bare array", func(t *testing.T) {
		var items []item
		meta, err := client.List(ctx, "/api/array", nil, &items)
		require.NoError(t, err)
		assert.Nil(t, meta)
		assert.Len(t, items, 2)
	})

	t.Run("paginated envelope", func(t *testing.T) {
		var items []item
		meta, err := client.List(ctx, "/api/paged", nil, &items)
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, 41, meta.TotalElements)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 2, meta.Number)
		assert.Len(t, items, 1)
	})

	t.Run("null body", func(t *testing.T) {
		var items []item
		meta, err := client.List(ctx, "/api/null", nil, &items)
		require.NoError(t, err)
		assert.Nil(t, meta)
		assert.Empty(t, items)
	})

	t.Run("unexpected shapes", func(t *testing.T) {
		for _, path := range []string{"/api/scalar", "/api/object"} {
			var items []item
			_, err := client.List(ctx, path, nil, &items)
			assert.EqualError(t, err, "unexpected list payload shape", path)
		}
	})
}

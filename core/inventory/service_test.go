package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

type memStore struct{ sess auth.Session }

func (m *memStore) Load() (auth.Session, error) { return m.sess, nil }
func (m *memStore) Save(s auth.Session) error   { m.sess = s; return nil }
func (m *memStore) Clear() error                { m.sess = auth.Session{}; return nil }

func nurseStore() *memStore {
	return &memStore{sess: auth.Session{Token: "tok", Role: auth.RoleNurse}}
}

type fakeClient struct {
	calls  []string
	bodies map[string]string
	errs   map[string]error
}

func (f *fakeClient) answer(method, path string, out interface{}) error {
	key := method + " " + path
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		return err
	}
	if body, ok := f.bodies[key]; ok && out != nil {
		return json.Unmarshal([]byte(body), out)
	}
	return nil
}

func (f *fakeClient) Get(_ context.Context, path string, _ url.Values, out interface{}) error {
	return f.answer(http.MethodGet, path, out)
}
func (f *fakeClient) List(_ context.Context, path string, _ url.Values, out interface{}) (*core.PageMeta, error) {
	return nil, f.answer("LIST", path, out)
}
func (f *fakeClient) Post(_ context.Context, path string, _, out interface{}) error {
	return f.answer(http.MethodPost, path, out)
}
func (f *fakeClient) Put(_ context.Context, path string, _, out interface{}) error {
	return f.answer(http.MethodPut, path, out)
}
func (f *fakeClient) Delete(_ context.Context, path string) error {
	return f.answer(http.MethodDelete, path, nil)
}

func validNewItem() NewItem {
	return NewItem{
		Name:          "Paracetamol 500mg",
		Category:      "MEDICATION",
		ExpiryDate:    core.MaxExpiryDate(),
		Unit:          "tablet",
		TotalQuantity: 100,
	}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("creates catalog entry then inventory record", func(t *testing.T) {
		client := &fakeClient{
			bodies: map[string]string{
				"POST /api/medical-items": `{"medicalItemId":"mi-1","name":"Paracetamol 500mg"}`,
				"POST /api/inventory":     `{"inventoryId":"inv-1","medicalItem":{"medicalItemId":"mi-1"},"totalQuantity":100}`,
			},
		}
		created, err := NewService(client, nurseStore(), core.NopLogger{}).Add(ctx, validNewItem())
		require.NoError(t, err)
		assert.Equal(t, []string{"POST /api/medical-items", "POST /api/inventory"}, client.calls)
		assert.Equal(t, "inv-1", created.ID)
		assert.Equal(t, 100, created.TotalQuantity)
	})

	t.Run("failed second step surfaces the orphaned catalog entry", func(t *testing.T) {
		client := &fakeClient{
			bodies: map[string]string{"POST /api/medical-items": `{"medicalItemId":"mi-1"}`},
			errs:   map[string]error{"POST /api/inventory": core.NewAPIError(http.StatusInternalServerError, "boom", nil)},
		}
		_, err := NewService(client, nurseStore(), core.NopLogger{}).Add(ctx, validNewItem())
		var partial *core.PartialWriteError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, "medical-items", partial.Created)
		assert.Equal(t, "mi-1", partial.CreatedID)
		// no compensating delete is attempted
		assert.Equal(t, []string{"POST /api/medical-items", "POST /api/inventory"}, client.calls)
	})

	t.Run("failed first step is a plain error", func(t *testing.T) {
		client := &fakeClient{
			errs: map[string]error{"POST /api/medical-items": core.NewAPIError(http.StatusBadRequest, "bad", nil)},
		}
		_, err := NewService(client, nurseStore(), core.NopLogger{}).Add(ctx, validNewItem())
		var partial *core.PartialWriteError
		assert.False(t, errors.As(err, &partial))
		assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))
	})

	t.Run("expiry outside the window never hits the network", func(t *testing.T) {
		client := &fakeClient{}
		ni := validNewItem()
		ni.ExpiryDate = "2099-01-01"
		_, err := NewService(client, nurseStore(), core.NopLogger{}).Add(ctx, ni)
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "expiryDate", vErr.Fields[0].Field)
		assert.Equal(t, "expiry date cannot be more than 6 months from now", vErr.Fields[0].Error)
		assert.Empty(t, client.calls)
	})

	t.Run("wrong role never hits the network", func(t *testing.T) {
		client := &fakeClient{}
		store := &memStore{sess: auth.Session{Token: "tok", Role: auth.RoleParent}}
		_, err := NewService(client, store, core.NopLogger{}).Add(ctx, validNewItem())
		var pErr *core.PermissionError
		require.ErrorAs(t, err, &pErr)
		assert.Empty(t, client.calls)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("failure collapses to an empty slice", func(t *testing.T) {
		client := &fakeClient{
			errs: map[string]error{"LIST /api/inventory/search": core.NewAPIError(0, "unreachable", nil)},
		}
		items := NewService(client, nurseStore(), core.NopLogger{}).Search(ctx, "para")
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("results", func(t *testing.T) {
		client := &fakeClient{
			bodies: map[string]string{"LIST /api/inventory/search": `[{"inventoryId":"inv-1","totalQuantity":3}]`},
		}
		items := NewService(client, nurseStore(), core.NopLogger{}).Search(ctx, "para")
		require.Len(t, items, 1)
		assert.Equal(t, StatusLow, items[0].Status())
	})
}

func TestGetCatalogItem(t *testing.T) {
	client := &fakeClient{
		bodies: map[string]string{"GET /api/medical-items/mi-1": `{"medicalItemId":"mi-1","name":"Paracetamol 500mg"}`},
	}
	mi, err := NewService(client, nurseStore(), core.NopLogger{}).GetCatalogItem(context.Background(), "mi-1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", mi.Name)
}

func TestDeduct(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		bodies: map[string]string{"PUT /api/inventory/inv-1/deduct": `{"inventoryId":"inv-1","totalQuantity":95}`},
	}
	updated, err := NewService(client, nurseStore(), core.NopLogger{}).Deduct(ctx, "inv-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 95, updated.TotalQuantity)
	assert.Equal(t, []string{"PUT /api/inventory/inv-1/deduct"}, client.calls)
}

func TestPrincipalMayManageInventory(t *testing.T) {
	client := &fakeClient{
		bodies: map[string]string{"PUT /api/inventory/inv-1": `{"inventoryId":"inv-1","totalQuantity":10}`},
	}
	store := &memStore{sess: auth.Session{Token: "tok", Role: auth.RolePrincipal}}
	_, err := NewService(client, store, core.NopLogger{}).Update(context.Background(), "inv-1", UpdateItem{})
	assert.NoError(t, err)
}

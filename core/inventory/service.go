package inventory

import (
	"context"
	"net/url"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

const (
	basePath    = "/api/inventory"
	catalogPath = "/api/medical-items"
)

type Service struct {
	client core.APIClient
	store  auth.Store
	log    core.Logger
}

func NewService(client core.APIClient, store auth.Store, log core.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// QueryAll returns the whole inventory; failures collapse to an empty slice.
func (svc *Service) QueryAll(ctx context.Context) []Item {
	return svc.list(ctx, basePath, nil)
}

// Search filters the inventory by keyword; failures collapse to an empty slice.
func (svc *Service) Search(ctx context.Context, keyword string) []Item {
	v := make(url.Values)
	v.Set("keyword", core.CleanString(keyword))
	return svc.list(ctx, basePath+"/search", v)
}

func (svc *Service) list(ctx context.Context, path string, v url.Values) []Item {
	var items []Item
	if _, err := svc.client.List(ctx, path, v, &items); err != nil {
		svc.log.Warn("inventory list fetch failed", err)
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	return items
}

func (svc *Service) GetByID(ctx context.Context, id string) (Item, error) {
	var it Item
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Add performs the two-step composite write: create the catalog entry,
// then the inventory record pointing at it. When the second call fails the
// catalog entry is NOT rolled back; the caller gets a *core.PartialWriteError
// naming the orphaned entry and must surface it, not mask it.
func (svc *Service) Add(ctx context.Context, ni NewItem) (Item, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpInventoryWrite); err != nil {
		return Item{}, err
	}
	ni.Name = core.CleanString(ni.Name)
	if err := core.CheckStruct(ni); err != nil {
		return Item{}, err
	}

	var mi MedicalItem
	if err := svc.client.Post(ctx, catalogPath, ni.medicalItem(), &mi); err != nil {
		return Item{}, err
	}

	rec := newInventoryRecord{MedicalItemID: mi.ID, TotalQuantity: ni.TotalQuantity}
	var created Item
	if err := svc.client.Post(ctx, basePath, rec, &created); err != nil {
		return Item{}, &core.PartialWriteError{Created: "medical-items", CreatedID: mi.ID, Err: err}
	}
	return created, nil
}

// GetCatalogItem fetches a medical item straight from the catalog.
func (svc *Service) GetCatalogItem(ctx context.Context, medicalItemID string) (MedicalItem, error) {
	var mi MedicalItem
	if err := svc.client.Get(ctx, catalogPath+"/"+url.PathEscape(medicalItemID), nil, &mi); err != nil {
		return MedicalItem{}, err
	}
	return mi, nil
}

// Update adjusts the quantity-tracking record.
func (svc *Service) Update(ctx context.Context, id string, ui UpdateItem) (Item, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpInventoryWrite); err != nil {
		return Item{}, err
	}
	var updated Item
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id), ui, &updated); err != nil {
		return Item{}, err
	}
	return updated, nil
}

// UpdateCatalog edits the underlying medical item.
func (svc *Service) UpdateCatalog(ctx context.Context, medicalItemID string, um UpdateMedicalItem) (MedicalItem, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpInventoryWrite); err != nil {
		return MedicalItem{}, err
	}
	if err := core.CheckStruct(um); err != nil {
		return MedicalItem{}, err
	}
	var updated MedicalItem
	if err := svc.client.Put(ctx, catalogPath+"/"+url.PathEscape(medicalItemID), um, &updated); err != nil {
		return MedicalItem{}, err
	}
	return updated, nil
}

// Deduct lowers an item's quantity; also invoked by the schedule service
// as the second step of a scheduled administration.
func (svc *Service) Deduct(ctx context.Context, id string, quantity int) (Item, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpInventoryWrite); err != nil {
		return Item{}, err
	}
	var updated Item
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id)+"/deduct", deduction{Quantity: quantity}, &updated); err != nil {
		return Item{}, err
	}
	return updated, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpInventoryWrite); err != nil {
		return err
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

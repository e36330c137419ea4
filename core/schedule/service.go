package schedule

import (
	"context"
	"net/url"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

const basePath = "/api/schedules"

type Service struct {
	client core.APIClient
	store  auth.Store
	log    core.Logger
}

func NewService(client core.APIClient, store auth.Store, log core.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// NurseAll returns every schedule (nurse view); failures collapse to an
// empty slice.
func (svc *Service) NurseAll(ctx context.Context) []Schedule {
	return svc.list(ctx, basePath+"/nurse/all")
}

// MyStudents returns schedules for the logged-in parent's students;
// failures collapse to an empty slice.
func (svc *Service) MyStudents(ctx context.Context) []Schedule {
	return svc.list(ctx, basePath+"/my-students")
}

func (svc *Service) list(ctx context.Context, path string) []Schedule {
	var schedules []Schedule
	if _, err := svc.client.List(ctx, path, nil, &schedules); err != nil {
		svc.log.Warn("schedule list fetch failed", err)
		return []Schedule{}
	}
	if schedules == nil {
		return []Schedule{}
	}
	return schedules
}

func (svc *Service) GetByID(ctx context.Context, id string) (Schedule, error) {
	var sch Schedule
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &sch); err != nil {
		return Schedule{}, err
	}
	return sch, nil
}

// Create posts the schedule, then issues the inventory deduction when the
// pair is present. The two calls are not transactional: a failing deduction
// leaves the schedule in place and surfaces a *core.PartialWriteError.
func (svc *Service) Create(ctx context.Context, ns NewSchedule) (Schedule, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpScheduleWrite); err != nil {
		return Schedule{}, err
	}
	if err := core.CheckStruct(ns); err != nil {
		return Schedule{}, err
	}

	var created Schedule
	if err := svc.client.Post(ctx, basePath, ns, &created); err != nil {
		return Schedule{}, err
	}

	if ns.InventoryID.Valid {
		body := struct {
			Quantity int `json:"quantityToDeduct"`
		}{Quantity: ns.QuantityToDeduct.Int}
		deductPath := "/api/inventory/" + url.PathEscape(ns.InventoryID.String) + "/deduct"
		if err := svc.client.Put(ctx, deductPath, body, nil); err != nil {
			return created, &core.PartialWriteError{Created: "schedules", CreatedID: created.ID, Err: err}
		}
	}
	return created, nil
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateSchedule) (Schedule, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpScheduleWrite); err != nil {
		return Schedule{}, err
	}
	if err := core.CheckStruct(us); err != nil {
		return Schedule{}, err
	}
	var updated Schedule
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id), us, &updated); err != nil {
		return Schedule{}, err
	}
	return updated, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpScheduleWrite); err != nil {
		return err
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

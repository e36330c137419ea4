package incident

import (
	"context"
	"net/url"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

const basePath = "/api/health-incidents"

type Service struct {
	client core.APIClient
	store  auth.Store
	log    core.Logger
}

func NewService(client core.APIClient, store auth.Store, log core.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// QueryAll returns all incidents; failures collapse to an empty slice.
func (svc *Service) QueryAll(ctx context.Context) []Incident {
	return svc.list(ctx, nil)
}

// ByStudent returns a student's incidents; failures collapse to an empty slice.
func (svc *Service) ByStudent(ctx context.Context, studentID string) []Incident {
	v := make(url.Values)
	v.Set("studentId", studentID)
	return svc.list(ctx, v)
}

func (svc *Service) list(ctx context.Context, v url.Values) []Incident {
	var incidents []Incident
	if _, err := svc.client.List(ctx, basePath, v, &incidents); err != nil {
		svc.log.Warn("incident list fetch failed", err)
		return []Incident{}
	}
	if incidents == nil {
		return []Incident{}
	}
	return incidents
}

func (svc *Service) GetByID(ctx context.Context, id string) (Incident, error) {
	var in Incident
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &in); err != nil {
		return Incident{}, err
	}
	return in, nil
}

func (svc *Service) Create(ctx context.Context, ni NewIncident) (Incident, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpIncidentWrite); err != nil {
		return Incident{}, err
	}
	ni.Description = core.CleanString(ni.Description)
	if err := core.CheckStruct(ni); err != nil {
		return Incident{}, err
	}
	var created Incident
	if err := svc.client.Post(ctx, basePath, ni, &created); err != nil {
		return Incident{}, err
	}
	return created, nil
}

func (svc *Service) Update(ctx context.Context, id string, ui UpdateIncident) (Incident, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpIncidentWrite); err != nil {
		return Incident{}, err
	}
	if err := core.CheckStruct(ui); err != nil {
		return Incident{}, err
	}
	var updated Incident
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id), ui, &updated); err != nil {
		return Incident{}, err
	}
	return updated, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpIncidentWrite); err != nil {
		return err
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

package healthinfo

import (
	"context"
	"net/url"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

const basePath = "/api/health-info"

type Service struct {
	client core.APIClient
	store  auth.Store
	log    core.Logger
}

func NewService(client core.APIClient, store auth.Store, log core.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// QueryAll returns every health record visible to the caller; failures
// collapse to an empty slice.
func (svc *Service) QueryAll(ctx context.Context) []HealthInfo {
	var infos []HealthInfo
	if _, err := svc.client.List(ctx, basePath, nil, &infos); err != nil {
		svc.log.Warn("health-info list fetch failed", err)
		return []HealthInfo{}
	}
	if infos == nil {
		return []HealthInfo{}
	}
	return infos
}

func (svc *Service) GetByID(ctx context.Context, id string) (HealthInfo, error) {
	var hi HealthInfo
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &hi); err != nil {
		return HealthInfo{}, err
	}
	return hi, nil
}

// ByStudent fetches the single record attached to a student.
func (svc *Service) ByStudent(ctx context.Context, studentID string) (HealthInfo, error) {
	var hi HealthInfo
	if err := svc.client.Get(ctx, basePath+"/student/"+url.PathEscape(studentID), nil, &hi); err != nil {
		return HealthInfo{}, err
	}
	return hi, nil
}

func (svc *Service) Create(ctx context.Context, nhi NewHealthInfo) (HealthInfo, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpHealthInfoWrite); err != nil {
		return HealthInfo{}, err
	}
	if err := core.CheckStruct(nhi); err != nil {
		return HealthInfo{}, err
	}
	var created HealthInfo
	if err := svc.client.Post(ctx, basePath, nhi, &created); err != nil {
		return HealthInfo{}, err
	}
	return created, nil
}

func (svc *Service) Update(ctx context.Context, id string, uhi UpdateHealthInfo) (HealthInfo, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpHealthInfoWrite); err != nil {
		return HealthInfo{}, err
	}
	var updated HealthInfo
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id), uhi, &updated); err != nil {
		return HealthInfo{}, err
	}
	return updated, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpHealthInfoWrite); err != nil {
		return err
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

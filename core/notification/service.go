package notification

import (
	"context"
	"net/url"
	"strconv"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

const basePath = "/api/notifications"

type Service struct {
	client core.APIClient
	store  auth.Store
	log    core.Logger
}

func NewService(client core.APIClient, store auth.Store, log core.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// QueryAll returns every notification; failures collapse to an empty slice.
func (svc *Service) QueryAll(ctx context.Context) []Notification {
	return svc.list(ctx, basePath)
}

// My returns the logged-in user's notifications; failures collapse to an
// empty slice.
func (svc *Service) My(ctx context.Context) []Notification {
	return svc.list(ctx, basePath+"/my")
}

func (svc *Service) list(ctx context.Context, path string) []Notification {
	var notifs []Notification
	if _, err := svc.client.List(ctx, path, nil, &notifs); err != nil {
		svc.log.Warn("notification list fetch failed", err)
		return []Notification{}
	}
	if notifs == nil {
		return []Notification{}
	}
	return notifs
}

func (svc *Service) Create(ctx context.Context, nn NewNotification) (Notification, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpNotificationWrite); err != nil {
		return Notification{}, err
	}
	nn.Title = core.CleanString(nn.Title)
	if err := core.CheckStruct(nn); err != nil {
		return Notification{}, err
	}
	var created Notification
	if err := svc.client.Post(ctx, basePath, nn, &created); err != nil {
		return Notification{}, err
	}
	return created, nil
}

func (svc *Service) Update(ctx context.Context, id string, un UpdateNotification) (Notification, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpNotificationWrite); err != nil {
		return Notification{}, err
	}
	var updated Notification
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id), un, &updated); err != nil {
		return Notification{}, err
	}
	return updated, nil
}

// SetReadStatus flips a notification's read flag. Unlike the other writes
// this one is open to every role: marking your own notifications read is
// not a staff operation.
func (svc *Service) SetReadStatus(ctx context.Context, id string, read bool) (Notification, error) {
	path := basePath + "/" + url.PathEscape(id) + "/read-status?read=" + strconv.FormatBool(read)
	var updated Notification
	if err := svc.client.Put(ctx, path, nil, &updated); err != nil {
		return Notification{}, err
	}
	return updated, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpNotificationWrite); err != nil {
		return err
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

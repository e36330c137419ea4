package student

import (
	"context"
	"net/url"
	"strconv"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

const basePath = "/api/students"

type Service struct {
	client core.APIClient
	store  auth.Store
	log    core.Logger
}

func NewService(client core.APIClient, store auth.Store, log core.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// Query returns one page of students. Failures never propagate: the
// caller always gets a well-formed (possibly empty) page.
func (svc *Service) Query(ctx context.Context, q Query) Page {
	v := make(url.Values)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}

	var students []Student
	meta, err := svc.client.List(ctx, basePath, v, &students)
	if err != nil {
		svc.log.Warn("student list fetch failed", err)
		return Page{Content: []Student{}}
	}
	page := Page{Content: students}
	if page.Content == nil {
		page.Content = []Student{}
	}
	if meta != nil {
		page.TotalElements = meta.TotalElements
		page.TotalPages = meta.TotalPages
		page.Number = meta.Number
	} else {
		page.TotalElements = len(page.Content)
		if len(page.Content) > 0 {
			page.TotalPages = 1
		}
	}
	return page
}

// My returns the students linked to the logged-in parent. Never errors;
// failures collapse to an empty slice.
func (svc *Service) My(ctx context.Context) []Student {
	var students []Student
	if _, err := svc.client.List(ctx, basePath+"/my", nil, &students); err != nil {
		svc.log.Warn("my-students fetch failed", err)
		return []Student{}
	}
	if students == nil {
		return []Student{}
	}
	return students
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	var s Student
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &s); err != nil {
		return Student{}, err
	}
	return s, nil
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpStudentWrite); err != nil {
		return Student{}, err
	}
	ns.Code = core.CleanString(ns.Code)
	ns.FullName = core.CleanString(ns.FullName)
	if err := core.CheckStruct(ns); err != nil {
		return Student{}, err
	}
	var created Student
	if err := svc.client.Post(ctx, basePath, ns, &created); err != nil {
		return Student{}, err
	}
	return created, nil
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpStudentWrite); err != nil {
		return Student{}, err
	}
	if err := core.CheckStruct(us); err != nil {
		return Student{}, err
	}
	var updated Student
	if err := svc.client.Put(ctx, basePath+"/"+url.PathEscape(id), us, &updated); err != nil {
		return Student{}, err
	}
	return updated, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	sess, _ := svc.store.Load()
	if err := auth.Require(sess, auth.OpStudentWrite); err != nil {
		return err
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

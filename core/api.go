package core

import (
	"context"
	"net/url"
)

// PageMeta is the pagination envelope metadata some list endpoints wrap
// their content in. List calls that return a bare JSON array yield no meta.
type PageMeta struct {
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

// APIClient is the REST transport contract the resource services are built on;
// implemented by services/rest. Implementations attach the bearer token,
// normalize list payload shapes and translate failures into *APIError.
type APIClient interface {
	// Get fetches a single entity into out.
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	// List fetches a collection into out (a pointer to a slice), resolving
	// the raw-array vs {content: [...]} envelope ambiguity at the boundary.
	// meta is nil when the endpoint returned a bare array.
	List(ctx context.Context, path string, query url.Values, out interface{}) (*PageMeta, error)
	Post(ctx context.Context, path string, in, out interface{}) error
	Put(ctx context.Context, path string, in, out interface{}) error
	Delete(ctx context.Context, path string) error
}

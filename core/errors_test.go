package core

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	netErr := NewAPIError(0, "request never reached the server", errors.New("dial tcp: refused"))
	assert.True(t, netErr.IsNetwork())
	assert.EqualError(t, netErr, "network error: request never reached the server")
	assert.Equal(t, 0, StatusCode(netErr))

	srvErr := NewAPIError(http.StatusNotFound, "student not found", nil)
	assert.False(t, srvErr.IsNetwork())
	assert.EqualError(t, srvErr, "backend returned 404: student not found")
	assert.Equal(t, http.StatusNotFound, StatusCode(srvErr))
	assert.True(t, IsNotFound(srvErr))
}

func TestStatusCodeThroughWrapping(t *testing.T) {
	err := errors.Wrap(NewAPIError(http.StatusForbidden, "nope", nil), "creating student")
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
	assert.True(t, IsForbidden(err))

	assert.Equal(t, 0, StatusCode(errors.New("not an api error")))
	assert.False(t, IsUnauthorized(errors.New("not an api error")))
}

func TestPermissionError(t *testing.T) {
	err := &PermissionError{Role: "PARENT", Op: "manage inventory"}
	assert.EqualError(t, err, "role PARENT is not allowed to manage inventory")

	anon := &PermissionError{Op: "manage students"}
	assert.EqualError(t, anon, "role anonymous is not allowed to manage students")
}

func TestPartialWriteError(t *testing.T) {
	cause := NewAPIError(http.StatusInternalServerError, "boom", nil)
	err := &PartialWriteError{Created: "medical-items", CreatedID: "mi-1", Err: cause}
	assert.EqualError(t, err,
		"partial write: medical-items/mi-1 created but follow-up call failed: backend returned 500: boom")
	assert.ErrorIs(t, err, cause)
}

package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerHas(t *testing.T) {
	c := NewChecker(nil)

	assert.True(t, c.Has("student", "insight:evaluate"))
	assert.True(t, c.Has("student", "snapshot:write"))
	assert.False(t, c.Has("student", "records:any-student"))

	// prefix wildcard
	assert.True(t, c.Has("advisor", "insight:history"))
	assert.True(t, c.Has("advisor", "snapshot:read"))
	assert.True(t, c.Has("advisor", "records:any-student"))

	// full wildcard
	assert.True(t, c.Has("admin", "anything:at-all"))

	assert.False(t, c.Has("unknown-role", "insight:read"))
}

func TestCheckerAny(t *testing.T) {
	c := NewChecker(nil)
	assert.True(t, c.Any("student", "records:any-student", "insight:read"))
	assert.False(t, c.Any("student", "records:any-student"))
}

func roleRequest(role string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	return req.WithContext(WithRole(req.Context(), role))
}

func TestRequireMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(204) })
	h := Require("insight:evaluate")(ok)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, roleRequest("student"))
	assert.Equal(t, 204, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, roleRequest(""))
	assert.Equal(t, 403, w.Code)

	w = httptest.NewRecorder()
	h = Require("records:any-student")(ok)
	h.ServeHTTP(w, roleRequest("student"))
	assert.Equal(t, 403, w.Code)
}

func TestRequireOwnerOr(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(204) })
	isOwner := func(r *http.Request) bool { return SubjectFromContext(r.Context()) == "alice" }
	h := RequireOwnerOr("records:any-student", isOwner)(ok)

	// owner passes regardless of role
	req := httptest.NewRequest("GET", "/", nil)
	ctx := WithSubject(WithRole(req.Context(), "student"), "alice")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(ctx))
	assert.Equal(t, 204, w.Code)

	// non-owner student is rejected
	ctx = WithSubject(WithRole(context.Background(), "student"), "mallory")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(ctx))
	assert.Equal(t, 403, w.Code)

	// non-owner advisor passes via permission
	ctx = WithSubject(WithRole(context.Background(), "advisor"), "mallory")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(ctx))
	assert.Equal(t, 204, w.Code)
}

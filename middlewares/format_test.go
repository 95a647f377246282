package middlewares

import (
	"CareLink/repositories"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respondWith(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	RespondDomainError(c, err)
	return recorder
}

func TestRespondDomainErrorDenialsAreIndistinguishable(t *testing.T) {
	unlinked := respondWith(t, repositories.ErrNotLinked)
	revoked := respondWith(t, repositories.ErrNotAuthorized)

	assert.Equal(t, http.StatusForbidden, unlinked.Code)
	assert.Equal(t, http.StatusForbidden, revoked.Code)
	assert.Equal(t, unlinked.Body.String(), revoked.Body.String(),
		"a denial must not reveal whether a link exists")
}

func TestRespondDomainErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid code", repositories.ErrInvalidCode, http.StatusNotFound},
		{"already linked", repositories.ErrAlreadyLinked, http.StatusConflict},
		{"duplicate email", repositories.ErrDuplicateEmail, http.StatusConflict},
		{"not found", repositories.ErrNotFound, http.StatusNotFound},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := respondWith(t, tc.err)
			assert.Equal(t, tc.status, recorder.Code)
		})
	}
}

func TestRespondDomainErrorWrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), repositories.ErrInvalidCode)
	recorder := respondWith(t, wrapped)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

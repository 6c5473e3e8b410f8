package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passgate/passgate/internal/testutil"
)

func TestRecoveryConvertsPanicToResponse(t *testing.T) {
	var handled any
	wrapped := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, r *http.Request, err any) {
		handled = err
		w.WriteHeader(http.StatusInternalServerError)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", handled)
}

func TestRecoveryPassesThroughNormally(t *testing.T) {
	wrapped := Recovery(testutil.NopLogger(), DefaultPanicHandler)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	got []recordedRequest
}

func (f *fakeObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	observer := &fakeObserver{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.HandleFunc("/cupos/{cupoId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cupos/42", nil))

	assert.Equal(t, []recordedRequest{{method: http.MethodGet, route: "/cupos/{cupoId}", status: http.StatusNotFound}}, observer.got)
}

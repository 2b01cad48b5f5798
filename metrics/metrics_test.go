package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/v1/posts/:slug", "200"))
	ObserveHTTP("GET", "/api/v1/posts/:slug", 200, 12*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/v1/posts/:slug", "200"))
	assert.Equal(t, before+1, after)

	before = testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404"))
	ObserveHTTP("GET", "", 404, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordEventPublish(t *testing.T) {
	ok := EventsPublished.WithLabelValues("post.created", ResultOK)
	failed := EventsPublished.WithLabelValues("post.created", ResultError)
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordEventPublish("post.created", nil)
	RecordEventPublish("post.created", errors.New("broker down"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordCacheLookup(ResultHit)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `naya_blog_cache_lookups_total{result="hit"}`)
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.StoreRead("k")
	m.StoreWrite("k")
	m.StoreParseFailure("k")
	m.HTTPRequest("GET", "/", "200", time.Millisecond)
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.StoreRead("ad_management_clients")
	m.StoreRead("ad_management_clients")
	m.StoreWrite("ad_management_clients")
	m.StoreParseFailure("ad_management_ads")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.storeReads.WithLabelValues("ad_management_clients")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeWrites.WithLabelValues("ad_management_clients")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeParseFailures.WithLabelValues("ad_management_ads")))
}

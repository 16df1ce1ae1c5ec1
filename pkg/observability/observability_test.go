package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ------------------------------------------------------------------
// Counter tests
// ------------------------------------------------------------------

func TestCounter(t *testing.T) {
	r := NewMetricsRegistry()
	c := r.GetCounter("test_counter", "A test counter")

	if c.Value() != 0 {
		t.Errorf("expected initial value 0, got %d", c.Value())
	}

	c.Inc()
	if c.Value() != 1 {
		t.Errorf("expected 1, got %d", c.Value())
	}

	c.Add(5)
	if c.Value() != 6 {
		t.Errorf("expected 6, got %d", c.Value())
	}
}

func TestCounter_GetExisting(t *testing.T) {
	r := NewMetricsRegistry()
	c1 := r.GetCounter("test", "desc")
	c1.Inc()
	c2 := r.GetCounter("test", "desc")

	if c1 != c2 {
		t.Fatal("expected same counter instance")
	}
	if c2.Value() != 1 {
		t.Errorf("expected 1, got %d", c2.Value())
	}
}

// ------------------------------------------------------------------
// Gauge tests
// ------------------------------------------------------------------

func TestGauge(t *testing.T) {
	r := NewMetricsRegistry()
	g := r.GetGauge("test_gauge", "A test gauge")

	if g.Value() != 0 {
		t.Errorf("expected initial value 0, got %d", g.Value())
	}

	g.Set(42)
	if g.Value() != 42 {
		t.Errorf("expected 42, got %d", g.Value())
	}

	g.Inc()
	if g.Value() != 43 {
		t.Errorf("expected 43, got %d", g.Value())
	}

	g.Dec()
	if g.Value() != 42 {
		t.Errorf("expected 42, got %d", g.Value())
	}
}

func TestGauge_GetExisting(t *testing.T) {
	r := NewMetricsRegistry()
	g1 := r.GetGauge("test", "desc")
	g1.Set(10)
	g2 := r.GetGauge("test", "desc")

	if g1 != g2 {
		t.Fatal("expected same gauge instance")
	}
	if g2.Value() != 10 {
		t.Errorf("expected 10, got %d", g2.Value())
	}
}

// ------------------------------------------------------------------
// Histogram tests
// ------------------------------------------------------------------

func TestHistogram(t *testing.T) {
	r := NewMetricsRegistry()
	h := r.GetHistogram("test_hist", "A test histogram", []float64{1, 5, 10, 50})

	h.Observe(0.5)  // bucket <= 1
	h.Observe(3.0)  // bucket <= 5
	h.Observe(7.5)  // bucket <= 10
	h.Observe(25.0) // bucket <= 50
	h.Observe(100)  // +Inf bucket

	if h.count != 5 {
		t.Errorf("expected count 5, got %d", h.count)
	}

	expectedSum := 0.5 + 3.0 + 7.5 + 25.0 + 100.0
	if h.sum != expectedSum {
		t.Errorf("expected sum %f, got %f", expectedSum, h.sum)
	}
}

func TestHistogram_GetExisting(t *testing.T) {
	r := NewMetricsRegistry()
	h1 := r.GetHistogram("test", "desc", []float64{1, 5, 10})
	h1.Observe(2.0)
	h2 := r.GetHistogram("test", "desc", []float64{1, 5, 10})

	if h1 != h2 {
		t.Fatal("expected same histogram instance")
	}
	if h2.count != 1 {
		t.Errorf("expected count 1, got %d", h2.count)
	}
}

func TestHistogram_BucketsSorted(t *testing.T) {
	r := NewMetricsRegistry()
	h := r.GetHistogram("sorted", "desc", []float64{10, 1, 5})

	if h.buckets[0] != 1 || h.buckets[1] != 5 || h.buckets[2] != 10 {
		t.Errorf("buckets not sorted: %v", h.buckets)
	}
}

// ------------------------------------------------------------------
// MetricsRegistry tests
// ------------------------------------------------------------------

func TestMetricsRegistry_ConcurrentAccess(t *testing.T) {
	r := NewMetricsRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := r.GetCounter("concurrent_counter", "test")
			c.Inc()
			g := r.GetGauge("concurrent_gauge", "test")
			g.Inc()
			h := r.GetHistogram("concurrent_hist", "test", []float64{1, 5, 10})
			h.Observe(float64(i))
		}(i)
	}
	wg.Wait()

	c := r.GetCounter("concurrent_counter", "test")
	if c.Value() != 100 {
		t.Errorf("expected counter 100, got %d", c.Value())
	}

	g := r.GetGauge("concurrent_gauge", "test")
	if g.Value() != 100 {
		t.Errorf("expected gauge 100, got %d", g.Value())
	}
}

// ------------------------------------------------------------------
// NovaMetrics tests
// ------------------------------------------------------------------

func TestNewNovaMetrics(t *testing.T) {
	m := NewNovaMetrics()
	if m == nil {
		t.Fatal("expected non-nil metrics")
	}
	if m.Registry == nil {
		t.Fatal("expected non-nil registry")
	}

	counters := []struct {
		name   string
		metric *Counter
	}{
		{"SearchQueries", m.SearchQueries},
		{"ExtensionExecs", m.ExtensionExecs},
		{"ExtensionExecErrors", m.ExtensionExecErrors},
		{"BackgroundTicks", m.BackgroundTicks},
		{"BackgroundTickErrors", m.BackgroundTickErrors},
		{"BackgroundCircuitTrips", m.BackgroundCircuitTrips},
		{"ClipboardPolls", m.ClipboardPolls},
	}
	for _, c := range counters {
		if c.metric == nil {
			t.Errorf("%s is nil", c.name)
		}
	}

	if m.SearchLatency == nil {
		t.Error("SearchLatency is nil")
	}
	if m.ExtensionExecLatency == nil {
		t.Error("ExtensionExecLatency is nil")
	}
}

func TestNovaMetrics_Usage(t *testing.T) {
	m := NewNovaMetrics()

	m.SearchQueries.Inc()
	m.ExtensionExecs.Add(3)
	m.BackgroundCircuitTrips.Inc()
	m.SearchLatency.Observe(0.01)

	if m.SearchQueries.Value() != 1 {
		t.Errorf("expected 1, got %d", m.SearchQueries.Value())
	}
	if m.ExtensionExecs.Value() != 3 {
		t.Errorf("expected 3, got %d", m.ExtensionExecs.Value())
	}
	if m.BackgroundCircuitTrips.Value() != 1 {
		t.Errorf("expected 1, got %d", m.BackgroundCircuitTrips.Value())
	}
}

// ------------------------------------------------------------------
// MetricsHandler tests
// ------------------------------------------------------------------

func TestMetricsHandler(t *testing.T) {
	r := NewMetricsRegistry()
	c := r.GetCounter("test_requests_total", "Total requests")
	c.Add(42)
	g := r.GetGauge("test_active", "Active connections")
	g.Set(5)
	h := r.GetHistogram("test_latency_seconds", "Request latency", []float64{0.1, 0.5, 1.0})
	h.Observe(0.3)
	h.Observe(0.8)

	handler := MetricsHandler(r)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body := w.Body.String()
	if !strings.Contains(body, "test_requests_total 42") {
		t.Error("expected counter in output")
	}
	if !strings.Contains(body, "test_active 5") {
		t.Error("expected gauge in output")
	}
	if !strings.Contains(body, "test_latency_seconds_count 2") {
		t.Error("expected histogram count in output")
	}
	if !strings.Contains(body, "# TYPE test_requests_total counter") {
		t.Error("expected counter TYPE annotation")
	}
	if !strings.Contains(body, "# TYPE test_active gauge") {
		t.Error("expected gauge TYPE annotation")
	}
	if !strings.Contains(body, "# TYPE test_latency_seconds histogram") {
		t.Error("expected histogram TYPE annotation")
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain content type, got %s", ct)
	}
}

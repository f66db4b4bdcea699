package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewRecorderReusesNamedCounters(t *testing.T) {
	r1 := NewRecorder()
	r1.NodeVisited()
	r1.NodeVisited()
	r1.NodePruned()
	r1.DashTaken()
	r1.HitEmitted()

	// A second Recorder resolves the same package-level counters by name,
	// so its reading reflects r1's increments too.
	r2 := NewRecorder()
	require.Equal(t, float64(2), testutil.ToFloat64(Counter("nodes_visited_total")))
	require.Equal(t, float64(1), testutil.ToFloat64(Counter("nodes_pruned_total")))

	r2.NodeVisited()
	require.Equal(t, float64(3), testutil.ToFloat64(Counter("nodes_visited_total")))
}

func TestHTTPHandlerServesRegisteredCounters(t *testing.T) {
	NewRecorder().DashTaken()
	require.NotNil(t, HTTPHandler())
}

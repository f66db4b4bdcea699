package metrics

// Recorder adapts the package's named counters onto the shape
// barctrie.Trie.Metrics expects, without this package importing barctrie
// (metrics stays a leaf dependency of the core, not the other way
// around).
type Recorder struct {
	visited prometheusCounter
	pruned  prometheusCounter
	dashed  prometheusCounter
	hits    prometheusCounter
}

type prometheusCounter interface {
	Inc()
}

// NewRecorder registers (or reuses) the four counters a Trie's search
// traversal reports to and returns a Recorder ready to satisfy
// barctrie.Metrics.
func NewRecorder() *Recorder {
	return &Recorder{
		visited: Counter("nodes_visited_total"),
		pruned:  Counter("nodes_pruned_total"),
		dashed:  Counter("dash_total"),
		hits:    Counter("hits_total"),
	}
}

func (r *Recorder) NodeVisited() { r.visited.Inc() }
func (r *Recorder) NodePruned()  { r.pruned.Inc() }
func (r *Recorder) DashTaken()   { r.dashed.Inc() }
func (r *Recorder) HitEmitted()  { r.hits.Inc() }

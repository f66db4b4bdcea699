package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/basecall/barctrie"
	"github.com/basecall/barctrie/cache"
	"github.com/basecall/barctrie/internal/metrics"
)

func serveCommand() cli.Command {
	return cli.Command{
		Name:  "serve",
		Usage: "serve bounded-distance ACGTN barcode lookups over HTTP",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "addr", Usage: "listen address, e.g. :3000"},
			cli.IntFlag{Name: "cache-size", Usage: "query-result LRU cache size"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := mergedConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("addr") {
				cfg.Addr = c.String("addr")
			}
			if c.IsSet("cache-size") {
				cfg.CacheSize = c.Int("cache-size")
			}
			t, n, err := buildTrie(cfg)
			if err != nil {
				return err
			}
			t.Metrics = metrics.NewRecorder()
			logger.Printf("indexed %d barcodes (tau=%d, bottom=%d)", n, cfg.Tau, t.Bottom())

			h := &searchHandler{
				t:     t,
				tau:   cfg.Tau,
				rc:    cache.NewResultCache(cfg.CacheSize),
			}
			mux := http.NewServeMux()
			mux.Handle("/search", h)
			mux.Handle("/metrics", metrics.HTTPHandler())
			logger.Printf("serving on http://0.0.0.0%v", cfg.Addr)
			return errors.Wrap(http.ListenAndServe(cfg.Addr, mux), "serve")
		},
	}
}

// searchHandler answers /search?q=... over a single shared Trie. Search
// is not safe for concurrent use against one Trie, so concurrent requests
// serialize on mu; the ResultCache in front absorbs repeated identical
// queries without ever touching the trie.
type searchHandler struct {
	t   *barctrie.Trie
	tau int
	rc  *cache.ResultCache
	mu  sync.Mutex
}

func (h *searchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := []string{}
	if query != "" {
		tau := h.tau
		if raw := r.URL.Query().Get("tau"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				tau = v
			}
		}
		start := time.Now()
		hits, err := h.lockedSearch(r.Context(), query, tau)
		elapsed := time.Since(start)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, n := range hits {
			results = append(results, fmt.Sprint(n.Data))
		}
		logger.Printf("query %q tau=%d returned %d results in %v", query, tau, len(results), elapsed)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func (h *searchHandler) lockedSearch(ctx context.Context, query string, tau int) ([]*barctrie.Node, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rc.GetOrSearch(ctx, h.t, cache.Key{Query: query, Tau: tau, Start: 0, Trail: 0})
}

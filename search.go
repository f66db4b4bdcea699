package barctrie

import "context"

// Search appends to hits every node at depth t.Bottom() whose spelled
// string is within Levenshtein distance tau of query, then returns hits.
// If hits is nil, a fresh NodeArray is allocated.
//
// start and trail implement the prefix-reuse protocol: start is the depth
// at which this query diverges from whichever previous query populated
// t's miles frontier cache (or 0, to search from the root), and trail is
// the depth below which frontiers are recorded into miles for a future
// call to resume from. Callers that have no previous query to reuse
// should pass start=0, trail=0.
//
// ctx is checked for cancellation once per recursion frame at depths
// shallow enough to matter (d <= trail+1); a cancelled context stops the
// traversal early and Search returns ctx.Err() alongside whatever hits
// were already collected.
func Search(ctx context.Context, t *Trie, query string, tau int, hits *NodeArray, start, trail int) (*NodeArray, error) {
	if tau < 0 || tau > t.maxtau {
		return hits, ErrTauTooLarge
	}
	if len(query) > MaxBarcodeLen {
		return hits, ErrQueryTooLong
	}
	if start < 0 || trail < start || trail >= len(query) {
		return hits, ErrInvalidRange
	}
	if hits == nil {
		hits = NewNodeArray()
	}

	frontier := t.miles[start]
	if frontier == nil {
		return hits, ErrInvalidRange
	}

	translated := translateQuery(query, t.bottom, start, t.maxtau)

	for d := start + 1; d <= trail; d++ {
		if t.miles[d] == nil {
			t.miles[d] = NewNodeArray()
		} else {
			t.miles[d].Reset()
		}
	}

	st := &searchState{
		t:       t,
		query:   translated,
		tau:     tau,
		trail:   trail,
		hits:    hits,
		ctx:     ctx,
		center:  t.maxtau + 1,
		infimum: uint16(tau + 1),
	}
	for i := 0; i < frontier.Len(); i++ {
		st.recurse(frontier.At(i), start+1)
		if st.cancelled {
			break
		}
	}
	if st.cancelled {
		return hits, ctx.Err()
	}
	return hits, nil
}

// translateQuery builds the integer buffer recursive search reads symbols
// from: translated[0] holds len(query), translated[len(query)+1] onward
// is padded with the EOS sentinel up through depth bottom (queries
// shorter than bottom can still reach bottom via indels, in which case
// the missing tail positions always mismatch, same as comparing against
// a blank). Translation starts at max(0, start-tauMax): earlier positions
// can never influence the DP band for any depth this call visits.
func translateQuery(query string, bottom, start, tauMax int) []int16 {
	size := len(query)
	if bottom > size {
		size = bottom
	}
	buf := make([]int16, size+2)
	buf[0] = int16(len(query))
	from := start - tauMax
	if from < 0 {
		from = 0
	}
	for i := from; i < len(query); i++ {
		buf[i+1] = altranslate[query[i]]
	}
	for i := len(query) + 1; i < len(buf); i++ {
		buf[i] = int16(symEOS)
	}
	return buf
}

// searchState carries the state a single Search call threads through its
// recursion: the translated query, tau, the trail boundary, the hit
// collector, and cancellation plumbing. Kept off the Trie itself so
// concurrent searches against different Tries never interfere.
type searchState struct {
	t       *Trie
	query   []int16
	tau     int
	trail   int
	hits    *NodeArray
	ctx     context.Context

	center  int
	infimum uint16

	cancelled bool
}

// recurse computes, for every existing child of parent, the child's new
// DP band at depth d, applies the pruning rules, and either records the
// child into the miles frontier, dashes to an exact-completion hit,
// emits a hit at bottom depth, or recurses to d+1.
func (s *searchState) recurse(parent *Node, d int) {
	if s.cancelled {
		return
	}
	if s.ctx != nil && d <= s.trail+1 {
		select {
		case <-s.ctx.Done():
			s.cancelled = true
			return
		default:
		}
	}

	tc := s.center
	maxa := d - 1
	if s.tau < maxa {
		maxa = s.tau
	}
	pcache := parent.cache
	query := s.query

	common := make([]uint16, maxa+1)
	for a := maxa; a >= 1; a-- {
		mismatch := uint16(0)
		if int16(parent.pathSymbol(a)) != query[d] {
			mismatch = 1
		}
		rmatch := pcache[tc+a] + mismatch
		ahead := s.infimum
		if a+1 <= maxa {
			ahead = common[a+1]
		}
		rshift := min16(pcache[tc+a-1], ahead) + 1
		common[a] = min16(rmatch, rshift)
	}

	metrics := s.t.Metrics

	for sym := Symbol(0); sym <= symN; sym++ {
		child := parent.child(sym)
		if child == nil {
			continue
		}
		if s.cancelled {
			return
		}
		if metrics != nil {
			metrics.NodeVisited()
		}

		ccache := child.cache
		for a := 1; a <= maxa; a++ {
			ccache[tc+a] = common[a]
		}
		for a := maxa; a >= 1; a-- {
			mismatch := uint16(0)
			if int16(sym) != query[d-a] {
				mismatch = 1
			}
			lmatch := pcache[tc-a] + mismatch
			ahead := s.infimum
			if a+1 <= maxa {
				ahead = ccache[tc-(a+1)]
			}
			lshift := min16(pcache[tc+1-a], ahead) + 1
			ccache[tc-a] = min16(lmatch, lshift)
		}
		{
			mismatch := uint16(0)
			if int16(sym) != query[d] {
				mismatch = 1
			}
			cmatch := pcache[tc] + mismatch
			left, right := s.infimum, s.infimum
			if maxa >= 1 {
				left, right = ccache[tc-1], ccache[tc+1]
			}
			cshift := min16(left, right) + 1
			ccache[tc] = min16(cmatch, cshift)
		}

		mindist := ccache[tc]
		for a := 1; a <= maxa; a++ {
			mindist = min16(mindist, ccache[tc-a])
			mindist = min16(mindist, ccache[tc+a])
		}

		if mindist > uint16(s.tau) {
			if metrics != nil {
				metrics.NodePruned()
			}
			continue
		}
		if d <= s.trail {
			s.t.miles[d].Push(child, &s.t.errs)
		}
		if mindist == uint16(s.tau) && d > s.trail {
			if metrics != nil {
				metrics.DashTaken()
			}
			if landed := dash(child, query, d); landed != nil {
				s.hits.Push(landed, &s.t.errs)
				if metrics != nil {
					metrics.HitEmitted()
				}
			}
			continue
		}
		if d == s.t.bottom {
			if ccache[tc] <= uint16(s.tau) {
				s.hits.Push(child, &s.t.errs)
				if metrics != nil {
					metrics.HitEmitted()
				}
			}
			continue
		}
		s.recurse(child, d+1)
	}
}

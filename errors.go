package barctrie

import (
	"sync"

	"github.com/pkg/errors"
)

// Sentinel errors. Wrapped errors returned from this package can be
// compared against these with errors.Is.
var (
	ErrTauTooLarge   = errors.New("barctrie: tau exceeds trie's maxtau")
	ErrQueryTooLong  = errors.New("barctrie: query longer than MaxBarcodeLen")
	ErrTooLong       = errors.New("barctrie: string longer than MaxBarcodeLen")
	ErrBadSymbol     = errors.New("barctrie: character outside the ACGTN alphabet")
	ErrEmptyString   = errors.New("barctrie: cannot insert the empty string")
	ErrOutOfMemory   = errors.New("barctrie: allocation failed")
	ErrInvalidRange  = errors.New("barctrie: start/trail/query length out of contract")
	errNoParent      = errors.New("barctrie: insert called with a nil parent")
)

// errorChannel is a single-slot last-error indicator, scoped to one Trie
// rather than shared process-wide, so concurrent Tries never clobber each
// other's pending error.
type errorChannel struct {
	mu  sync.Mutex
	err error
}

func (c *errorChannel) set(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// checkAndReset returns the pending error, if any, and clears it.
func (c *errorChannel) checkAndReset() error {
	c.mu.Lock()
	err := c.err
	c.err = nil
	c.mu.Unlock()
	return err
}

// CheckTrieErrorAndReset returns t's pending error, if any, clearing it.
// It returns nil when no error is pending.
func CheckTrieErrorAndReset(t *Trie) error {
	return t.errs.checkAndReset()
}

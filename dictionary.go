package barctrie

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// LoadDictionary bulk-inserts newline-delimited barcodes read from r into
// t, skipping blank lines and uppercasing input before insertion. It
// returns the number of barcodes inserted and the first error
// encountered, wrapped with the offending line's content for context.
func LoadDictionary(t *Trie, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxBarcodeLen+2)
	count := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		barcode := strings.ToUpper(line)
		node, err := InsertString(t, barcode)
		if err != nil {
			return count, errors.Wrapf(err, "line %d: %q", lineNo, line)
		}
		if node.Data == nil {
			node.Data = barcode
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "reading dictionary")
	}
	return count, nil
}

// LoadDictionaryCounts is like LoadDictionary but treats repeated
// barcodes as read-count observations: each occurrence of a barcode
// increments an int counter stored in its terminal node's Data, rather
// than overwriting it. Grounded on the same typeahead-style loader, but
// shaped for the clustering pipeline's actual input: a multiset of noisy
// reads, not a dictionary of unique words.
func LoadDictionaryCounts(t *Trie, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxBarcodeLen+2)
	total := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		barcode := strings.ToUpper(line)
		node, err := InsertString(t, barcode)
		if err != nil {
			return total, errors.Wrapf(err, "line %d: %q", lineNo, line)
		}
		if node.Data == nil {
			node.Data = 0
		}
		count, ok := node.Data.(int)
		if !ok {
			return total, errors.Errorf("line %d: %q: terminal node payload is not a count", lineNo, line)
		}
		node.Data = count + 1
		total++
	}
	if err := scanner.Err(); err != nil {
		return total, errors.Wrap(err, "reading dictionary")
	}
	return total, nil
}


package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// sniffBarcodeLength returns the length of the first non-blank line of
// path, used to default the trie's bottom depth when the caller doesn't
// configure one explicitly.
func sniffBarcodeLength(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open dictionary %v", path)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return len(line), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "reading dictionary")
	}
	return 0, errors.Errorf("%v: no barcodes found to sniff a length from", path)
}

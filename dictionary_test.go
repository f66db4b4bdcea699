package barctrie

import (
	"strings"
	"testing"
)

func TestLoadDictionarySkipsBlankLinesAndUppercases(t *testing.T) {
	tr := mustNewTrie(t, 1, 4)
	n, err := LoadDictionary(tr, strings.NewReader("acgt\n\nACGA\n  \nacct\n"))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if n != 3 {
		t.Fatalf("got %d barcodes loaded, want 3", n)
	}
	hits, err := Search(nil, tr, "ACGT", 0, nil, 0, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if hits.Len() != 1 || hits.At(0).Data.(string) != "ACGT" {
		t.Fatalf("lowercase input was not uppercased before insertion")
	}
}

func TestLoadDictionaryWrapsLineNumberOnError(t *testing.T) {
	tr := mustNewTrie(t, 1, 4)
	_, err := LoadDictionary(tr, strings.NewReader("ACGT\nACGX\nACCT\n"))
	if err == nil {
		t.Fatal("expected an error for the malformed second line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err.Error())
	}
}

func TestLoadDictionaryCountsAccumulatesRepeats(t *testing.T) {
	tr := mustNewTrie(t, 1, 4)
	n, err := LoadDictionaryCounts(tr, strings.NewReader("ACGT\nACGT\nACGA\nACGT\n"))
	if err != nil {
		t.Fatalf("LoadDictionaryCounts: %v", err)
	}
	if n != 4 {
		t.Fatalf("got %d total reads, want 4", n)
	}
	hits, err := Search(nil, tr, "ACGT", 0, nil, 0, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if hits.Len() != 1 {
		t.Fatalf("got %d hits, want 1", hits.Len())
	}
	if got := hits.At(0).Data.(int); got != 3 {
		t.Errorf("got count %d, want 3", got)
	}
}

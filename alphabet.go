package barctrie

// Symbol is an internal alphabet id in {A, C, G, T, N}.
type Symbol uint8

const (
	symA Symbol = iota
	symC
	symG
	symT
	symN
	// symEOS marks the end of a translated query buffer. It is never a
	// valid edge symbol and never appears in a packed path.
	symEOS
)

const numSymbols = int(symN) + 1 // A, C, G, T, N -- slot symEOS is not a child slot

// translate maps an insertion-time character to its internal symbol. Any
// byte outside {A,C,G,T,N} (case-insensitive) is rejected with ErrBadSymbol.
var translate [256]int16

// altranslate maps a search-time character the same way translate does,
// except that characters which are not valid symbols -- and the character
// 'N' itself -- are folded to a sentinel that can never equal symN. This
// asymmetry means "N" in the dictionary is never a free match for "N" (or
// anything else) in a query: altranslate deliberately routes query-side N
// away from symN so the DP mismatch test always counts it as a mismatch
// against a dictionary N.
var altranslate [256]int16

const invalidSymbol int16 = -1

// altranslate folds unknown/ambiguous query characters to this value,
// chosen so that it never equals symN and therefore never spuriously
// matches a wildcard edge in the trie.
const searchWildcard int16 = int16(symEOS) + 1

func init() {
	for i := range translate {
		translate[i] = invalidSymbol
		altranslate[i] = searchWildcard
	}
	set := func(upper, lower byte, s Symbol) {
		translate[upper] = int16(s)
		translate[lower] = int16(s)
		if s == symN {
			// altranslate never maps onto symN: see searchWildcard above.
			return
		}
		altranslate[upper] = int16(s)
		altranslate[lower] = int16(s)
	}
	set('A', 'a', symA)
	set('C', 'c', symC)
	set('G', 'g', symG)
	set('T', 't', symT)
	set('N', 'n', symN)
}

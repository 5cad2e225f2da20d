package serverutils

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ListToSet returns the distinct elements of list. A nil or empty list gives
// an empty, non-nil set.
func ListToSet[T comparable](list []T) map[T]struct{} {
	set := make(map[T]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

// SetToList returns the members of set in no particular order. A nil set
// gives an empty, non-nil slice.
func SetToList[T comparable](set map[T]struct{}) []T {
	list := make([]T, 0, len(set))
	for v := range set {
		list = append(list, v)
	}
	return list
}

// DistinctBy keeps the first element for each key, preserving order. It gives
// set semantics to values that are not comparable themselves.
func DistinctBy[T any, K comparable](list []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(list))
	out := make([]T, 0, len(list))
	for _, v := range list {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ContainsIgnoreCase reports whether needle is a substring of haystack,
// ignoring case and diacritics ("Téléphone" contains "telephone"). An empty
// argument never matches.
func ContainsIgnoreCase(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(fold(haystack), fold(needle))
}

// A chained transformer keeps state between calls, so each goroutine borrows
// its own from the pool. transform.String resets it before use.
var accentStrippers = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

func fold(s string) string {
	t := accentStrippers.Get().(transform.Transformer)
	defer accentStrippers.Put(t)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

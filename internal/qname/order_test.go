package qname

import (
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	left := URIQualified("urn:a", "b")
	right := URIQualified("urn:b", "a")
	if got := Compare(left, right); got >= 0 {
		t.Fatalf("Compare() = %d, want < 0", got)
	}

	left = URIQualified("urn:a", "b")
	right = URIQualified("urn:a", "c")
	if got := Compare(left, right); got >= 0 {
		t.Fatalf("Compare() = %d, want < 0", got)
	}
}

func TestSortedMapKeys(t *testing.T) {
	in := map[QName]int{
		URIQualified("urn:b", "x"): 1,
		URIQualified("urn:a", "z"): 1,
		URIQualified("urn:a", "a"): 1,
	}
	got := SortedMapKeys(in)
	want := []QName{
		URIQualified("urn:a", "a"),
		URIQualified("urn:a", "z"),
		URIQualified("urn:b", "x"),
	}
	if !slices.Equal(got, want) {
		t.Fatalf("SortedMapKeys() = %v, want %v", got, want)
	}
}

func TestSortAndDedupe(t *testing.T) {
	in := []QName{
		URIQualified("urn:b", "x"),
		URIQualified("urn:a", "a"),
		URIQualified("urn:b", "x"),
		URIQualified("urn:a", "z"),
	}
	got := SortAndDedupe(in)
	want := []QName{
		URIQualified("urn:a", "a"),
		URIQualified("urn:a", "z"),
		URIQualified("urn:b", "x"),
	}
	if !slices.Equal(got, want) {
		t.Fatalf("SortAndDedupe() = %v, want %v", got, want)
	}
}

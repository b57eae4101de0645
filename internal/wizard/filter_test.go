package wizard

import (
	"reflect"
	"testing"
)

func TestFilterOptionsEmptyQueryReturnsAll(t *testing.T) {
	options := []string{"Cox Hall", "Dabney Hall", "SAS Hall"}
	if got := filterOptions(options, ""); !reflect.DeepEqual(got, options) {
		t.Fatalf("got %v, want %v", got, options)
	}
	if got := filterOptions(options, "   "); !reflect.DeepEqual(got, options) {
		t.Fatalf("whitespace query: got %v, want %v", got, options)
	}
}

func TestFilterOptionsSubstringRanksAboveScattered(t *testing.T) {
	options := []string{"Language and Computer Laboratories", "Dabney Hall"}
	got := filterOptions(options, "lab")
	if len(got) == 0 || got[0] != "Language and Computer Laboratories" {
		t.Fatalf("got %v, want contiguous 'lab' match first", got)
	}
}

func TestFilterOptionsDropsNonMatches(t *testing.T) {
	options := []string{"Cox Hall", "Dabney Hall", "SAS Hall"}
	got := filterOptions(options, "cox")
	if !reflect.DeepEqual(got, []string{"Cox Hall"}) {
		t.Fatalf("got %v, want only Cox Hall", got)
	}
	if got := filterOptions(options, "zzz"); len(got) != 0 {
		t.Fatalf("got %v, want no matches", got)
	}
}

func TestFilterOptionsEditDistanceBreaksTies(t *testing.T) {
	// Both score identically on the subsequence match; the shorter label is
	// the closer edit to the query and must rank first.
	options := []string{"Gardner Hall", "Page Hall"}
	got := filterOptions(options, "hall")
	if len(got) != 2 || got[0] != "Page Hall" {
		t.Fatalf("got %v, want Page Hall ranked first", got)
	}
}

func TestFilterOptionsPrefixBoost(t *testing.T) {
	options := []string{"Dabney Hall", "SAS Hall"}
	got := filterOptions(options, "da")
	if len(got) == 0 || got[0] != "Dabney Hall" {
		t.Fatalf("got %v, want prefix match first", got)
	}
}

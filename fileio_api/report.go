package fileio_api

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var warning = color.New(color.FgYellow)

// One entry of a tally, e.g. an unmatched chromosome and how often it was seen
type TallyEntry struct {
	Key   string
	Count int
}

// Return the noun in its singular or plural form depending on the count
func Noun(count int, noun string) string {
	if count == 1 {
		return noun
	}
	return inflector.Pluralize(noun)
}

// Write a count line like "12 records written"
func WriteCount(w io.Writer, count int, noun string, verb string) {
	fmt.Fprintf(w, "%d %s %s\n", count, Noun(count, noun), verb)
}

// Sort a tally by count (highest first) and then by key
func SortTally(tally map[string]int) []TallyEntry {
	entries := make([]TallyEntry, 0, len(tally))
	for key, count := range tally {
		entries = append(entries, TallyEntry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Write a titled tally, nothing is written for an empty tally
func WriteTally(w io.Writer, title string, tally map[string]int) {
	if len(tally) == 0 {
		return
	}
	warning.Fprintf(w, "%s:\n", cases.Title(language.English).String(title))
	for _, entry := range SortTally(tally) {
		fmt.Fprintf(w, "\t%s\t%d\n", entry.Key, entry.Count)
	}
}

package chromsync_api

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v2"
)

//go:embed synonyms.yaml
var embeddedSynonyms []byte

// A read-only mapping of alternate chromosome names to their canonical name
type SynonymTable struct {
	synonyms   map[string]string
	canonicals map[string]struct{}
}

// Build a synonym table from a list of entries
// An alternate name listed for two different canonical names is an error
func NewSynonymTable(entries []SynonymEntry) (*SynonymTable, error) {
	table := &SynonymTable{
		synonyms:   map[string]string{},
		canonicals: map[string]struct{}{},
	}
	if err := table.add(entries); err != nil {
		return nil, err
	}
	return table, nil
}

func (table *SynonymTable) add(entries []SynonymEntry) error {
	for _, entry := range entries {
		if entry.Canonical == "" {
			return fmt.Errorf("synonym entry with alternates %v has no canonical name", entry.Alternates)
		}
		table.canonicals[entry.Canonical] = struct{}{}
		for _, alternate := range entry.Alternates {
			if existing, ok := table.synonyms[alternate]; ok && existing != entry.Canonical {
				return fmt.Errorf("'%s' is listed as a synonym of both '%s' and '%s'", alternate, existing, entry.Canonical)
			}
			table.synonyms[alternate] = entry.Canonical
		}
	}
	return nil
}

// Parse a YAML synonym document
func ParseSynonyms(data []byte) ([]SynonymEntry, error) {
	var file SynonymFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, err
	}
	return file.Synonyms, nil
}

// Build the synonym table from the embedded data
// Panics when the embedded data is invalid
func DefaultSynonymTable() *SynonymTable {
	entries, err := ParseSynonyms(embeddedSynonyms)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded synonym data: %v", err))
	}
	table, err := NewSynonymTable(entries)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded synonym data: %v", err))
	}
	return table
}

// Look up the canonical name of an alternate name
func (table *SynonymTable) Lookup(alternate string) (string, bool) {
	canonical, ok := table.synonyms[alternate]
	return canonical, ok
}

// The amount of alternate names in the table
func (table *SynonymTable) Len() int {
	return len(table.synonyms)
}

func (table *SynonymTable) clone() *SynonymTable {
	cloned := &SynonymTable{
		synonyms:   make(map[string]string, len(table.synonyms)),
		canonicals: make(map[string]struct{}, len(table.canonicals)),
	}
	for alternate, canonical := range table.synonyms {
		cloned.synonyms[alternate] = canonical
	}
	for canonical := range table.canonicals {
		cloned.canonicals[canonical] = struct{}{}
	}
	return cloned
}

// Return a new table extended with extra entries
func (table *SynonymTable) Merge(entries []SynonymEntry) (*SynonymTable, error) {
	merged := table.clone()
	if err := merged.add(entries); err != nil {
		return nil, err
	}
	return merged, nil
}

// Return a new table in which every canonical name also maps to itself,
// so records that already use canonical names are kept
func (table *SynonymTable) WithCanonical() *SynonymTable {
	extended := table.clone()
	for canonical := range extended.canonicals {
		if _, ok := extended.synonyms[canonical]; !ok {
			extended.synonyms[canonical] = canonical
		}
	}
	return extended
}

// List all pairs in the table, sorted by canonical and then alternate name
func (table *SynonymTable) Entries() []SynonymPair {
	pairs := make([]SynonymPair, 0, len(table.synonyms))
	for alternate, canonical := range table.synonyms {
		pairs = append(pairs, SynonymPair{Canonical: canonical, Alternate: alternate})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Canonical != pairs[j].Canonical {
			return pairs[i].Canonical < pairs[j].Canonical
		}
		return pairs[i].Alternate < pairs[j].Alternate
	})
	return pairs
}

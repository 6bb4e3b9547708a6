package chromsync_api

import "strings"

// The file formats of which the chromosome names can be rewritten
type Format int

const (
	FormatUnknown Format = iota
	FormatBed
	FormatGff
	FormatGtf
	FormatVcf
	FormatRefFlat
	FormatTsv
)

// A capability interface for records that expose their fields by position
type Record interface {
	// Get the value of the field at the 0-based index
	// The boolean is false when the record doesn't have that many fields
	Get(index int) (string, bool)

	// Set the value of the field at the 0-based index
	Set(index int, value string)
}

// A tab separated data line
type Row []string

// Split a line in its tab separated fields
func ParseRow(line string) Row {
	return Row(strings.Split(line, "\t"))
}

func (row Row) Get(index int) (string, bool) {
	if index < 0 || index >= len(row) {
		return "", false
	}
	return row[index], true
}

func (row Row) Set(index int, value string) {
	row[index] = value
}

// Convert the row back to a tab separated line
func (row Row) String() string {
	return strings.Join(row, "\t")
}

//
// Synonym structs
//

// The struct representing a synonym file
// The synonym file is a YAML file
type SynonymFile struct {
	// All synonym entries in the file
	Synonyms []SynonymEntry
}

// A struct representing one sequence and all its names
type SynonymEntry struct {
	// The canonical (Ensembl) name of the sequence
	Canonical string

	// The names other conventions use for this sequence
	Alternates []string
}

// A pair of names as listed by SynonymTable.Entries
type SynonymPair struct {
	Canonical string
	Alternate string
}

//
// Run structs
//

// The outcome of a rewrite run
type Summary struct {
	// The amount of data records read
	Records int

	// The amount of data records written to the output
	Written int

	// The amount of data records dropped because of an unknown chromosome
	Dropped int

	// The amount of data records without a chromosome field
	Malformed int

	// The amount of header and comment lines
	Comments int

	// The amount of header and comment lines in which a chromosome was replaced
	CommentsRewritten int

	// The amount of lines in an embedded FASTA section
	SequenceLines int

	// How often each unknown chromosome was seen
	Unmatched map[string]int
}

func newSummary() *Summary {
	return &Summary{
		Unmatched: map[string]int{},
	}
}

package refflat_api

import (
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

// A node in the feature hierarchy of a GFF3 file
type Feature struct {
	// The parsed GFF3 record, coordinates are 0-based half-open
	*gff.Feature

	// The value of the ID attribute, empty when the feature has none
	ID string

	// The values of the Parent attribute
	Parents []string

	// All features that name this feature as their parent, in file order
	Children []*Feature

	// The 1-based line number of the record in the input file
	Line int
}

// The type of the feature, e.g. "gene" or "mRNA"
func (feature *Feature) Type() string {
	return feature.Feature.Feature
}

// The hierarchy of a GFF3 file
type Forest struct {
	// All features without a Parent attribute, in file order
	Roots []*Feature

	// All features of which none of the parents are present in the file
	Orphans []*Feature

	// The features indexed by their ID
	byID map[string]*Feature
}

// One row of a refFlat file
type RefFlat struct {
	// The name of the gene
	GeneName string

	// The name of the transcript
	Name string

	// The chromosome of the transcript
	Chrom string

	// The strand of the transcript
	Strand seq.Strand

	// The 0-based start of the transcript
	TxStart int

	// The end of the transcript
	TxEnd int

	// The 0-based start of the coding region, equal to TxEnd for non-coding transcripts
	CdsStart int

	// The end of the coding region, equal to TxEnd for non-coding transcripts
	CdsEnd int

	// The 0-based starts of all exons in ascending order
	ExonStarts []int

	// The ends of all exons in ascending order
	ExonEnds []int
}

// The outcome of a conversion
type Summary struct {
	// The amount of genes of which at least one transcript was written
	Genes int

	// The amount of refFlat rows written
	Transcripts int

	// The amount of transcripts removed by the transcript support level filter
	Filtered int

	// The amount of genes without any transcript
	EmptyGenes int

	// The amount of features with a parent that isn't in the file
	Orphans int

	// How often each unrecognized top level feature type was seen
	Unrecognized map[string]int
}

func newSummary() *Summary {
	return &Summary{
		Unrecognized: map[string]int{},
	}
}

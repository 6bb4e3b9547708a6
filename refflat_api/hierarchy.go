package refflat_api

import (
	"strings"

	"golang.org/x/text/cases"
)

var (
	geneTypes = typeSet("gene", "ncRNA_gene", "pseudogene")

	transcriptTypes = typeSet(
		"mRNA", "transcript", "lnc_RNA", "lncRNA", "ncRNA", "miRNA", "snRNA", "snoRNA",
		"rRNA", "tRNA", "scRNA", "pseudogenic_transcript", "NMD_transcript_variant",
		"unconfirmed_transcript", "processed_transcript", "primary_transcript",
		"C_gene_segment", "D_gene_segment", "J_gene_segment", "V_gene_segment",
	)

	exonTypes = typeSet("exon")

	cdsTypes = typeSet("CDS")

	utrTypes = typeSet("five_prime_UTR", "three_prime_UTR", "UTR")
)

func foldType(featureType string) string {
	return cases.Fold().String(featureType)
}

func typeSet(types ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, featureType := range types {
		set[foldType(featureType)] = struct{}{}
	}
	return set
}

func (feature *Feature) hasType(set map[string]struct{}) bool {
	_, ok := set[foldType(feature.Type())]
	return ok
}

// Whether the feature is a gene
func (feature *Feature) IsGene() bool {
	return feature.hasType(geneTypes)
}

// Whether the feature is a transcript
func (feature *Feature) IsTranscript() bool {
	return feature.hasType(transcriptTypes)
}

// Whether the feature is an exon
func (feature *Feature) IsExon() bool {
	return feature.hasType(exonTypes)
}

// Whether the feature is a coding sequence part
func (feature *Feature) IsCDS() bool {
	return feature.hasType(cdsTypes)
}

// Whether the feature is an untranslated region
func (feature *Feature) IsUTR() bool {
	return feature.hasType(utrTypes)
}

// Return all transcript children of a feature
func (feature *Feature) Transcripts() []*Feature {
	transcripts := []*Feature{}
	for _, child := range feature.Children {
		if child.IsTranscript() {
			transcripts = append(transcripts, child)
		}
	}
	return transcripts
}

// Whether the feature directly contains exon, CDS or UTR features
func (feature *Feature) hasExonParts() bool {
	for _, child := range feature.Children {
		if child.IsExon() || child.IsCDS() || child.IsUTR() {
			return true
		}
	}
	return false
}

// Link the features to their parents
// A feature with several parents is attached to each of them
func BuildForest(features []*Feature) *Forest {
	forest := &Forest{
		Roots:   []*Feature{},
		Orphans: []*Feature{},
		byID:    map[string]*Feature{},
	}

	for _, feature := range features {
		if feature.ID == "" {
			continue
		}
		// Features split over multiple lines share their ID, the first line represents them
		if _, ok := forest.byID[feature.ID]; !ok {
			forest.byID[feature.ID] = feature
		}
	}

	for _, feature := range features {
		if len(feature.Parents) == 0 {
			forest.Roots = append(forest.Roots, feature)
			continue
		}

		attached := false
		for _, parentID := range feature.Parents {
			parent, ok := forest.byID[strings.TrimSpace(parentID)]
			if !ok || parent == feature {
				continue
			}
			parent.Children = append(parent.Children, feature)
			attached = true
		}
		if !attached {
			forest.Orphans = append(forest.Orphans, feature)
		}
	}

	return forest
}

// Look up a feature by its ID
func (forest *Forest) Get(id string) (*Feature, bool) {
	feature, ok := forest.byID[id]
	return feature, ok
}

package refflat_api

import (
	"strconv"
	"strings"
)

const (
	// The attribute holding the Ensembl transcript support level
	TSLAttribute = "transcript_support_level"

	// The best and worst transcript support levels
	BestTSL  = 1
	WorstTSL = 5
)

// Parse the transcript support level of a feature.
// Values look like "1" or "2 (assigned to previous version 5)", "NA" and
// missing values are reported as not found.
func TranscriptSupportLevel(feature *Feature) (int, bool) {
	value := strings.TrimSpace(feature.FeatAttributes.Get(TSLAttribute))
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	level, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}
	return level, true
}

// Whether the transcript support level of the transcript is at most maxLevel
func PassesTSL(transcript *Feature, maxLevel int) bool {
	level, ok := TranscriptSupportLevel(transcript)
	return ok && level <= maxLevel
}

// Return a copy of the gene holding only the transcripts that pass the filter,
// nil when no transcript passes. Other children of the gene are kept.
func FilterGeneTSL(gene *Feature, maxLevel int) *Feature {
	filtered := *gene
	filtered.Children = []*Feature{}

	kept := 0
	for _, child := range gene.Children {
		if child.IsTranscript() {
			if !PassesTSL(child, maxLevel) {
				continue
			}
			kept++
		}
		filtered.Children = append(filtered.Children, child)
	}

	if kept == 0 {
		return nil
	}
	return &filtered
}

// Return the transcript when it passes the filter, nil otherwise
func FilterTranscriptTSL(transcript *Feature, maxLevel int) *Feature {
	if !PassesTSL(transcript, maxLevel) {
		return nil
	}
	return transcript
}

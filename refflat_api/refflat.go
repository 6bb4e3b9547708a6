package refflat_api

import (
	"fmt"
	"sort"
	"strings"

	"github.com/biogo/biogo/seq"
)

// The header line of every refFlat file written
const RefFlatHeader = "#geneName\tname\tchrom\tstrand\ttxStart\ttxEnd\tcdsStart\tcdsEnd\texonCount\texonStarts\texonEnds"

type span struct {
	start int
	end   int
}

// Build the refFlat row of a transcript
func NewRefFlat(geneName string, transcript *Feature) RefFlat {
	row := RefFlat{
		GeneName: geneName,
		Name:     TranscriptName(transcript),
		Chrom:    transcript.SeqName,
		Strand:   transcript.FeatStrand,
		TxStart:  transcript.FeatStart,
		TxEnd:    transcript.FeatEnd,
		CdsStart: transcript.FeatEnd,
		CdsEnd:   transcript.FeatEnd,
	}

	cds := []span{}
	exons := []span{}
	parts := []span{}
	for _, child := range transcript.Children {
		part := span{start: child.FeatStart, end: child.FeatEnd}
		switch {
		case child.IsExon():
			exons = append(exons, part)
		case child.IsCDS():
			cds = append(cds, part)
			parts = append(parts, part)
		case child.IsUTR():
			parts = append(parts, part)
		}
	}

	if len(cds) > 0 {
		row.CdsStart, row.CdsEnd = cds[0].start, cds[0].end
		for _, part := range cds[1:] {
			row.CdsStart = min(row.CdsStart, part.start)
			row.CdsEnd = max(row.CdsEnd, part.end)
		}
	}

	// Transcripts without exons are described by their coding parts and UTRs,
	// or by their own span when they have neither
	switch {
	case len(exons) > 0:
		sortSpans(exons)
	case len(parts) > 0:
		exons = mergeSpans(parts)
	default:
		exons = []span{{start: transcript.FeatStart, end: transcript.FeatEnd}}
	}

	for _, exon := range exons {
		row.ExonStarts = append(row.ExonStarts, exon.start)
		row.ExonEnds = append(row.ExonEnds, exon.end)
	}
	return row
}

func sortSpans(spans []span) {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})
}

// Merge overlapping and touching spans
func mergeSpans(spans []span) []span {
	sortSpans(spans)
	merged := []span{spans[0]}
	for _, next := range spans[1:] {
		last := &merged[len(merged)-1]
		if next.start <= last.end {
			last.end = max(last.end, next.end)
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// The name of a gene: its Name, gene_name or gene_id attribute, or its ID
func GeneName(gene *Feature) string {
	for _, tag := range []string{"Name", "gene_name", "gene_id"} {
		if value := gene.FeatAttributes.Get(tag); value != "" {
			return value
		}
	}
	return stripTypePrefix(gene.ID)
}

// The name of a transcript: its transcript_id attribute, its ID or its Name
func TranscriptName(transcript *Feature) string {
	if value := transcript.FeatAttributes.Get("transcript_id"); value != "" {
		return value
	}
	if transcript.ID != "" {
		return stripTypePrefix(transcript.ID)
	}
	if value := transcript.FeatAttributes.Get("Name"); value != "" {
		return value
	}
	return "."
}

// Ensembl IDs carry the feature type as prefix, e.g. "transcript:ENST00000456328"
func stripTypePrefix(id string) string {
	if _, after, found := strings.Cut(id, ":"); found && after != "" {
		return after
	}
	return id
}

func strandSymbol(strand seq.Strand) string {
	switch strand {
	case seq.Plus:
		return "+"
	case seq.Minus:
		return "-"
	}
	return "."
}

func joinPositions(positions []int) string {
	var builder strings.Builder
	for _, position := range positions {
		fmt.Fprintf(&builder, "%d,", position)
	}
	return builder.String()
}

// Convert the row to a tab separated refFlat line
func (row RefFlat) String() string {
	return fmt.Sprintf(
		"%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s",
		row.GeneName,
		row.Name,
		row.Chrom,
		strandSymbol(row.Strand),
		row.TxStart,
		row.TxEnd,
		row.CdsStart,
		row.CdsEnd,
		len(row.ExonStarts),
		joinPositions(row.ExonStarts),
		joinPositions(row.ExonEnds),
	)
}

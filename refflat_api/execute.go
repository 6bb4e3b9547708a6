package refflat_api

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nvnieuwk/chromsync/fileio_api"
)

// Converts a GFF3 feature forest to refFlat rows
type Converter struct {
	// Only keep transcripts with at most this support level, 0 disables the filter
	MaxTSL int

	// Don't log warnings about unrecognized features
	MuteWarnings bool

	logger *log.Logger
}

// Create a converter without transcript support level filter
func NewConverter() *Converter {
	return &Converter{
		logger: log.New(os.Stderr, "", 0),
	}
}

// Read a GFF3 stream and write it as refFlat
// The name is used in error messages.
func (converter *Converter) Run(in io.Reader, out io.Writer, name string) (*Summary, error) {
	forest, err := ReadGff3(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return converter.Convert(forest, out)
}

// Write the refFlat header and one row per transcript in the forest
func (converter *Converter) Convert(forest *Forest, out io.Writer) (*Summary, error) {
	summary := newSummary()
	summary.Orphans = len(forest.Orphans)

	writeRow := func(row RefFlat) error {
		if _, err := io.WriteString(out, row.String()+"\n"); err != nil {
			return fmt.Errorf("failed to write the output: %w", err)
		}
		summary.Transcripts++
		return nil
	}

	if _, err := io.WriteString(out, RefFlatHeader+"\n"); err != nil {
		return summary, fmt.Errorf("failed to write the output: %w", err)
	}

	for _, feature := range forest.Roots {
		if err := converter.dispatch(feature, summary, writeRow); err != nil {
			return summary, err
		}
	}
	for _, feature := range forest.Orphans {
		if err := converter.dispatch(feature, summary, writeRow); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// Handle one top level feature depending on its type
func (converter *Converter) dispatch(feature *Feature, summary *Summary, writeRow func(RefFlat) error) error {
	switch {
	case feature.IsGene():
		return converter.convertGene(feature, summary, writeRow)
	case feature.IsTranscript():
		if converter.MaxTSL > 0 && FilterTranscriptTSL(feature, converter.MaxTSL) == nil {
			summary.Filtered++
			return nil
		}
		geneName := feature.FeatAttributes.Get("Name")
		if geneName == "" {
			geneName = TranscriptName(feature)
		}
		return writeRow(NewRefFlat(geneName, feature))
	}

	if summary.Unrecognized[feature.Type()] == 0 && !converter.MuteWarnings && converter.logger != nil {
		converter.logger.Printf("Feature type '%s' (line %d) is not a gene or transcript, skipping these features", feature.Type(), feature.Line)
	}
	summary.Unrecognized[feature.Type()]++
	return nil
}

func (converter *Converter) convertGene(gene *Feature, summary *Summary, writeRow func(RefFlat) error) error {
	geneName := GeneName(gene)
	transcripts := gene.Transcripts()

	// Some files link exons directly to their gene
	if len(transcripts) == 0 {
		if !gene.hasExonParts() {
			summary.EmptyGenes++
			return nil
		}
		if converter.MaxTSL > 0 && FilterTranscriptTSL(gene, converter.MaxTSL) == nil {
			summary.Filtered++
			return nil
		}
		summary.Genes++
		return writeRow(NewRefFlat(geneName, gene))
	}

	if converter.MaxTSL > 0 {
		filtered := FilterGeneTSL(gene, converter.MaxTSL)
		if filtered == nil {
			summary.Filtered += len(transcripts)
			return nil
		}
		kept := filtered.Transcripts()
		summary.Filtered += len(transcripts) - len(kept)
		transcripts = kept
	}

	summary.Genes++
	for _, transcript := range transcripts {
		if err := writeRow(NewRefFlat(geneName, transcript)); err != nil {
			return err
		}
	}
	return nil
}

// Write the counts of the conversion and all unrecognized feature types
func (summary *Summary) Report(w io.Writer) {
	fileio_api.WriteCount(w, summary.Genes, "gene", "converted")
	fileio_api.WriteCount(w, summary.Transcripts, "transcript", "written")
	if summary.Filtered > 0 {
		fileio_api.WriteCount(w, summary.Filtered, "transcript", "removed by the support level filter")
	}
	if summary.EmptyGenes > 0 {
		fileio_api.WriteCount(w, summary.EmptyGenes, "gene", "without transcripts")
	}
	if summary.Orphans > 0 {
		fileio_api.WriteCount(w, summary.Orphans, "feature", "without a known parent")
	}
	fileio_api.WriteTally(w, "unrecognized feature types", summary.Unrecognized)
}

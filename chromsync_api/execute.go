package chromsync_api

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/nvnieuwk/chromsync/fileio_api"
)

// Rewrites the chromosome field of every record in a tabular annotation stream
type Rewriter struct {
	// The synonym table used to look up the canonical names
	Table *SynonymTable

	// The format of the stream
	Format Format

	// The 0-based chromosome column, -1 to use the default of the format
	// or to locate it in a header line
	Column int

	// Don't log a warning the first time an unknown chromosome is seen
	MuteWarnings bool

	logger *log.Logger
}

// Create a rewriter that uses the default chromosome column of the format
func NewRewriter(table *SynonymTable, format Format) *Rewriter {
	return &Rewriter{
		Table:  table,
		Format: format,
		Column: -1,
		logger: log.New(os.Stderr, "", 0),
	}
}

// Replace the chromosome field of a record by its canonical name.
// Records with an unknown chromosome are tallied and false is returned, these
// records should not be written.
func (rewriter *Rewriter) RewriteRecord(record Record, column int, summary *Summary) bool {
	chromosome, ok := record.Get(column)
	if !ok {
		summary.Malformed++
		return false
	}

	canonical, ok := rewriter.Table.Lookup(chromosome)
	if !ok {
		if summary.Unmatched[chromosome] == 0 && !rewriter.MuteWarnings && rewriter.logger != nil {
			rewriter.logger.Printf("Chromosome '%s' not found in the synonym table, its records will be dropped", chromosome)
		}
		summary.Unmatched[chromosome]++
		summary.Dropped++
		return false
	}

	record.Set(column, canonical)
	return true
}

// Stream all lines from the reader to the writer, rewriting chromosome names on the way.
// The name is used in error messages.
func (rewriter *Rewriter) Run(in io.Reader, out io.Writer, name string) (*Summary, error) {
	summary := newSummary()

	column := rewriter.Column
	locateInHeader := column < 0 && (rewriter.Format == FormatRefFlat || rewriter.Format == FormatTsv)
	if column < 0 {
		column = rewriter.Format.DefaultChromosomeColumn()
	}
	headerSeen := false
	inSequence := false

	writeLine := func(line string) error {
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return fmt.Errorf("failed to write the output: %w", err)
		}
		return nil
	}

	scanner := fileio_api.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		// Everything after ##FASTA is sequence data, only the sequence names are renamed
		if inSequence {
			summary.SequenceLines++
			if rewritten, ok := RewriteSequenceHeader(line, rewriter.Table); ok {
				summary.CommentsRewritten++
				line = rewritten
			}
			if err := writeLine(line); err != nil {
				return summary, err
			}
			continue
		}
		if rewriter.Format == FormatGff && strings.HasPrefix(line, "##FASTA") {
			inSequence = true
		}

		if rewriter.Format.IsComment(line) {
			summary.Comments++
			if locateInHeader && strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "##") {
				if index := FindChromosomeColumn(ParseRow(line)); index >= 0 {
					column = index
					headerSeen = true
				}
			}
			if rewritten, ok := RewriteComment(line, rewriter.Table); ok {
				summary.CommentsRewritten++
				line = rewritten
			}
			if err := writeLine(line); err != nil {
				return summary, err
			}
			continue
		}

		row := ParseRow(line)

		// A TSV header line without a leading '#'
		if locateInHeader && rewriter.Format == FormatTsv && !headerSeen && summary.Records == 0 {
			if index := FindChromosomeColumn(row); index >= 0 {
				column = index
				headerSeen = true
				summary.Comments++
				if err := writeLine(line); err != nil {
					return summary, err
				}
				continue
			}
		}

		if column < 0 {
			return summary, fileio_api.NewConfigurationError(
				name,
				nil,
				"no chromosome column could be located, add a header naming one of: %s",
				strings.Join(chromosomeColumnNames, ", "),
			)
		}

		summary.Records++
		if !rewriter.RewriteRecord(row, column, summary) {
			continue
		}
		if err := writeLine(row.String()); err != nil {
			return summary, err
		}
		summary.Written++
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return summary, nil
}

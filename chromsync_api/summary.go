package chromsync_api

import (
	"io"

	"github.com/nvnieuwk/chromsync/fileio_api"
)

// Write the counts of the run and all unknown chromosomes
func (summary *Summary) Report(w io.Writer) {
	fileio_api.WriteCount(w, summary.Records, "record", "read")
	fileio_api.WriteCount(w, summary.Written, "record", "written")
	fileio_api.WriteCount(w, summary.Dropped, "record", "dropped")
	if summary.Malformed > 0 {
		fileio_api.WriteCount(w, summary.Malformed, "record", "without a chromosome field")
	}
	fileio_api.WriteCount(w, summary.Comments, "header line", "copied")
	if summary.SequenceLines > 0 {
		fileio_api.WriteCount(w, summary.SequenceLines, "sequence line", "copied")
	}
	fileio_api.WriteCount(w, summary.CommentsRewritten, "header line", "rewritten")
	fileio_api.WriteTally(w, "unmatched chromosomes", summary.Unmatched)
}

// Write all synonyms as tab separated canonical and alternate names
func (table *SynonymTable) Dump(w io.Writer) error {
	for _, pair := range table.Entries() {
		if _, err := io.WriteString(w, pair.Canonical+"\t"+pair.Alternate+"\n"); err != nil {
			return err
		}
	}
	return nil
}

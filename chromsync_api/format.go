package chromsync_api

import (
	"strings"

	"github.com/nvnieuwk/chromsync/fileio_api"
)

var formatNames = map[Format]string{
	FormatUnknown: "unknown",
	FormatBed:     "bed",
	FormatGff:     "gff",
	FormatGtf:     "gtf",
	FormatVcf:     "vcf",
	FormatRefFlat: "refflat",
	FormatTsv:     "tsv",
}

var formatExtensions = map[string]Format{
	".bed":     FormatBed,
	".gff":     FormatGff,
	".gff3":    FormatGff,
	".gtf":     FormatGtf,
	".vcf":     FormatVcf,
	".refflat": FormatRefFlat,
	".tsv":     FormatTsv,
	".txt":     FormatTsv,
}

// Column names that hold the chromosome in headered files
var chromosomeColumnNames = []string{"chrom", "chr", "chromosome", "seqid", "seqname", "contig"}

func (format Format) String() string {
	return formatNames[format]
}

// The names accepted by ParseFormat
func FormatNames() []string {
	return []string{"bed", "gff", "gtf", "vcf", "refflat", "tsv"}
}

// Parse a format name like "bed" or "refFlat"
func ParseFormat(name string) (Format, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	for format, formatName := range formatNames {
		if format != FormatUnknown && formatName == name {
			return format, true
		}
	}
	return FormatUnknown, false
}

// Determine the format of a file from its extension, a compression suffix is ignored
func DetectFormat(path string) (Format, error) {
	ext := fileio_api.FormatExtension(path)
	if format, ok := formatExtensions[ext]; ok {
		return format, nil
	}
	return FormatUnknown, fileio_api.NewConfigurationError(
		path,
		nil,
		"the extension '%s' does not match any supported format (%s)",
		ext,
		strings.Join(FormatNames(), ", "),
	)
}

// The chromosome column of formats with a fixed schema, -1 when the column has to be
// located in a header line
func (format Format) DefaultChromosomeColumn() int {
	switch format {
	case FormatBed, FormatGff, FormatGtf, FormatVcf:
		return 0
	case FormatRefFlat:
		return 2
	}
	return -1
}

// Whether a line is a header, comment or otherwise not a data record in this format
func (format Format) IsComment(line string) bool {
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}
	if format == FormatBed {
		return strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser")
	}
	return false
}

// Find the chromosome column in the fields of a header line, -1 if it isn't present
func FindChromosomeColumn(fields []string) int {
	for index, field := range fields {
		name := strings.ToLower(strings.TrimSpace(strings.TrimLeft(field, "#")))
		for _, candidate := range chromosomeColumnNames {
			if name == candidate {
				return index
			}
		}
	}
	return -1
}

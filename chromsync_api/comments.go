package chromsync_api

import (
	"regexp"
	"strings"
)

// Metadata lines that refer to a chromosome
// Each expression captures the text before the chromosome, the chromosome and the rest
var commentPatterns = []*regexp.Regexp{
	// GFF3 and GTF: ##sequence-region chr1 1 248956422
	regexp.MustCompile(`^(##sequence-region\s+)(\S+)(.*)$`),
	// VCF: ##contig=<ID=chr1,length=248956422>
	regexp.MustCompile(`^(##contig=<(?:[^>]*?,)?ID=)([^,>]+)(.*)$`),
	// BED: browser position chr1:1000-2000
	regexp.MustCompile(`^(browser\s+position\s+)([^:\s]+)(.*)$`),
}

// Replace the chromosome mentioned in a metadata line.
// Lines without a chromosome or with an unknown chromosome are returned unchanged.
// The boolean reports whether the line was changed.
func RewriteComment(line string, table *SynonymTable) (string, bool) {
	for _, pattern := range commentPatterns {
		matches := pattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		canonical, ok := table.Lookup(matches[2])
		if !ok {
			return line, false
		}
		rewritten := matches[1] + canonical + matches[3]
		return rewritten, rewritten != line
	}
	return line, false
}

// Replace the sequence name of a FASTA header line like ">chr1 description".
// Other lines and unknown names are returned unchanged.
func RewriteSequenceHeader(line string, table *SynonymTable) (string, bool) {
	if !strings.HasPrefix(line, ">") {
		return line, false
	}
	name, rest, _ := strings.Cut(line[1:], " ")
	canonical, ok := table.Lookup(name)
	if !ok || canonical == name {
		return line, false
	}
	rewritten := ">" + canonical
	if rest != "" {
		rewritten += " " + rest
	}
	return rewritten, true
}

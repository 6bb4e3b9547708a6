package refflat_api

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/nvnieuwk/chromsync/fileio_api"
)

const gffColumns = 9

// Read all features of a GFF3 stream and link them into a forest
func ReadGff3(r io.Reader) (*Forest, error) {
	features := []*Feature{}

	scanner := fileio_api.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		// Embedded sequences end the annotation section
		if strings.HasPrefix(line, "##FASTA") || strings.HasPrefix(line, ">") {
			break
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		feature, err := parseFeature(line, lineNumber)
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return BuildForest(features), nil
}

// Parse one GFF3 record
func parseFeature(line string, lineNumber int) (*Feature, error) {
	data := strings.Split(line, "\t")
	if len(data) != gffColumns {
		return nil, fmt.Errorf("line %d: expected %d tab separated columns, found %d", lineNumber, gffColumns, len(data))
	}

	start, err := strconv.Atoi(data[3])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid start '%s'", lineNumber, data[3])
	}
	end, err := strconv.Atoi(data[4])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid end '%s'", lineNumber, data[4])
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("line %d: invalid coordinates %d-%d", lineNumber, start, end)
	}

	record := &gff.Feature{
		SeqName:    unescape(data[0]),
		Source:     unescape(data[1]),
		Feature:    unescape(data[2]),
		FeatStart:  start - 1,
		FeatEnd:    end,
		FeatStrand: parseStrand(data[6]),
		FeatFrame:  parseFrame(data[7]),
	}

	if data[5] != "." {
		score, err := strconv.ParseFloat(data[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid score '%s'", lineNumber, data[5])
		}
		record.FeatScore = &score
	}

	record.FeatAttributes = parseAttributes(data[8])

	feature := &Feature{
		Feature: record,
		ID:      record.FeatAttributes.Get("ID"),
		Line:    lineNumber,
	}
	if parents := record.FeatAttributes.Get("Parent"); parents != "" {
		feature.Parents = strings.Split(parents, ",")
	}
	return feature, nil
}

// Parse the GFF3 attribute column: tag=value;tag=value
// Multiple values stay comma separated, escaped characters are decoded
func parseAttributes(column string) gff.Attributes {
	attributes := gff.Attributes{}
	if column == "." || column == "" {
		return attributes
	}

	for _, pair := range strings.Split(column, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		tag, value, _ := strings.Cut(pair, "=")
		values := strings.Split(value, ",")
		for i := range values {
			values[i] = unescape(values[i])
		}
		attributes = append(attributes, gff.Attribute{
			Tag:   unescape(tag),
			Value: strings.Join(values, ","),
		})
	}
	return attributes
}

func unescape(value string) string {
	if !strings.Contains(value, "%") {
		return value
	}
	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return unescaped
}

func parseStrand(value string) seq.Strand {
	switch value {
	case "+":
		return seq.Plus
	case "-":
		return seq.Minus
	}
	return seq.None
}

func parseFrame(value string) gff.Frame {
	phase, err := strconv.Atoi(value)
	if err != nil || phase < 0 || phase > 2 {
		return gff.NoFrame
	}
	return gff.Frame(phase)
}

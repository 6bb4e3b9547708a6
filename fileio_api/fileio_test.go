package fileio_api

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path       string
		dir        string
		base       string
		ext        string
		compressed bool
	}{
		{"sample.bed", ".", "sample", ".bed", false},
		{"data/sample.v2.bed.gz", "data", "sample.v2", ".bed", true},
		{"/tmp/genes.GFF3.BGZ", "/tmp", "genes", ".GFF3", true},
		{"noext", ".", "noext", "", false},
		{".gz", ".", "", ".gz", false},
	}

	for _, test := range tests {
		dir, base, ext, compressed := SplitPath(test.path)
		if dir != test.dir || base != test.base || ext != test.ext || compressed != test.compressed {
			t.Errorf("SplitPath(%q) = %q, %q, %q, %v, expected %q, %q, %q, %v",
				test.path, dir, base, ext, compressed, test.dir, test.base, test.ext, test.compressed)
		}
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		suffix   string
		ext      string
		compress bool
		expected string
	}{
		{"sample.bed", ".ensembl", "", false, "sample.ensembl.bed"},
		{"data/sample.bed.gz", ".ensembl", "", true, filepath.Join("data", "sample.ensembl.bed.gz")},
		{"data/sample.bed.gz", ".ensembl", "", false, filepath.Join("data", "sample.ensembl.bed")},
		{"genes.gff3", "", ".refFlat", false, "genes.refFlat"},
		{"-", ".ensembl", "", false, "-"},
	}

	for _, test := range tests {
		actual := DefaultOutputPath(test.input, test.suffix, test.ext, test.compress)
		if actual != test.expected {
			t.Errorf("DefaultOutputPath(%q) = %q, expected %q", test.input, actual, test.expected)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if ext := FormatExtension("x/Genes.refFlat.gz"); ext != ".refflat" {
		t.Errorf("FormatExtension = %q, expected .refflat", ext)
	}
}

func roundTrip(t *testing.T, name string, compress bool) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	lines := []string{"chr1\t100\t200", "chrX\t5\t10"}

	output, err := CreateOutput(path, compress)
	if err != nil {
		t.Fatalf("CreateOutput: %v", err)
	}
	for _, line := range lines {
		if err := output.WriteLine(line); err != nil {
			t.Fatalf("WriteLine: %v", err)
		}
	}
	if err := output.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	input, err := OpenInput(path)
	if err != nil {
		t.Fatalf("OpenInput: %v", err)
	}
	defer input.Close()
	if input.Compressed != compress {
		t.Errorf("Compressed = %v, expected %v", input.Compressed, compress)
	}

	var got []string
	scanner := input.Scanner()
	for scanner.Scan() {
		got = append(got, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if strings.Join(got, "|") != strings.Join(lines, "|") {
		t.Errorf("read back %q, expected %q", got, lines)
	}
}

func TestPlainRoundTrip(t *testing.T) {
	roundTrip(t, "plain.bed", false)
}

func TestCompressedRoundTrip(t *testing.T) {
	roundTrip(t, "compressed.bed.gz", true)

	path := filepath.Join(t.TempDir(), "magic.bed.gz")
	output, err := CreateOutput(path, true)
	if err != nil {
		t.Fatal(err)
	}
	output.WriteLine("chr1")
	output.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		t.Errorf("output does not start with the gzip magic bytes")
	}
}

func TestNewInputDetectsCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin.bed.gz")
	output, err := CreateOutput(path, true)
	if err != nil {
		t.Fatal(err)
	}
	output.WriteLine("chr1\t10\t20")
	if err := output.Close(); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		data       []byte
		compressed bool
	}{
		{"compressed", raw, true},
		{"plain", []byte("chr1\t10\t20\n"), false},
	}
	for _, test := range tests {
		input, err := NewInput(StdStream, bytes.NewReader(test.data))
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		content, err := io.ReadAll(input)
		input.Close()
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if input.Compressed != test.compressed {
			t.Errorf("%s: Compressed = %v, expected %v", test.name, input.Compressed, test.compressed)
		}
		if string(content) != "chr1\t10\t20\n" {
			t.Errorf("%s: read %q", test.name, content)
		}
	}

	empty, err := NewInput(StdStream, strings.NewReader(""))
	if err != nil || empty.Compressed {
		t.Errorf("empty input: %v, compressed %v", err, empty != nil && empty.Compressed)
	}
}

func TestDiscardRemovesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.bed")
	output, err := CreateOutput(path, false)
	if err != nil {
		t.Fatal(err)
	}
	output.WriteLine("#chrom\tstart\tend")
	if err := output.Discard(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %s to be removed, got %v", path, err)
	}
}

func TestOpenInputMissing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing.bed"))
	var configErr *ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected a ConfigurationError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the error to wrap os.ErrNotExist, got %v", err)
	}
}

func TestCreateOutputMissingDirectory(t *testing.T) {
	_, err := CreateOutput(filepath.Join(t.TempDir(), "nope", "out.bed"), false)
	var configErr *ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected a ConfigurationError, got %v", err)
	}
}

func TestSortTally(t *testing.T) {
	entries := SortTally(map[string]int{"chrB": 2, "chrA": 2, "chrC": 5})
	expected := []TallyEntry{{"chrC", 5}, {"chrA", 2}, {"chrB", 2}}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Errorf("entry %d = %v, expected %v", i, entries[i], expected[i])
		}
	}
}

func TestWriteTally(t *testing.T) {
	var buf bytes.Buffer
	WriteTally(&buf, "unmatched chromosomes", nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for an empty tally, got %q", buf.String())
	}

	WriteTally(&buf, "unmatched chromosomes", map[string]int{"chrFOO": 3})
	if !strings.Contains(buf.String(), "\tchrFOO\t3\n") {
		t.Errorf("tally output %q misses the entry", buf.String())
	}
}

func TestWriteCount(t *testing.T) {
	var buf bytes.Buffer
	WriteCount(&buf, 1, "record", "written")
	if buf.String() != "1 record written\n" {
		t.Errorf("WriteCount = %q", buf.String())
	}
}

var _ io.ReadCloser = (*Input)(nil)
var _ io.WriteCloser = (*Output)(nil)

package fileio_api

import (
	"path/filepath"
	"strings"
)

// The name used for stdin and stdout on the command line
const StdStream = "-"

// Suffixes that mark a (b)gzip compressed file
var compressedSuffixes = []string{".gz", ".bgz"}

// Split a path in its directory, base name, extension and compression state
// e.g. "data/sample.v2.bed.gz" -> "data", "sample.v2", ".bed", true
func SplitPath(path string) (dir string, base string, ext string, compressed bool) {
	dir = filepath.Dir(path)
	name := filepath.Base(path)

	lower := strings.ToLower(name)
	for _, suffix := range compressedSuffixes {
		if strings.HasSuffix(lower, suffix) && len(name) > len(suffix) {
			name = name[:len(name)-len(suffix)]
			compressed = true
			break
		}
	}

	ext = filepath.Ext(name)
	base = strings.TrimSuffix(name, ext)
	return dir, base, ext, compressed
}

// Return the extension of a path without the compression suffix, in lower case
func FormatExtension(path string) string {
	_, _, ext, _ := SplitPath(path)
	return strings.ToLower(ext)
}

// Check if the path points to a (b)gzip compressed file
func IsCompressed(path string) bool {
	_, _, _, compressed := SplitPath(path)
	return compressed
}

// Derive an output path from the input path by inserting a suffix before the extension.
// When ext is not empty it replaces the original extension.
// The compression suffix is set to match the compress argument.
// Standard input results in standard output.
func DefaultOutputPath(input string, suffix string, ext string, compress bool) string {
	if input == StdStream || input == "" {
		return StdStream
	}

	dir, base, originalExt, _ := SplitPath(input)
	if ext == "" {
		ext = originalExt
	}

	name := base + suffix + ext
	if compress {
		name += ".gz"
	}
	return filepath.Join(dir, name)
}

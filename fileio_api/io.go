package fileio_api

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/pgzip"
)

// The maximum length of one line in an input file
const maxLineLength = 8 * 1000000 // 8 MB

// An opened input stream, decompressed when needed
type Input struct {
	// The path of the input file, "-" for stdin
	Path string

	// Whether the input is (b)gzip compressed
	Compressed bool

	reader  io.Reader
	closers []io.Closer
}

// The first bytes of every gzip (and so every BGZF) stream
var gzipMagic = []byte{0x1f, 0x8b}

// Open an input file for reading, "-" reads stdin
// Compressed input is recognized by its content and decompressed on the fly
func OpenInput(path string) (*Input, error) {
	if path == StdStream {
		return NewInput(path, os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, NewConfigurationError(path, err, "failed to open the input file")
	}

	input, err := NewInput(path, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	input.closers = append(input.closers, file)
	return input, nil
}

// Wrap a stream as input, gzip and BGZF streams are decompressed
// The stream itself is not closed by Input.Close
func NewInput(path string, r io.Reader) (*Input, error) {
	buffered := bufio.NewReader(r)
	input := &Input{
		Path:   path,
		reader: buffered,
	}

	magic, _ := buffered.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		return input, nil
	}

	gzReader, err := pgzip.NewReader(buffered)
	if err != nil {
		return nil, NewConfigurationError(path, err, "failed to read the compressed input")
	}
	input.Compressed = true
	input.reader = gzReader
	input.closers = []io.Closer{gzReader}
	return input, nil
}

func (input *Input) Read(p []byte) (int, error) {
	return input.reader.Read(p)
}

// Create a line scanner over the input
func (input *Input) Scanner() *bufio.Scanner {
	return NewScanner(input)
}

// Close the input file and its decompressor
func (input *Input) Close() error {
	var errs []error
	for _, closer := range input.closers {
		errs = append(errs, closer.Close())
	}
	input.closers = nil
	return errors.Join(errs...)
}

// Create a line scanner that accepts long lines
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return scanner
}

// An opened output stream, BGZF compressed when requested
type Output struct {
	// The path of the output file, "-" for stdout
	Path string

	// Whether the output is BGZF compressed
	Compressed bool

	writer  *bufio.Writer
	closers []io.Closer
}

// Create an output file, the parent directory has to exist
func CreateOutput(path string, compress bool) (*Output, error) {
	var target io.Writer = os.Stdout
	output := &Output{Path: path, Compressed: compress}

	if path != StdStream {
		file, err := os.Create(path)
		if err != nil {
			return nil, NewConfigurationError(path, err, "failed to create the output file")
		}
		target = file
		output.closers = append(output.closers, file)
	}

	if compress {
		bgWriter := bgzf.NewWriter(target, 1)
		target = bgWriter
		output.closers = append([]io.Closer{bgWriter}, output.closers...)
	}

	output.writer = bufio.NewWriter(target)
	return output, nil
}

func (output *Output) Write(p []byte) (int, error) {
	return output.writer.Write(p)
}

// Write a line to the output, the newline is added
func (output *Output) WriteLine(line string) error {
	if _, err := output.writer.WriteString(line); err != nil {
		return err
	}
	return output.writer.WriteByte('\n')
}

// Flush all buffered data and close the output file
func (output *Output) Close() error {
	errs := []error{output.writer.Flush()}
	for _, closer := range output.closers {
		errs = append(errs, closer.Close())
	}
	output.closers = nil
	return errors.Join(errs...)
}

// Close the output and remove the file, used when a run fails halfway
// Standard output can't be removed and is only flushed
func (output *Output) Discard() error {
	err := output.Close()
	if output.Path == StdStream {
		return err
	}
	if removeErr := os.Remove(output.Path); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
		return errors.Join(err, removeErr)
	}
	return nil
}

package chromsync_api

import (
	"fmt"
	"os"

	"github.com/nvnieuwk/chromsync/fileio_api"
	cli "github.com/urfave/cli/v2"
)

// The suffix added to the input name when no output is given
const DefaultSuffix = ".ensembl"

// All settings of one chromsync run
type Config struct {
	// The input file, "-" for stdin
	Input string

	// The output file, "-" for stdout
	Output string

	// Compress the output with BGZF
	Compress bool

	// The format of the input file
	Format Format

	// The 0-based chromosome column, -1 when it isn't given
	Column int

	// The synonym table to use
	Table *SynonymTable

	// Don't log warnings about unknown chromosomes
	MuteWarnings bool
}

// Read the synonym table: the embedded synonyms extended with the ones in the
// --synonyms files and optionally with the canonical names themselves
func ReadSynonymTable(Cctx *cli.Context) (*SynonymTable, error) {
	table := DefaultSynonymTable()

	for _, path := range Cctx.StringSlice("synonyms") {
		entries, err := ReadSynonymFile(path)
		if err != nil {
			return nil, err
		}
		table, err = table.Merge(entries)
		if err != nil {
			return nil, fileio_api.NewConfigurationError(path, err, "failed to add the synonyms")
		}
	}

	if Cctx.Bool("keep-canonical") {
		table = table.WithCanonical()
	}
	return table, nil
}

// Read and parse a YAML synonym file
func ReadSynonymFile(path string) ([]SynonymEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileio_api.NewConfigurationError(path, err, "failed to open the synonym file")
	}
	entries, err := ParseSynonyms(data)
	if err != nil {
		return nil, fileio_api.NewConfigurationError(path, err, "failed to parse the synonym file")
	}
	return entries, nil
}

// Read all settings from the command line
func ReadConfig(Cctx *cli.Context) (*Config, error) {
	config := &Config{
		Input:        Cctx.String("input"),
		Output:       Cctx.String("output"),
		Column:       Cctx.Int("column") - 1,
		MuteWarnings: Cctx.Bool("mute-warnings"),
	}

	args := Cctx.Args().Slice()
	if config.Input == "" && len(args) > 0 {
		config.Input, args = args[0], args[1:]
	}
	if config.Output == "" && len(args) > 0 {
		config.Output = args[0]
	}
	if config.Input == "" {
		return nil, fileio_api.NewConfigurationError("", nil, "no input file given")
	}

	if name := Cctx.String("format"); name != "" {
		format, ok := ParseFormat(name)
		if !ok {
			return nil, fileio_api.NewConfigurationError("", nil, "unknown format '%s'", name)
		}
		config.Format = format
	} else if config.Input == fileio_api.StdStream {
		return nil, fileio_api.NewConfigurationError(config.Input, nil, "the format has to be given with --format when reading from stdin")
	} else {
		format, err := DetectFormat(config.Input)
		if err != nil {
			return nil, err
		}
		config.Format = format
	}

	// The output mirrors the input compression unless told otherwise
	config.Compress = fileio_api.IsCompressed(config.Input)
	if Cctx.IsSet("compress") {
		config.Compress = Cctx.Bool("compress")
	}

	if config.Output == "" {
		config.Output = fileio_api.DefaultOutputPath(config.Input, Cctx.String("suffix"), "", config.Compress)
	}
	if config.Output == config.Input && config.Input != fileio_api.StdStream {
		return nil, fileio_api.NewConfigurationError(config.Output, nil, "the output file would overwrite the input file")
	}

	table, err := ReadSynonymTable(Cctx)
	if err != nil {
		return nil, err
	}
	config.Table = table

	return config, nil
}

// Rewrite the input file to the output file
func Execute(config *Config) (*Summary, error) {
	input, err := fileio_api.OpenInput(config.Input)
	if err != nil {
		return nil, err
	}
	defer input.Close()

	output, err := fileio_api.CreateOutput(config.Output, config.Compress)
	if err != nil {
		return nil, err
	}

	rewriter := NewRewriter(config.Table, config.Format)
	rewriter.Column = config.Column
	rewriter.MuteWarnings = config.MuteWarnings

	summary, err := rewriter.Run(input, output, config.Input)
	if err != nil {
		output.Discard()
		return summary, err
	}
	if err := output.Close(); err != nil {
		return summary, fmt.Errorf("failed to close the output file: %w", err)
	}
	return summary, nil
}

package refflat_api

import (
	"fmt"

	"github.com/nvnieuwk/chromsync/fileio_api"
	cli "github.com/urfave/cli/v2"
)

// The extension of the output file when no output is given
const DefaultExtension = ".refFlat"

var gffExtensions = []string{".gff", ".gff3"}

// All settings of one gff2refflat run
type Config struct {
	// The input GFF3 file, "-" for stdin
	Input string

	// The output refFlat file, "-" for stdout
	Output string

	// Compress the output with BGZF
	Compress bool

	// The transcript support level filter, 0 when disabled
	MaxTSL int

	// Don't log warnings about unrecognized features
	MuteWarnings bool
}

// Read all settings from the command line
func ReadConfig(Cctx *cli.Context) (*Config, error) {
	config := &Config{
		Input:        Cctx.String("input"),
		Output:       Cctx.String("output"),
		MaxTSL:       Cctx.Int("tsl"),
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
	if err := CheckExtension(config.Input); err != nil {
		return nil, err
	}

	config.Compress = fileio_api.IsCompressed(config.Input)
	if Cctx.IsSet("compress") {
		config.Compress = Cctx.Bool("compress")
	}

	if config.Output == "" {
		config.Output = fileio_api.DefaultOutputPath(config.Input, "", DefaultExtension, config.Compress)
	}
	return config, nil
}

// Check that the input file has a GFF extension, stdin is always accepted
func CheckExtension(path string) error {
	if path == fileio_api.StdStream {
		return nil
	}
	ext := fileio_api.FormatExtension(path)
	for _, gffExt := range gffExtensions {
		if ext == gffExt {
			return nil
		}
	}
	return fileio_api.NewConfigurationError(path, nil, "expected a GFF3 file (.gff or .gff3), got '%s'", ext)
}

// Convert the input file to the output file
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

	converter := NewConverter()
	converter.MaxTSL = config.MaxTSL
	converter.MuteWarnings = config.MuteWarnings

	summary, err := converter.Run(input, output, config.Input)
	if err != nil {
		output.Discard()
		return summary, err
	}
	if err := output.Close(); err != nil {
		return summary, fmt.Errorf("failed to close the output file: %w", err)
	}
	return summary, nil
}

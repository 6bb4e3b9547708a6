package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nvnieuwk/chromsync/fileio_api"
	"github.com/nvnieuwk/chromsync/refflat_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}

// Build the command line application
func newApp() *cli.App {
	return &cli.App{
		Name:            "gff2refflat",
		Usage:           "Convert the genes and transcripts of a GFF3 file to a UCSC refFlat table",
		UsageText:       "gff2refflat [options] <input.gff3> [output]",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "The input GFF3 file, can also be given as first argument",
				Category: "Input/Output",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The output refFlat file, '-' for stdout. Defaults to the input name with the .refFlat extension",
				Category: "Input/Output",
			},
			&cli.BoolFlag{
				Name:     "compress",
				Aliases:  []string{"z"},
				Usage:    "Compress the output with bgzip, defaults to the compression of the input",
				Category: "Input/Output",
			},
			&cli.IntFlag{
				Name:     "tsl",
				Aliases:  []string{"t"},
				Usage:    "Only keep transcripts with this transcript support level or better (1-5)",
				Category: "Optional",
				Action: func(c *cli.Context, input int) error {
					if input >= refflat_api.BestTSL && input <= refflat_api.WorstTSL {
						return nil
					}
					return cli.Exit(fmt.Sprintf("Invalid transcript support level '%d', must be between %d and %d", input, refflat_api.BestTSL, refflat_api.WorstTSL), 1)
				},
			},
			&cli.BoolFlag{
				Name:     "mute-warnings",
				Aliases:  []string{"mw"},
				Usage:    "Don't show a warning for every unrecognized feature type",
				Category: "Optional",
			},
		},
		Action: func(Cctx *cli.Context) error {
			if Cctx.NArg() == 0 && !Cctx.IsSet("input") {
				return cli.ShowAppHelp(Cctx)
			}

			config, err := refflat_api.ReadConfig(Cctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			summary, err := refflat_api.Execute(config)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			summary.Report(reportWriter(Cctx, config.Output))
			return nil
		},
	}
}

// The summary goes to stderr when the output itself is written to stdout
func reportWriter(Cctx *cli.Context, output string) io.Writer {
	if output == fileio_api.StdStream {
		return log.New(Cctx.App.ErrWriter, "", 0).Writer()
	}
	return Cctx.App.Writer
}

package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/nvnieuwk/chromsync/fileio_api"
	"github.com/nvnieuwk/chromsync/chromsync_api"
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
		Name:            "chromsync",
		Usage:           "Rename the chromosomes in BED, GFF, GTF, VCF and refFlat files to Ensembl names",
		UsageText:       "chromsync [options] <input> [output]",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "The input file to rename the chromosomes of, can also be given as first argument",
				Category: "Input/Output",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The output file, '-' for stdout. Defaults to the input name with the suffix inserted before the extension",
				Category: "Input/Output",
			},
			&cli.BoolFlag{
				Name:     "compress",
				Aliases:  []string{"z"},
				Usage:    "Compress the output with bgzip, defaults to the compression of the input",
				Category: "Input/Output",
			},
			&cli.StringFlag{
				Name:     "suffix",
				Usage:    "The suffix inserted before the extension of the default output name",
				Value:    chromsync_api.DefaultSuffix,
				Category: "Input/Output",
			},
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Usage:    "The format of the input file, one of: " + strings.Join(chromsync_api.FormatNames(), ", ") + ". Detected from the extension by default",
				Category: "Optional",
				Action: func(c *cli.Context, input string) error {
					if _, ok := chromsync_api.ParseFormat(input); ok {
						return nil
					}
					return cli.Exit("Invalid format '"+input+"', must be one of: "+strings.Join(chromsync_api.FormatNames(), ", "), 1)
				},
			},
			&cli.IntFlag{
				Name:     "column",
				Usage:    "The 1-based column holding the chromosome, overrides the column of the format",
				Category: "Optional",
				Action: func(c *cli.Context, input int) error {
					if input > 0 {
						return nil
					}
					return cli.Exit("The column has to be 1 or higher", 1)
				},
			},
			&cli.StringSliceFlag{
				Name:     "synonyms",
				Aliases:  []string{"s"},
				Usage:    "Extra synonym file(s) (YAML) to add to the built-in synonyms",
				Category: "Synonyms",
			},
			&cli.BoolFlag{
				Name:     "keep-canonical",
				Usage:    "Keep records that already use an Ensembl name instead of dropping them",
				Category: "Synonyms",
			},
			&cli.BoolFlag{
				Name:     "dump-synonyms",
				Usage:    "Print the synonym table and exit",
				Category: "Synonyms",
			},
			&cli.BoolFlag{
				Name:     "mute-warnings",
				Aliases:  []string{"mw"},
				Usage:    "Don't show a warning for every unknown chromosome",
				Category: "Optional",
			},
		},
		Action: func(Cctx *cli.Context) error {
			if Cctx.Bool("dump-synonyms") {
				table, err := chromsync_api.ReadSynonymTable(Cctx)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				if err := table.Dump(Cctx.App.Writer); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				return nil
			}

			if Cctx.NArg() == 0 && !Cctx.IsSet("input") {
				return cli.ShowAppHelp(Cctx)
			}

			config, err := chromsync_api.ReadConfig(Cctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			summary, err := chromsync_api.Execute(config)
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

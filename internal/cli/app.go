// Package cli implements the extract command-line tool.
package cli

import (
	"github.com/urfave/cli/v2"

	"docuextract/internal/port"
)

// NewApp builds the extract CLI. Extraction settings come from the same
// DOCUEXTRACT_* environment as the server.
func NewApp() *cli.App {
	return NewAppWithExtractor(nil)
}

// NewAppWithExtractor builds the CLI around a fixed extractor (for testing).
// A nil extractor means the Gemini client built from config.
func NewAppWithExtractor(extractor port.Extractor) *cli.App {
	return &cli.App{
		Name:  "extract",
		Usage: "extract content from a document with a generation model",
		Commands: []*cli.Command{
			{
				Name:   "formats",
				Usage:  "list output formats and accepted file types",
				Action: FormatsAction,
			},
			{
				Name:  "run",
				Usage: "run one extraction and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "document to extract from", Required: true},
					&cli.StringFlag{Name: "format", Value: "SUMMARY", Usage: "SUMMARY, JSON_EXTRACT or KEY_VALUE_PAIRS"},
					&cli.StringFlag{Name: "instructions", Aliases: []string{"i"}, Usage: "custom instructions appended to the prompt"},
					&cli.BoolFlag{Name: "copy", Usage: "print the copy text (raw response) instead of the rendered view"},
					&cli.StringFlag{Name: "export", Usage: "write the outcome as csv or xlsx"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "export destination (default: generated name in the working directory)"},
				},
				Action: runAction(extractor),
			},
		},
	}
}

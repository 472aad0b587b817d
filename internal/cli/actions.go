package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"docuextract/internal/catalog"
	"docuextract/internal/classifier"
	"docuextract/internal/config"
	"docuextract/internal/domain"
	"docuextract/internal/export"
	"docuextract/internal/extraction"
	"docuextract/internal/extractor"
	_ "docuextract/internal/extractor/gemini" // registers the gemini provider
	"docuextract/internal/logger"
	"docuextract/internal/port"
	"docuextract/internal/present"
	"docuextract/internal/service"
)

// exitUsage is the exit code for bad input; exitRemote for failed extractions.
const (
	exitUsage  = 2
	exitRemote = 1
)

// FormatsAction prints the output format catalog.
func FormatsAction(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tSTRUCTURED")
	for _, f := range catalog.All() {
		fmt.Fprintf(w, "%s\t%s\t%t\n", f.ID, f.Label, f.RequiresStructuredOutput)
	}
	fmt.Fprintf(w, "\naccepted types: %s\n", strings.Join(classifier.AllowedMediaTypes(), ", "))
	return w.Flush()
}

// runAction runs a single extraction for --file.
func runAction(ext port.Extractor) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return cli.Exit(fmt.Sprintf("loading config: %v", err), exitUsage)
		}
		zl, err := logger.New(cfg.Log)
		if err != nil {
			return cli.Exit(fmt.Sprintf("building logger: %v", err), exitUsage)
		}
		defer func() { _ = zl.Sync() }()

		e := ext
		if e == nil {
			e, err = extractor.New(&cfg.Extractor, zl.Named(cfg.Extractor.Provider))
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}
		}
		return runWith(c, cfg, e, zl)
	}
}

func runWith(c *cli.Context, cfg *config.Config, ext port.Extractor, zl *zap.Logger) error {
	var kind export.Kind
	if raw := c.String("export"); raw != "" {
		k, err := export.ParseKind(raw)
		if err != nil {
			return cli.Exit(err.Error(), exitUsage)
		}
		kind = k
	}

	path := c.String("file")
	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%v: %v", domain.ErrFileReadFailure, err), exitUsage)
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return cli.Exit(fmt.Sprintf("%v: %v", domain.ErrFileReadFailure, err), exitUsage)
	}

	builder := extraction.NewBuilder(cfg.Extractor.TextModel, cfg.Extractor.MultimodalModel)
	svc := service.NewExtractionService(builder, ext, zl)

	outcome, err := svc.Extract(c.Context, service.ExtractInput{
		FileName:     filepath.Base(path),
		MediaType:    classifier.MediaTypeForFileName(path),
		Size:         info.Size(),
		Body:         f,
		FormatID:     domain.FormatID(strings.ToUpper(c.String("format"))),
		Instructions: c.String("instructions"),
	})
	if err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) {
			return cli.Exit(err.Error(), exitRemote)
		}
		return cli.Exit(err.Error(), exitUsage)
	}

	if kind != "" {
		out := c.String("out")
		if out == "" {
			out = export.BuildFilename(filepath.Base(path), outcome.Format, string(kind))
		}
		if err := writeExport(out, kind, outcome); err != nil {
			return cli.Exit(err.Error(), exitRemote)
		}
		fmt.Fprintf(c.App.ErrWriter, "wrote %s\n", out)
		return nil
	}

	text := present.Render(outcome)
	if c.Bool("copy") {
		text = present.CopyText(outcome)
	}
	fmt.Fprintln(c.App.Writer, text)
	if outcome.ContentKind == domain.ContentParseFailure {
		fmt.Fprintln(c.App.ErrWriter, extraction.ParseFailureMessage)
	}
	return nil
}

func writeExport(path string, kind export.Kind, o *domain.ExtractionOutcome) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()
	return export.Write(f, kind, o)
}

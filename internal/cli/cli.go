// Package cli implements the grayflip command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/grayflip/internal/config"
	"github.com/aliskhannn/grayflip/internal/model"
	"github.com/aliskhannn/grayflip/internal/service/convert"
)

// Version is reported by --version.
var Version = "dev"

// ErrUsage is returned when the command line cannot be turned into a request.
var ErrUsage = errors.New("usage error")

// Converter runs one conversion.
type Converter interface {
	Convert(ctx context.Context, req model.ProcessingRequest, opts ...convert.Option) (model.Result, error)
}

// Builder creates a Converter from the loaded configuration.
type Builder func(cfg *config.Config) (Converter, error)

// New returns the root command. Every failure is reported on the command's
// writer and returned, so the caller only has to pick the exit status.
func New(build Builder) *cli.Command {
	return &cli.Command{
		Name:            "grayflip",
		Usage:           "Convert images to grayscale and/or mirror them horizontally",
		ArgsUsage:       "<source>",
		Version:         Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "output",
				Usage:     "Path to write the result to (derived from the source when empty)",
				Aliases:   []string{"o"},
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "grayscale",
				Usage:   "Convert to grayscale",
				Aliases: []string{"g"},
				Value:   true,
			},
			&cli.BoolFlag{
				Name:  "no-grayscale",
				Usage: "Keep colors; overrides --grayscale",
			},
			&cli.BoolFlag{
				Name:    "flip",
				Usage:   "Mirror left to right",
				Aliases: []string{"f"},
				Value:   false,
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "Optional YAML config file",
				Aliases:   []string{"c"},
				TakesFile: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c, build)
		},
	}
}

func run(ctx context.Context, c *cli.Command, build Builder) error {
	w := c.Root().Writer

	if c.NArg() != 1 {
		fmt.Fprintln(w, "Error: exactly one source image is required")
		return fmt.Errorf("%w: expected 1 source argument, got %d", ErrUsage, c.NArg())
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return err
	}

	svc, err := build(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return err
	}

	req := model.ProcessingRequest{
		SourcePath:      c.Args().First(),
		DestinationPath: c.String("output"),
		Grayscale:       c.Bool("grayscale") && !c.Bool("no-grayscale"),
		FlipHorizontal:  c.Bool("flip"),
	}

	res, err := svc.Convert(ctx, req, convert.WithProgress(func(cls model.Classification) {
		printClassification(w, req.SourcePath, cls)
	}))
	if err != nil {
		printError(w, req, err)
		zlog.Logger.Debug().Err(err).Str("source", req.SourcePath).Msg("conversion failed")
		return err
	}

	fmt.Fprintf(w, "Done (%s): %s\n", strings.Join(res.Operations, ", "), res.DestinationPath)

	return nil
}

func printClassification(w io.Writer, src string, cls model.Classification) {
	fmt.Fprintf(w, "Processing %s file: %s\n", strings.ToUpper(cls.Format), filepath.Base(src))

	if cls.Animated {
		fmt.Fprintf(w, "Processing animated GIF (%d frames)...\n", cls.Frames)
		return
	}

	fmt.Fprintln(w, "Processing static image...")
}

func printError(w io.Writer, req model.ProcessingRequest, err error) {
	switch {
	case errors.Is(err, convert.ErrFileNotFound):
		fmt.Fprintf(w, "Error: file %s not found\n", req.SourcePath)
	case errors.Is(err, convert.ErrNoOperation):
		fmt.Fprintln(w, "Error: select at least one operation (--grayscale or --flip)")
	default:
		fmt.Fprintf(w, "Error processing %s: %v\n", req.SourcePath, err)
	}
}

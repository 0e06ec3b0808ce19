package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/cam-per/goilda/ilda"
	"github.com/cam-per/goilda/internal/config"
	"github.com/cam-per/goilda/internal/logging"
	"github.com/cam-per/goilda/utils"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "ildadump",
		Usage:   "inspect ILDA laser show files",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML configuration",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "List the records of each file",
				ArgsUsage: "FILE...",
				Action:    infoAction,
			},
			{
				Name:      "points",
				Usage:     "Print every point of every frame",
				ArgsUsage: "FILE",
				Action:    pointsAction,
			},
			{
				Name:      "headers",
				Usage:     "Scan record headers without decoding points",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "hex", Usage: "hex dump each header"},
				},
				Action: headersAction,
			},
			{
				Name:      "quantize",
				Usage:     "Suggest a palette for the frames of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "colors", Value: 64, Usage: "palette size"},
				},
				Action: quantizeAction,
			},
		},
	}
}

var errMissingFile = errors.New("missing FILE argument")

type session struct {
	cfg      config.Config
	logger   *zap.Logger
	closeLog func() error
	out      io.Writer
}

func openSession(cmd *cli.Command) (*session, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	root := cmd.Root()
	var errOut io.Writer = os.Stderr
	if root.ErrWriter != nil {
		errOut = root.ErrWriter
	}
	logger, closeLog, err := logging.New(cfg.Log, errOut)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	var out io.Writer = os.Stdout
	if root.Writer != nil {
		out = root.Writer
	}
	return &session{cfg: cfg, logger: logger, closeLog: closeLog, out: out}, nil
}

func (s *session) options() []ilda.Option {
	opts := []ilda.Option{ilda.WithLogger(s.logger)}
	if s.cfg.Palette != nil {
		opts = append(opts, ilda.WithPalette(s.cfg.Palette.Palette()))
	}
	return opts
}

func (s *session) Close() {
	if err := s.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
}

func infoAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return errMissingFile
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	paths := cmd.Args().Slice()
	results, err := ilda.DecodeFiles(ctx, paths, s.cfg.Workers, s.options()...)
	if err != nil {
		return err
	}
	for i, records := range results {
		size := "?"
		if fi, err := os.Stat(paths[i]); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		fmt.Fprintf(s.out, "%s: %s, %d records\n", paths[i], size, len(records))
		for j, rec := range records {
			fmt.Fprintf(s.out, "  [%d] %s\n", j, rec)
		}
		s.logger.Debug("listed file", zap.String("path", paths[i]), zap.Int("records", len(records)))
	}
	return nil
}

func pointsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return errMissingFile
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := ilda.DecodeFile(cmd.Args().First(), s.options()...)
	if err != nil {
		return err
	}
	for i, frame := range ilda.Frames(records) {
		fmt.Fprintf(s.out, "frame %d %q %s\n", i, frame.Name, frame.Format)
		for _, p := range frame.Points {
			fmt.Fprintf(s.out, "%9.5f %9.5f %9.5f %s blanked=%t index=%d\n",
				p.X, p.Y, p.Z, p.Color, p.Blanked, p.PaletteIndex)
		}
	}
	return nil
}

func headersAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return errMissingFile
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path := cmd.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	headers, err := ilda.ScanHeaders(data)
	if err != nil {
		return err
	}
	for _, hdr := range headers {
		fmt.Fprintf(s.out, "%08x %-12s %-8q %-8q count=%d number=%d total=%d head=%d\n",
			hdr.Offset, hdr.Format, utils.TrimPadding(hdr.Name), utils.TrimPadding(hdr.Company),
			hdr.Count, hdr.Number, hdr.Total, hdr.ScannerHead)
		if cmd.Bool("hex") {
			if err := utils.HexDump(s.out, bytes.NewReader(data), int64(hdr.Offset), ilda.HeaderSize); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(s.out, "%d headers, %s\n", len(headers), humanize.Bytes(uint64(len(data))))
	return nil
}

func quantizeAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return errMissingFile
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := ilda.DecodeFile(cmd.Args().First(), s.options()...)
	if err != nil {
		return err
	}
	palette := ilda.QuantizePalette(ilda.Frames(records), int(cmd.Int("colors")))
	fmt.Fprintln(s.out, palette)
	for i, c := range palette.Colors {
		fmt.Fprintf(s.out, "%3d %s\n", i, c)
	}
	return nil
}

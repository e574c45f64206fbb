// Command markup translates problem statement markup to HTML, JSON, LaTeX or plain text.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eolymp/go-markup"
	"github.com/eolymp/go-markup/htmlrender"
	"github.com/eolymp/go-markup/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configFile string
	verbose    bool

	config *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var cmdRoot = &cobra.Command{
		Use:          "markup",
		Short:        "problem statement markup translator",
		Long:         `Markup translates LaTeX-like problem statement markup into a tree of nodes and renders it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			level, err := zapcore.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}

			if a.verbose {
				level = zapcore.DebugLevel
			}

			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(level)

			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.config = cfg
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmdRoot.PersistentFlags().StringVar(&a.configFile, "config", "", "load configuration from YAML file")
	cmdRoot.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "log debugging information")

	cmdRoot.AddCommand(a.cmdRender())
	cmdRoot.AddCommand(cmdVersion())

	return cmdRoot
}

func (a *app) cmdRender() *cobra.Command {
	var format string
	var outputFile string

	var cmd = &cobra.Command{
		Use:   "render [file]",
		Short: "translate a markup file (or standard input)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.config.Format
			}

			if !config.IsFormat(format) {
				return fmt.Errorf("unsupported format %q, expected one of %v", format, config.Formats)
			}

			source, err := a.read(cmd, args)
			if err != nil {
				return err
			}

			started := time.Now()
			nodes := markup.Parse(string(source))

			a.logger.Debug("Parsed document",
				zap.Int("bytes", len(source)),
				zap.Int("nodes", len(nodes)),
				zap.Duration("elapsed", time.Since(started)))

			if outputFile == "" {
				return a.write(cmd.OutOrStdout(), format, nodes)
			}

			file, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("unable to create output file: %w", err)
			}

			if err := a.write(file, format, nodes); err != nil {
				_ = file.Close()
				return err
			}

			if err := file.Close(); err != nil {
				return fmt.Errorf("unable to close output file: %w", err)
			}

			a.logger.Info("Output written", zap.String("path", outputFile), zap.String("format", format))

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", format, "output format: html, json, latex or text")
	cmd.Flags().StringVar(&outputFile, "output", outputFile, "save output to file")

	return cmd
}

func (a *app) read(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("unable to read standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read input file: %w", err)
	}

	a.logger.Debug("Input loaded", zap.String("path", args[0]))

	return data, nil
}

func (a *app) write(w io.Writer, format string, nodes []markup.Node) error {
	switch format {
	case "html":
		renderer, err := htmlrender.New(
			htmlrender.WithHighlight(a.config.HTML.Highlight),
			htmlrender.WithClassPrefix(a.config.HTML.ClassPrefix),
			htmlrender.WithMathClass(a.config.HTML.MathClass),
		)

		if err != nil {
			return fmt.Errorf("unable to create html renderer: %w", err)
		}

		return renderer.Render(w, nodes)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(nodes); err != nil {
			return fmt.Errorf("unable to encode json: %w", err)
		}

		return nil
	case "latex":
		return markup.Render(w, nodes)
	case "text":
		_, err := fmt.Fprint(w, markup.String(nodes))
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false

	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(cmd.OutOrStdout(), markup.Version().String())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), markup.Version().Core())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Egor213/TerraTrack/internal/tflog"
	"github.com/Egor213/TerraTrack/internal/upload"
	"github.com/Egor213/TerraTrack/pkg/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultMaxBytes = 64 << 20

type options struct {
	level    string
	maxBytes int64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tflogctl",
		Short:         "Inspect Terraform JSON logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetupCLILogger(opts.level, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&opts.level, "log-level", "warn", "log level")
	root.PersistentFlags().Int64Var(&opts.maxBytes, "max-bytes", defaultMaxBytes, "decompressed size limit")

	root.AddCommand(
		fileCmd(opts, "repair", "Print records with missing levels and timestamps filled in",
			func(filename, text string) any {
				records, fixed := tflog.Repair(tflog.Ingest(text))
				log.WithFields(log.Fields{"file": filename, "fixed": fixed}).Info("Repaired")
				return records
			}),
		fileCmd(opts, "sections", "Print INIT, PLAN and APPLY sections",
			func(_, text string) any {
				records, _ := tflog.Repair(tflog.Ingest(text))
				return tflog.Segment(records)
			}),
		fileCmd(opts, "timeline", "Print per-request timelines",
			func(_, text string) any {
				records, _ := tflog.Repair(tflog.Ingest(text))
				return tflog.Aggregate(records)
			}),
		fileCmd(opts, "analyze", "Print the full analysis",
			func(filename, text string) any {
				return tflog.Analyze(filename, text)
			}),
	)
	return root
}

func fileCmd(opts *options, use, short string, run func(filename, text string) any) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFile(args[0], opts.maxBytes)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), run(args[0], text))
		},
	}
}

func readFile(filename string, maxBytes int64) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := upload.Decode(filename, f, maxBytes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return text, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

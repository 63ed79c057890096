package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewRoot builds the texcodec CLI's command tree: encode/decode a single
// 16x16-tiled image, tile/reassemble an image without transform, and
// bench two compression backends against a quality sweep.
func NewRoot(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:   "texcodec",
		Short: "a JPEG-like lossy block codec for real-time texture streaming",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			jsonLog, _ := cmd.Flags().GetBool("log-json")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}
			slog.SetDefault(newLogger(os.Stderr, jsonLog, level))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "emit structured JSON logs instead of text")

	root.AddCommand(
		NewEncodeCmd(ctx),
		NewDecodeCmd(ctx),
		NewTileCmd(ctx),
		NewBenchCmd(ctx),
	)
	return root
}

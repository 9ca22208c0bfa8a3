// Package cli implements the parabolines command-line interface.
//
// The CLI drives the sketch library from the terminal: `play` opens a
// desktop window running a sketch, `render` writes frames to PNG files
// or an animated GIF, and `sketches` lists the built-in gallery. It is
// built on cobra with charmbracelet/log for output; --verbose flips
// both the CLI logger and the library's slog output to debug level.
package cli

import (
	"context"
	"math/rand"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Ejjaffe/parabolines"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the parabolines CLI and returns an error if any command
// fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "parabolines",
		Short:        "Animated parabola line-field sketches",
		Long:         `parabolines renders generative-art sketches: fields of horizontal lines bounded by a parabola, placed by stratified sampling and drifted frame by frame.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
				parabolines.SetLogger(newLibraryLogger(os.Stderr))
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate("parabolines " + version + " (" + commit + ")\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newSketchesCmd())

	return root.ExecuteContext(ctx)
}

// newSource creates the random source for a run. A zero seed means
// "pick one from the clock"; the chosen seed is returned so it can be
// logged and replayed.
func newSource(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Ejjaffe/parabolines"
	"github.com/Ejjaffe/parabolines/internal/display"
)

func newPlayCmd() *cobra.Command {
	var (
		sketch string
		file   string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run a sketch in a desktop window",
		Long: `Play opens a window and animates a sketch at 60 frames per second
until the window is closed or Escape is pressed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			src, chosen := newSource(seed)
			log.Debug("random source ready", "seed", chosen)

			var (
				scene *parabolines.Scene
				err   error
			)
			if file != "" {
				scene, err = loadSketchFile(file, 1, src)
			} else {
				scene, err = parabolines.BuildSketch(sketch, src)
			}
			if err != nil {
				return err
			}

			log.Info("opening window", "sketch", sketchName(sketch, file), "seed", chosen)
			return display.Run("parabolines", scene)
		},
	}

	cmd.Flags().StringVarP(&sketch, "sketch", "s", "solo", "built-in sketch to play")
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML sketch file (overrides --sketch)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")

	return cmd
}

// sketchName reports which sketch a run used, preferring the file.
func sketchName(sketch, file string) string {
	if file != "" {
		return file
	}
	return sketch
}

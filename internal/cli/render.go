package cli

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/Ejjaffe/parabolines"
)

// renderOptions carries the flags of the render command.
type renderOptions struct {
	sketch string
	file   string
	seed   int64
	frames int
	outDir string
	gifOut string
	scale  int
	delay  int
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a sketch to PNG frames or an animated GIF",
		Long: `Render advances a sketch frame by frame offline and writes the result
to numbered PNG files, an animated GIF, or both. With --scale the frames
are drawn at a multiple of the nominal size and downscaled, which
anti-aliases the line work.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sketch, "sketch", "s", "solo", "built-in sketch to render")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML sketch file (overrides --sketch)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 120, "number of frames to render")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "directory for numbered PNG frames")
	cmd.Flags().StringVar(&opts.gifOut, "gif", "", "path of the animated GIF to write")
	cmd.Flags().IntVar(&opts.scale, "scale", 1, "supersampling factor")
	cmd.Flags().IntVar(&opts.delay, "delay", 3, "GIF frame delay in 10ms units")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	log := loggerFromContext(cmd.Context())

	if opts.outDir == "" && opts.gifOut == "" {
		return fmt.Errorf("nothing to do: pass --out and/or --gif")
	}
	if opts.frames < 1 {
		return fmt.Errorf("frames must be >= 1, got %d", opts.frames)
	}
	if opts.scale < 1 {
		opts.scale = 1
	}

	src, seed := newSource(opts.seed)
	log.Debug("random source ready", "seed", seed)

	var (
		scene *parabolines.Scene
		err   error
	)
	if opts.file != "" {
		scene, err = loadSketchFile(opts.file, opts.scale, src)
	} else {
		scene, err = parabolines.BuildSketchSized(opts.sketch,
			parabolines.DefaultWidth*opts.scale,
			parabolines.DefaultHeight*opts.scale, src)
	}
	if err != nil {
		return err
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	nominalW := scene.Width / opts.scale
	nominalH := scene.Height / opts.scale

	cv := parabolines.NewCanvas(scene.Width, scene.Height)
	anim := &gif.GIF{}
	start := time.Now()

	for i := 0; i < opts.frames; i++ {
		scene.Frame(cv)

		img := cv.Image()
		if opts.scale > 1 {
			img = downscale(img, nominalW, nominalH)
		}

		if opts.outDir != "" {
			name := filepath.Join(opts.outDir, fmt.Sprintf("frame_%04d.png", i))
			if err := savePNG(name, img); err != nil {
				return err
			}
		}
		if opts.gifOut != "" {
			anim.Image = append(anim.Image, quantize(img))
			anim.Delay = append(anim.Delay, opts.delay)
		}
	}

	if opts.gifOut != "" {
		if err := saveGIF(opts.gifOut, anim); err != nil {
			return err
		}
		log.Info("wrote GIF", "path", opts.gifOut, "frames", opts.frames)
	}
	if opts.outDir != "" {
		log.Info("wrote PNG frames", "dir", opts.outDir, "frames", opts.frames)
	}
	log.Info(fmt.Sprintf("rendered %d frames (%s)", opts.frames,
		time.Since(start).Round(time.Millisecond)), "seed", seed)

	return nil
}

// downscale resamples img to w x h with a Catmull-Rom kernel. Rendering
// large and downscaling is what anti-aliases the line work.
func downscale(img *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// quantize converts a frame to a paletted image for GIF encoding,
// dithering over the Plan 9 palette.
func quantize(img *image.RGBA) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
	return p
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}

func saveGIF(path string, g *gif.GIF) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return gif.EncodeAll(f, g)
}

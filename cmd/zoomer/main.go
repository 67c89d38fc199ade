// Command zoomer is an interactive screen magnifier.
//
// It captures the whole desktop once, opens a fullscreen window on the
// chosen monitor and lets you pan and zoom over the frozen image.
//
// Mouse:
//
//	wheel            zoom in / out
//	alt + wheel      grid opacity
//	right drag       pan
//
// Keys (defaults, see zoomer/config.toml):
//
//	arrows, WASD     pan
//	1-9              jump to monitor
//	G                toggle grid
//	shift            hold the highlighted grid row
//	Q                quit
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/backend/ebiten"
	"github.com/gogpu/zoomer/capture"
	"github.com/gogpu/zoomer/config"
	"github.com/gogpu/zoomer/render"
	_ "github.com/gogpu/zoomer/render/raster"
	"github.com/gogpu/zoomer/session"
)

// rawDumpPath is where --dump writes the raw capture.
const rawDumpPath = "image.rgba"

// Options holds the command-line flags.
type Options struct {
	ZoomTime    float64
	ConfigPath  string
	Monitor     int
	ImagePath   string
	Snapshot    string
	Dump        bool
	Windowed    bool
	PrintConfig bool
	Debug       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage(c *cobra.Command, err error) error {
	fmt.Fprintln(c.ErrOrStderr(), err)
	_ = c.Usage()
	return nil
}

func newRootCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "zoomer [flags]",
		Short: "Interactive screen magnifier",
		Long: `zoomer captures the whole desktop once and lets you pan and zoom over
the frozen image with the mouse and keyboard, with an optional pixel grid.`,
		Example: `  # Magnify the desktop, starting on the second monitor
  zoomer -m 1

  # Slower zoom animation
  zoomer -t 0.6

  # Render the first frame of a still image to a PNG without a window
  zoomer -i screenshot.png -o frame.png`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usage(cmd, fmt.Errorf("unexpected argument %q", args[0]))
			}
			return run(cmd, opts)
		},
	}

	// Unknown flags and stray arguments print the usage and exit successfully.
	cmd.SetFlagErrorFunc(usage)

	f := cmd.Flags()
	f.Float64VarP(&opts.ZoomTime, "zoom-time", "t", zoomer.DefaultConfig().ZoomDuration, "Zoom animation duration in seconds")
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	f.IntVarP(&opts.Monitor, "monitor", "m", 0, "Start monitor (0-based)")
	f.StringVarP(&opts.ImagePath, "image", "i", "", "Magnify a still image instead of capturing the screen")
	f.StringVarP(&opts.Snapshot, "snapshot", "o", "", "Render the first frame to a PNG file and exit")
	f.BoolVar(&opts.Dump, "dump", false, "Write the raw capture to "+rawDumpPath)
	f.BoolVarP(&opts.Windowed, "windowed", "w", false, "Open a window instead of going fullscreen")
	f.BoolVar(&opts.PrintConfig, "print-config", false, "Print the effective configuration file and exit")
	f.BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts Options) error {
	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	zoomer.SetLogger(slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	file, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.PrintConfig {
		return file.Encode(cmd.OutOrStdout())
	}

	var overrides []zoomer.Option
	if cmd.Flags().Changed("zoom-time") {
		overrides = append(overrides, zoomer.WithZoomDuration(opts.ZoomTime))
	}
	cfg, err := file.Config(overrides...)
	if err != nil {
		return err
	}
	bindings, err := file.Bindings()
	if err != nil {
		return err
	}

	snap, err := grab(opts.ImagePath)
	if err != nil {
		return err
	}
	if opts.Dump {
		if err := dumpRaw(snap); err != nil {
			return err
		}
	}

	display := snap.Display(opts.Monitor)
	w, h := display.Dx(), display.Dy()
	sess := session.New(snap, &cfg, bindings, w, h, session.WithMonitor(opts.Monitor))

	if opts.Snapshot != "" {
		return saveFrame(sess, opts.Snapshot)
	}
	return ebiten.Run(sess, w, h, ebiten.Options{Windowed: opts.Windowed})
}

func loadConfig(path string) (*config.File, error) {
	if path != "" {
		return config.Load(path)
	}
	file, found, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}
	if found != "" {
		zoomer.Logger().Debug("zoomer: loaded configuration", "path", found)
	}
	return file, nil
}

func grab(imagePath string) (*capture.Snapshot, error) {
	if imagePath != "" {
		snap, err := capture.Load(imagePath)
		if err != nil {
			return nil, zoomer.NewInitError("image", err)
		}
		return snap, nil
	}
	snap, err := capture.Grab()
	if err != nil {
		return nil, zoomer.NewInitError("capture", err)
	}
	return snap, nil
}

func dumpRaw(snap *capture.Snapshot) error {
	f, err := os.Create(rawDumpPath)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if err := snap.DumpRaw(f); err != nil {
		_ = f.Close()
		return err
	}
	zoomer.Logger().Info("zoomer: wrote raw capture", "path", rawDumpPath,
		"width", snap.Width, "height", snap.Height)
	return f.Close()
}

// pngSaver is implemented by render backends that can write their output.
type pngSaver interface {
	SavePNG(path string) error
}

// saveFrame renders the session's first frame headless and writes it as PNG.
func saveFrame(sess *session.Session, path string) error {
	backend, err := render.NewBackend("raster", sess.Snapshot().Image())
	if err != nil {
		return zoomer.NewInitError("renderer", err)
	}
	saver, ok := backend.(pngSaver)
	if !ok {
		return zoomer.NewInitError("renderer", fmt.Errorf("backend %T cannot save PNG", backend))
	}

	frame := sess.Frame()
	if err := frame.Playback(backend); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := saver.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	zoomer.Logger().Info("zoomer: wrote snapshot", "path", path,
		"size", image.Pt(frame.Width(), frame.Height()))
	return nil
}

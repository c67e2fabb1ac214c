// Command nv21tool crops, overlays and rotates raw NV21 frames.
//
// Frames are raw files with no header: the luma plane followed by the
// interleaved V,U plane. Dimensions are always given on the command line.
//
//	nv21tool crop --in cam.nv21 --width 1280 --height 720 \
//	    --left 320 --top 180 --crop-width 640 --crop-height 360 --out crop.nv21
//	nv21tool overlay --in cam.nv21 --width 1280 --height 720 \
//	    --overlay logo.nv21 --overlay-width 128 --overlay-height 64 \
//	    --left 16 --top 16 --transparent --out out.nv21
//	nv21tool rotate --in cam.nv21 --width 1280 --height 720 --angle 90 --out - | ffplay ...
//	nv21tool apply --config nv21.yaml --in capture.nv21 --out branded.nv21
//
// Passing "-" as --in reads standard input; "-" as --out writes standard
// output, which is refused when standard output is a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	t := &tool{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stdoutIsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}
	if err := t.app().Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("nv21tool failed")
		os.Exit(1)
	}
}

// tool holds the process streams so commands can be run from tests.
type tool struct {
	stdin            io.Reader
	stdout           io.Writer
	stdoutIsTerminal func() bool
}

func (t *tool) app() *cli.App {
	return &cli.App{
		Name:  "nv21tool",
		Usage: "crop, overlay and rotate raw NV21 frames",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "logrus level: trace, debug, info, warn, error",
				EnvVars: []string{"NV21_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(c.App.ErrWriter)
			logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
			return nil
		},
		Commands: []*cli.Command{
			t.cropCommand(),
			t.overlayCommand(),
			t.rotateCommand(),
			t.applyCommand(),
		},
		Writer:    t.stdout,
		ErrWriter: os.Stderr,
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/opd-ai/nv21kit/config"
	"github.com/opd-ai/nv21kit/factory"
	"github.com/opd-ai/nv21kit/nv21"
	"github.com/opd-ai/nv21kit/stream"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// frameFlags are shared by the single-frame commands.
func frameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "in", Usage: "input NV21 file, - for stdin", Required: true},
		&cli.StringFlag{Name: "out", Usage: "output NV21 file, - for stdout", Required: true},
		&cli.IntFlag{Name: "width", Usage: "input frame width", Required: true},
		&cli.IntFlag{Name: "height", Usage: "input frame height", Required: true},
	}
}

// loadFrame reads the input frame, trimming producer padding.
func (t *tool) loadFrame(c *cli.Context) ([]byte, int, int, error) {
	width, height := c.Int("width"), c.Int("height")
	data, err := t.readInput(c.String("in"))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read input: %w", err)
	}
	buf, err := nv21.Fit(data, width, height)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("input frame: %w", err)
	}
	return buf, width, height, nil
}

func (t *tool) cropCommand() *cli.Command {
	return &cli.Command{
		Name:  "crop",
		Usage: "cut a region out of a frame",
		Flags: append(frameFlags(),
			&cli.IntFlag{Name: "left", Usage: "region left edge"},
			&cli.IntFlag{Name: "top", Usage: "region top edge"},
			&cli.IntFlag{Name: "crop-width", Usage: "region width", Required: true},
			&cli.IntFlag{Name: "crop-height", Usage: "region height", Required: true},
		),
		Action: func(c *cli.Context) error {
			buf, width, height, err := t.loadFrame(c)
			if err != nil {
				return err
			}
			region := nv21.Region{
				Left:   c.Int("left"),
				Top:    c.Int("top"),
				Width:  c.Int("crop-width"),
				Height: c.Int("crop-height"),
			}
			frame, err := nv21.Crop(buf, width, height, region)
			if err != nil {
				return fmt.Errorf("crop %s: %w", region, err)
			}

			logrus.WithFields(logrus.Fields{
				"function": "crop",
				"region":   region.String(),
				"width":    frame.Width,
				"height":   frame.Height,
			}).Info("Cropped frame")

			return t.writeOutput(c.String("out"), frame.Data)
		},
	}
}

func (t *tool) overlayCommand() *cli.Command {
	return &cli.Command{
		Name:  "overlay",
		Usage: "draw one frame onto another",
		Flags: append(frameFlags(),
			&cli.StringFlag{Name: "overlay", Usage: "overlay NV21 file", Required: true},
			&cli.IntFlag{Name: "overlay-width", Usage: "overlay width", Required: true},
			&cli.IntFlag{Name: "overlay-height", Usage: "overlay height", Required: true},
			&cli.IntFlag{Name: "left", Usage: "overlay left edge in the frame"},
			&cli.IntFlag{Name: "top", Usage: "overlay top edge in the frame"},
			&cli.BoolFlag{Name: "transparent", Usage: "treat luma 0x10 and chroma 0x80 as see-through"},
		),
		Action: func(c *cli.Context) error {
			buf, width, height, err := t.loadFrame(c)
			if err != nil {
				return err
			}
			ow, oh := c.Int("overlay-width"), c.Int("overlay-height")
			data, err := os.ReadFile(c.String("overlay"))
			if err != nil {
				return fmt.Errorf("read overlay: %w", err)
			}
			fg, err := nv21.Fit(data, ow, oh)
			if err != nil {
				return fmt.Errorf("overlay frame: %w", err)
			}

			if err := nv21.Overlay(buf, width, height, c.Int("left"), c.Int("top"), fg, ow, oh, c.Bool("transparent")); err != nil {
				return fmt.Errorf("overlay: %w", err)
			}
			return t.writeOutput(c.String("out"), buf)
		},
	}
}

func (t *tool) rotateCommand() *cli.Command {
	return &cli.Command{
		Name:  "rotate",
		Usage: "rotate a frame clockwise by a multiple of 90 degrees",
		Flags: append(frameFlags(),
			&cli.IntFlag{Name: "angle", Usage: "clockwise angle in degrees", Value: 90},
		),
		Action: func(c *cli.Context) error {
			rotation, err := nv21.ParseRotation(c.Int("angle"))
			if err != nil {
				return err
			}
			buf, width, height, err := t.loadFrame(c)
			if err != nil {
				return err
			}
			frame, err := nv21.Rotate(buf, width, height, rotation)
			if err != nil {
				return fmt.Errorf("rotate: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"function": "rotate",
				"rotation": int(rotation),
				"width":    frame.Width,
				"height":   frame.Height,
			}).Info("Rotated frame")

			return t.writeOutput(c.String("out"), frame.Data)
		},
	}
}

func (t *tool) applyCommand() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "stream a multi-frame raw file through the configured overlays",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML configuration file", Required: true},
			&cli.StringFlag{Name: "in", Usage: "input NV21 stream, - for stdin", Required: true},
			&cli.StringFlag{Name: "out", Usage: "output NV21 stream, - for stdout", Required: true},
			&cli.IntFlag{Name: "rotation", Usage: "display rotation of the frames, overrides the config"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if c.IsSet("rotation") {
				cfg.Rotation = c.Int("rotation")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !c.IsSet("log-level") {
				level, _ := logrus.ParseLevel(cfg.LogLevel)
				logrus.SetLevel(level)
			}

			chain, err := factory.NewHandlerChain(&cfg, os.ReadFile)
			if err != nil {
				return err
			}

			in, err := t.openInput(c.String("in"))
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()
			out, err := t.openOutput(c.String("out"))
			if err != nil {
				return err
			}

			r, err := stream.NewReader(in, cfg.Frame.Width, cfg.Frame.Height)
			if err != nil {
				out.Close()
				return err
			}
			w, err := stream.NewWriter(out, cfg.Frame.Width, cfg.Frame.Height)
			if err != nil {
				out.Close()
				return err
			}

			stats, err := stream.Process(c.Context, r, w, cfg.Workers, chain, cfg.DisplayRotation())
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"function":       "apply",
				"frames":         stats.FramesWritten,
				"frames_handled": stats.FramesHandled,
			}).Info("Applied overlays")
			return nil
		},
	}
}

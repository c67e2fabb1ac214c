package factory

import (
	"fmt"

	"github.com/opd-ai/nv21kit/av/video"
	"github.com/opd-ai/nv21kit/config"
	"github.com/sirupsen/logrus"
)

// OpenFunc returns the raw bytes of the file at path.
type OpenFunc func(path string) ([]byte, error)

// NewHandlerChain creates one overlay processor per configured overlay and
// chains them in order. It fails on the first overlay that cannot be
// loaded or does not describe a valid NV21 image.
func NewHandlerChain(cfg *config.Config, open OpenFunc) (*video.HandlerChain, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if open == nil {
		return nil, fmt.Errorf("open function cannot be nil")
	}

	chain := video.NewHandlerChain()
	for i, o := range cfg.Overlays {
		handler, err := newOverlay(o, open)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "NewHandlerChain",
				"overlay":  i,
				"path":     o.Path,
				"error":    err.Error(),
			}).Error("Failed to create overlay processor")
			return nil, fmt.Errorf("overlay %d (%s): %w", i, o.Path, err)
		}
		chain.Add(handler)
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewHandlerChain",
		"overlays": chain.Len(),
	}).Info("Created frame handler chain")

	return chain, nil
}

func newOverlay(o config.OverlayConfig, open OpenFunc) (*video.OverlayProcessor, error) {
	data, err := open(o.Path)
	if err != nil {
		return nil, err
	}
	return video.NewOverlayProcessor(data, o.Width, o.Height, o.Left, o.Top, o.Transparent)
}

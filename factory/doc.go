// Package factory builds frame handlers from configuration.
//
// The factory keeps consumers (the CLI, capture integrations) unaware of
// how overlay images are located and loaded. Images are read through a
// caller-supplied open function, so tests can serve them from memory and
// production code from disk:
//
//	cfg, err := config.Load("nv21.yaml")
//	if err != nil {
//	    return err
//	}
//	chain, err := factory.NewHandlerChain(&cfg, os.ReadFile)
//	if err != nil {
//	    return err
//	}
//	proc := video.NewProcessor(chain)
//
// Every overlay entry becomes one video.OverlayProcessor, applied in the
// order listed.
package factory

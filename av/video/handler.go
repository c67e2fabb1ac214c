package video

import (
	"sync"

	"github.com/opd-ai/nv21kit/interfaces"
	"github.com/opd-ai/nv21kit/nv21"
)

// HandlerChain runs several frame handlers over the same buffer in order.
// Each handler sees the output of the ones before it.
type HandlerChain struct {
	mu       sync.RWMutex
	handlers []interfaces.FrameHandler
}

// NewHandlerChain creates a chain of the given handlers. Nil handlers are
// skipped.
func NewHandlerChain(handlers ...interfaces.FrameHandler) *HandlerChain {
	hc := &HandlerChain{}
	for _, h := range handlers {
		hc.Add(h)
	}
	return hc
}

// Add appends a handler to the chain.
func (hc *HandlerChain) Add(h interfaces.FrameHandler) {
	if h == nil {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.handlers = append(hc.handlers, h)
}

// Len returns the number of handlers in the chain.
func (hc *HandlerChain) Len() int {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return len(hc.handlers)
}

// HandleNV21 implements interfaces.FrameHandler. It reports true when at
// least one handler changed the frame.
func (hc *HandlerChain) HandleNV21(buf []byte, width, height int, rotation nv21.Rotation) bool {
	hc.mu.RLock()
	handlers := hc.handlers
	hc.mu.RUnlock()

	handled := false
	for _, h := range handlers {
		if h.HandleNV21(buf, width, height, rotation) {
			handled = true
		}
	}
	return handled
}

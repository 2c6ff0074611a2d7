package server

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// renderLogger tags every message of one render with its ID
type renderLogger struct {
	renderID uint64
	base     core.Logger
}

func newRenderLogger(renderID uint64, base core.Logger) core.Logger {
	return &renderLogger{renderID: renderID, base: base}
}

// Printf implements core.Logger
func (rl *renderLogger) Printf(format string, args ...interface{}) {
	rl.base.Printf("[render %d] %s", rl.renderID, fmt.Sprintf(format, args...))
}

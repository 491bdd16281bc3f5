package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline, cache and HTTP events to a logger at debug
// level. It is what `frameview -v` registers.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Register installs h as the pipeline, cache and HTTP hooks.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string, size int) {
	h.Logger.Debug("load start", "source", source, "bytes", size)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, members, nodes int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "source", source, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("load done", "source", source, "members", members, "nodes", nodes, "duration", d)
}

func (h *LogHooks) OnComposeStart(_ context.Context, members, nodes int) {
	h.Logger.Debug("compose start", "members", members, "nodes", nodes)
}

func (h *LogHooks) OnComposeComplete(_ context.Context, primitives, skipped int, d time.Duration) {
	h.Logger.Debug("compose done", "primitives", primitives, "skipped", skipped, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("render done", "formats", formats, "duration", d, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status, bytes int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "bytes", bytes, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)

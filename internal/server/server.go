package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/color"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/raster"
)

// cacheItem is one published frame.
type cacheItem struct {
	data    []byte
	etag    string
	modTime time.Time
}

// FaceServer is a headless host for the clock renderer: every refresh renders
// a PNG frame, which is published atomically and served over HTTP.
type FaceServer struct {
	// cache uses atomic.Pointer for lock-free reads: frames are read by clients
	// far more often than the once-per-second update.
	cache atomic.Pointer[cacheItem]
	Port  string

	Size       int
	Background color.NRGBA
	Renderer   *engine.Renderer

	clock clockwork.Clock

	// renderMu serializes frames, the single draw context of this host.
	renderMu sync.Mutex
}

// NewFaceServer creates a server whose refresh loop runs on clk.
// The loop starts with the first frame rendered by Start or RenderFrame.
func NewFaceServer(port string, size int, background color.NRGBA, style engine.Style, mode engine.DisplayMode, clk clockwork.Clock) *FaceServer {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	s := &FaceServer{
		Port:       port,
		Size:       size,
		Background: background,
		clock:      clk,
	}

	r := engine.NewRenderer(clk, nil)
	r.SetStyle(style)
	r.SetMode(mode)
	r.Invalidator = engine.InvalidatorFunc(s.invalidate)
	s.Renderer = r
	return s
}

// invalidate is called from the renderer's timer.
func (s *FaceServer) invalidate() {
	if err := s.RenderFrame(); err != nil {
		slog.Error(config.ErrFrameRender,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err)
	}
}

// RenderFrame draws the current face and publishes it. The renderer schedules
// the next frame as a side effect.
func (s *FaceServer) RenderFrame() error {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	start := s.clock.Now()
	canvas, err := raster.NewCanvas(s.Size, s.Size, s.Background)
	if err != nil {
		return err
	}
	defer func() { _ = canvas.Close() }()

	w, h := canvas.Bounds()
	s.Renderer.Render(canvas, w, h)
	if err := canvas.Err(); err != nil {
		return err
	}

	data, err := canvas.PNG()
	if err != nil {
		return err
	}
	s.Update(data)

	slog.Debug(config.MsgFrameRendered,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyDuration, s.clock.Since(start).Milliseconds())
	return nil
}

// Start renders the first frame, starts the HTTP server and blocks until the
// context is cancelled. The refresh loop is stopped on return.
func (s *FaceServer) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil {
		return err
	}
	defer s.Renderer.Close()

	if err := s.RenderFrame(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleFaceRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served frame.
func (s *FaceServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.cache.Store(&cacheItem{
		data:    data,
		etag:    etag,
		modTime: s.clock.Now().UTC(),
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleFaceRequest serves the latest PNG frame. Conditional and range
// requests are answered by http.ServeContent from the frame's ETag and time.
func (s *FaceServer) handleFaceRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, config.MimeImagePNG)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControl)
	h.Set(config.HeaderETag, item.etag)

	http.ServeContent(w, r, config.FrameName, item.modTime, bytes.NewReader(item.data))
}

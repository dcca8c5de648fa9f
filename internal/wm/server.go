// Package wm is the window management policy of the compositor.
//
// A Server owns the view registry, the cursor interaction state and the
// notification overlay, and implements Handler for the events a Backend
// delivers. Every method runs on the backend's event loop goroutine, so none
// of the state here is locked.
package wm

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/godalming123/tinytile/internal/config"
	"github.com/godalming123/tinytile/internal/cursor"
	"github.com/godalming123/tinytile/internal/launch"
	"github.com/godalming123/tinytile/internal/logger"
	"github.com/godalming123/tinytile/internal/notify"
	"github.com/godalming123/tinytile/internal/output"
	"github.com/godalming123/tinytile/internal/view"
)

var ErrIncompleteBackend = errors.New("backend is missing a scene, seat or cursor")

var _ Handler = (*Server)(nil)

// Server is the compositor state shared by every event handler.
type Server struct {
	cfg     *config.Config
	backend Backend
	scene   Scene
	seat    Seat
	pointer Cursor
	session Session

	launcher Launcher
	raster   notify.Rasterizer
	now      func() time.Time
	log      *log.Logger

	views    *view.Registry
	focused  *view.View
	toplevel map[view.Toplevel]*view.View
	surfaces map[view.Surface]*view.View

	grab cursor.State

	layout  *output.Layout
	outputs map[OutputDevice]*output.Output

	keyboards    []*keyboard
	seatKeyboard *keyboard

	overlay *notify.Overlay
	// set when a key or button is pressed while Alt is held, so that the
	// following Alt release does not toggle the hello message
	ignoreNextAltRelease bool

	dragIcon DragIcon
	dragNode view.Node
}

// Option configures a Server.
type Option func(*Server)

// WithLauncher replaces the process launcher.
func WithLauncher(l Launcher) Option {
	return func(s *Server) { s.launcher = l }
}

// WithRasterizer replaces the notification rasterizer.
func WithRasterizer(r notify.Rasterizer) Option {
	return func(s *Server) { s.raster = r }
}

// WithClock replaces the clock used for the hello message.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a server over b. Nothing is started until Run.
func New(cfg *config.Config, b Backend, opts ...Option) (*Server, error) {
	if b == nil || b.Scene() == nil || b.Seat() == nil || b.Cursor() == nil {
		return nil, ErrIncompleteBackend
	}
	if cfg == nil {
		cfg = config.Get()
	}

	s := &Server{
		cfg:      cfg,
		backend:  b,
		scene:    b.Scene(),
		seat:     b.Seat(),
		pointer:  b.Cursor(),
		session:  b.Session(),
		now:      time.Now,
		log:      logger.For("wm"),
		views:    view.NewRegistry(),
		toplevel: make(map[view.Toplevel]*view.View),
		surfaces: make(map[view.Surface]*view.View),
		layout:   output.NewLayout(),
		outputs:  make(map[OutputDevice]*output.Output),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.launcher == nil {
		s.launcher = launch.New()
	}
	if s.raster == nil {
		s.raster = notify.TextRasterizer{}
	}
	s.overlay = notify.New(s.scene.Overlay(), s.raster, s.layout, cfg.Notification)
	return s, nil
}

// Run opens the client socket, starts the backend, exports WAYLAND_DISPLAY
// for launched programs and serves events until Terminate.
func (s *Server) Run() error {
	socket, err := s.backend.AddSocket()
	if err != nil {
		return fmt.Errorf("failed to add wayland socket: %w", err)
	}
	if err := s.backend.Start(s); err != nil {
		return fmt.Errorf("failed to start backend: %w", err)
	}
	if err := os.Setenv("WAYLAND_DISPLAY", socket); err != nil {
		return fmt.Errorf("failed to set WAYLAND_DISPLAY: %w", err)
	}

	s.log.Info("Running Wayland compositor", "WAYLAND_DISPLAY", socket)
	if err := s.backend.Run(); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	s.log.Info("Compositor stopped")
	return nil
}

// Terminate stops the event loop.
func (s *Server) Terminate() {
	s.backend.Terminate()
}

// Focused returns the focused view, or nil.
func (s *Server) Focused() *view.View { return s.focused }

// Views returns the mapped views in cycle order.
func (s *Server) Views() []*view.View { return s.views.All() }

// ViewFor returns the view managing t.
func (s *Server) ViewFor(t view.Toplevel) *view.View { return s.toplevel[t] }

// CursorMode returns the pointer interaction mode.
func (s *Server) CursorMode() cursor.Mode { return s.grab.Mode() }

// Grabbed returns the view held by the current pointer interaction.
func (s *Server) Grabbed() *view.View { return s.grab.Grabbed() }

// Message returns the type and text of the visible notification.
func (s *Server) Message() (notify.Type, string) {
	return s.overlay.Type(), s.overlay.Text()
}

// Outputs returns the output layout.
func (s *Server) Outputs() *output.Layout { return s.layout }

// IgnoringAltRelease reports whether the next Alt release is suppressed.
func (s *Server) IgnoringAltRelease() bool { return s.ignoreNextAltRelease }

func (s *Server) run(cmd string) {
	if err := s.launcher.Run(cmd); err != nil {
		s.log.Warn("could not run command", "cmd", cmd, "err", err)
	}
}

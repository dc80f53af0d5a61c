package browse

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"go.uber.org/zap"
)

// Session owns a browser connection used for one or more fetches.
type Session struct {
	cfg    Config
	logger *zap.Logger

	mu         sync.Mutex
	browser    *rod.Browser
	controlURL string
}

// NewSession creates a session with the given configuration. A nil logger
// is replaced with a no-op logger.
func NewSession(cfg Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{cfg: cfg, logger: logger}
}

// Start launches (or attaches to) the browser. It is safe to call more
// than once; subsequent calls are no-ops while the browser is connected.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		return nil
	}

	controlURL := s.cfg.DebuggerURL
	if controlURL == "" {
		launch := launcher.New().Headless(s.cfg.Headless)
		if s.cfg.Bin != "" {
			launch = launch.Bin(s.cfg.Bin)
		}
		url, err := launch.Launch()
		if err != nil {
			return fmt.Errorf("launching browser: %w", err)
		}
		controlURL = url
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = browser
	s.controlURL = controlURL
	s.logger.Debug("browser connected", zap.String("control_url", controlURL))
	return nil
}

// ControlURL returns the WebSocket debugger URL of the running browser,
// or "" when the session has not started.
func (s *Session) ControlURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controlURL
}

// Close shuts down the browser connection.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	s.controlURL = ""
	if err != nil {
		return fmt.Errorf("closing browser: %w", err)
	}
	return nil
}

func (s *Session) ensureStarted(ctx context.Context) (*rod.Browser, error) {
	if err := s.Start(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.browser, nil
}

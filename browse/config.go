package browse

import "time"

// Config holds browser configuration.
type Config struct {
	DebuggerURL         string `json:"debugger_url"`
	Bin                 string `json:"bin"`
	Headless            bool   `json:"headless"`
	ViewportWidth       int    `json:"viewport_width"`
	ViewportHeight      int    `json:"viewport_height"`
	NavigationTimeoutMs int    `json:"navigation_timeout_ms"`
	SettleDelayMs       int    `json:"settle_delay_ms"`
	SnapshotDir         string `json:"snapshot_dir"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless:            true,
		ViewportWidth:       1920,
		ViewportHeight:      1080,
		NavigationTimeoutMs: 30000,
		SettleDelayMs:       5000,
	}
}

// GetViewportWidth returns viewport width.
func (c Config) GetViewportWidth() int {
	if c.ViewportWidth == 0 {
		return 1920
	}
	return c.ViewportWidth
}

// GetViewportHeight returns viewport height.
func (c Config) GetViewportHeight() int {
	if c.ViewportHeight == 0 {
		return 1080
	}
	return c.ViewportHeight
}

// NavigationTimeout returns the navigation timeout as a duration.
func (c Config) NavigationTimeout() time.Duration {
	if c.NavigationTimeoutMs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.NavigationTimeoutMs) * time.Millisecond
}

// SettleDelay returns how long to wait after the report frame has
// navigated before serializing the DOM. Virtualized grids keep painting
// for several seconds after navigation completes.
func (c Config) SettleDelay() time.Duration {
	if c.SettleDelayMs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

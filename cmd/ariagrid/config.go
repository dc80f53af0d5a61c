package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/ariagrid/browse"
)

// BrowserConfig mirrors browse.Config for the YAML config file.
type BrowserConfig struct {
	DebuggerURL         string `yaml:"debugger_url"`
	Bin                 string `yaml:"bin"`
	Headless            *bool  `yaml:"headless"`
	ViewportWidth       int    `yaml:"viewport_width"`
	ViewportHeight      int    `yaml:"viewport_height"`
	NavigationTimeoutMs int    `yaml:"navigation_timeout_ms"`
	SettleDelayMs       int    `yaml:"settle_delay_ms"`
	SnapshotDir         string `yaml:"snapshot_dir"`
}

// ReportConfig describes one named report.
type ReportConfig struct {
	URL string `yaml:"url"`

	// PagingControl is the index of the in-page paging button to click
	// before serializing, or -1 for none. Omitting it means -1.
	PagingControl *int `yaml:"paging_control"`

	SettleDelayMs int    `yaml:"settle_delay_ms"`
	Snapshot      string `yaml:"snapshot"`
	MinRows       int    `yaml:"min_rows"`
}

// Config is the CLI configuration file layout.
type Config struct {
	Browser BrowserConfig           `yaml:"browser"`
	Reports map[string]ReportConfig `yaml:"reports"`
}

// defaultReports covers the two reports this tool was built around. A
// config file entry with the same name overrides the default.
func defaultReports() map[string]ReportConfig {
	none := -1
	diseases := 2
	return map[string]ReportConfig{
		"outbreaks": {
			URL:           "https://app.powerbi.com/view?r=eyJrIjoiMzIxNGU5ODMtNmRjZi00OWNmLWIwYWUtMmY0MzA2NzZmZjYyIiwidCI6ImRmY2MwMzNkLWRmODctNGM2ZS1hMWI4LThlYWE3M2YxYjcyZSJ9&pageName=ReportSection7971162d78b00a048576",
			PagingControl: &none,
			Snapshot:      "outbreaks",
		},
		"diseases-of-ph-significance": {
			URL:           "https://app.powerbi.com/view?r=eyJrIjoiODVkZmU3NzItNTliYi00YzFlLTk2ZWItODcwOWU5NDhlMGU3IiwidCI6ImRmY2MwMzNkLWRmODctNGM2ZS1hMWI4LThlYWE3M2YxYjcyZSJ9&pageName=ReportSection1b2070dda67567cb9a79",
			PagingControl: &diseases,
			SettleDelayMs: 4000,
			Snapshot:      "diseases-of-ph-significance",
		},
	}
}

// loadConfig reads the YAML config file (when path is non-empty) and
// merges it over the built-in defaults.
func loadConfig(path string) (Config, error) {
	cfg := Config{Reports: defaultReports()}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Browser = fileCfg.Browser
	for name, report := range fileCfg.Reports {
		cfg.Reports[name] = report
	}
	return cfg, nil
}

// browseConfig converts the YAML browser section to a browse.Config.
func (c Config) browseConfig() browse.Config {
	out := browse.DefaultConfig()
	out.DebuggerURL = c.Browser.DebuggerURL
	out.Bin = c.Browser.Bin
	if c.Browser.Headless != nil {
		out.Headless = *c.Browser.Headless
	}
	if c.Browser.ViewportWidth > 0 {
		out.ViewportWidth = c.Browser.ViewportWidth
	}
	if c.Browser.ViewportHeight > 0 {
		out.ViewportHeight = c.Browser.ViewportHeight
	}
	if c.Browser.NavigationTimeoutMs > 0 {
		out.NavigationTimeoutMs = c.Browser.NavigationTimeoutMs
	}
	if c.Browser.SettleDelayMs > 0 {
		out.SettleDelayMs = c.Browser.SettleDelayMs
	}
	out.SnapshotDir = c.Browser.SnapshotDir
	return out
}

// request converts a report entry to a browse.Request.
func (r ReportConfig) request() browse.Request {
	req := browse.Request{
		URL:           r.URL,
		PagingControl: -1,
		SnapshotName:  r.Snapshot,
	}
	if r.PagingControl != nil {
		req.PagingControl = *r.PagingControl
	}
	if r.SettleDelayMs > 0 {
		req.SettleDelay = millis(r.SettleDelayMs)
	}
	return req
}

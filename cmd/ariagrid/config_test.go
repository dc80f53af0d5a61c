package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	outbreaks, ok := cfg.Reports["outbreaks"]
	require.True(t, ok)
	assert.Contains(t, outbreaks.URL, "app.powerbi.com/view")
	require.NotNil(t, outbreaks.PagingControl)
	assert.Equal(t, -1, *outbreaks.PagingControl)
	assert.Equal(t, "outbreaks", outbreaks.Snapshot)

	diseases, ok := cfg.Reports["diseases-of-ph-significance"]
	require.True(t, ok)
	require.NotNil(t, diseases.PagingControl)
	assert.Equal(t, 2, *diseases.PagingControl)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `browser:
  headless: false
  navigation_timeout_ms: 10000
  snapshot_dir: /tmp/snapshots
reports:
  outbreaks:
    url: https://example.com/override
  weekly:
    url: https://example.com/weekly
    paging_control: 1
    min_rows: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	// File entry overrides the built-in default of the same name.
	assert.Equal(t, "https://example.com/override", cfg.Reports["outbreaks"].URL)

	// Built-in reports not mentioned in the file survive the merge.
	_, ok := cfg.Reports["diseases-of-ph-significance"]
	assert.True(t, ok)

	weekly, ok := cfg.Reports["weekly"]
	require.True(t, ok)
	require.NotNil(t, weekly.PagingControl)
	assert.Equal(t, 1, *weekly.PagingControl)
	assert.Equal(t, 2, weekly.MinRows)

	browser := cfg.browseConfig()
	assert.False(t, browser.Headless)
	assert.Equal(t, 10*time.Second, browser.NavigationTimeout())
	assert.Equal(t, "/tmp/snapshots", browser.SnapshotDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestReportRequest(t *testing.T) {
	report := ReportConfig{
		URL:           "https://example.com/report",
		SettleDelayMs: 2000,
		Snapshot:      "weekly",
	}

	req := report.request()
	assert.Equal(t, "https://example.com/report", req.URL)
	assert.Equal(t, -1, req.PagingControl, "omitted paging control means none")
	assert.Equal(t, 2*time.Second, req.SettleDelay)
	assert.Equal(t, "weekly", req.SnapshotName)

	two := 2
	report.PagingControl = &two
	assert.Equal(t, 2, report.request().PagingControl)
}

package browse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request describes a single page retrieval.
type Request struct {
	// URL is the published report address.
	URL string

	// PagingControl selects the nth in-page paging button to click after
	// the report settles. Use -1 to skip paging; most reports render
	// their grid on the landing page.
	PagingControl int

	// SettleDelay overrides the session's settle delay when non-zero.
	SettleDelay time.Duration

	// SnapshotName, when set, saves the retrieved markup to
	// last-retrieval-<name>.html under the configured snapshot
	// directory.
	SnapshotName string
}

// fetchState tracks the page lifecycle events for one retrieval.
type fetchState struct {
	id             string
	frameNavigated atomic.Bool
	dclEvents      atomic.Int64
}

// pagingSelector matches the report's in-page navigation buttons.
const pagingSelector = `div.pageNavigator[role="button"]`

// Fetch loads the report at req.URL, waits for the embedded report frame
// to navigate and settle, optionally clicks a paging control, and returns
// the serialized DOM.
func (s *Session) Fetch(ctx context.Context, req Request) (string, error) {
	browser, err := s.ensureStarted(ctx)
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.cfg.GetViewportWidth(),
		Height:            s.cfg.GetViewportHeight(),
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", fmt.Errorf("setting viewport: %w", err)
	}

	state := &fetchState{id: uuid.NewString()}
	logger := s.logger.With(zap.String("fetch_id", state.id), zap.String("url", req.URL))

	waitEvents := page.Context(ctx).EachEvent(
		func(ev *proto.PageFrameNavigated) {
			logger.Debug("frame navigated", zap.String("frame_url", ev.Frame.URL))
			state.frameNavigated.Store(true)
		},
		func(ev *proto.PageDomContentEventFired) {
			n := state.dclEvents.Add(1)
			logger.Debug("domcontentloaded fired", zap.Int64("count", n))
		},
	)
	go waitEvents()

	if err := page.Context(ctx).Timeout(s.cfg.NavigationTimeout()).Navigate(req.URL); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", req.URL, err)
	}
	logger.Debug("navigation returned")

	// The report loads in a child frame well after the outer page's
	// domcontentloaded. Wait for the frame navigation, then give the
	// virtualized grid time to paint.
	if err := s.waitForFrame(ctx, state); err != nil {
		return "", err
	}

	settle := s.cfg.SettleDelay()
	if req.SettleDelay > 0 {
		settle = req.SettleDelay
	}

	if req.PagingControl >= 0 {
		if err := sleepCtx(ctx, settle); err != nil {
			return "", err
		}
		if err := s.clickPagingControl(ctx, page, req.PagingControl, logger); err != nil {
			return "", err
		}
	}

	if err := sleepCtx(ctx, settle); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("serializing DOM: %w", err)
	}
	logger.Debug("DOM serialized", zap.Int("bytes", len(html)), zap.Int64("dcl_events", state.dclEvents.Load()))

	if req.SnapshotName != "" {
		if err := s.writeSnapshot(req.SnapshotName, html); err != nil {
			logger.Warn("snapshot write failed", zap.Error(err))
		}
	}

	return html, nil
}

// waitForFrame polls until the first frame navigation is observed or the
// navigation timeout elapses.
func (s *Session) waitForFrame(ctx context.Context, state *fetchState) error {
	deadline := time.Now().Add(s.cfg.NavigationTimeout())
	for !state.frameNavigated.Load() {
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for report frame navigation")
		}
		if err := sleepCtx(ctx, time.Second); err != nil {
			return err
		}
	}
	return nil
}

// clickPagingControl clicks the nth paging button. The control sits in an
// overflow container that reports it as hidden, so it is force-marked
// visible before the click.
func (s *Session) clickPagingControl(ctx context.Context, page *rod.Page, n int, logger *zap.Logger) error {
	controls, err := page.Context(ctx).Elements(pagingSelector)
	if err != nil {
		return fmt.Errorf("finding paging controls: %w", err)
	}
	if n >= len(controls) {
		return fmt.Errorf("paging control %d not found (%d controls on page)", n, len(controls))
	}
	control := controls[n]

	if _, err := control.Eval(`() => this.setAttribute('visible', 'true')`); err != nil {
		return fmt.Errorf("revealing paging control: %w", err)
	}
	if err := control.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("clicking paging control: %w", err)
	}
	logger.Debug("paging control clicked", zap.Int("control", n))
	return nil
}

func (s *Session) writeSnapshot(name, html string) error {
	filename := fmt.Sprintf("last-retrieval-%s.html", name)
	path := filepath.Join(s.cfg.SnapshotDir, filename)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	s.logger.Debug("snapshot written", zap.String("path", path))
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/securevault/internal/client/services"
	"github.com/dmitrijs2005/securevault/internal/logging"
)

// maxClipboardSize caps what is put on the clipboard.
const maxClipboardSize = 1 << 20

// Clipboard seams for tests.
var (
	clipboardWriteAll = clipboard.WriteAll
	clipboardReadAll  = clipboard.ReadAll
)

// clipboardManager copies secrets and wipes them again after clearDelay,
// unless the user has copied something else in the meantime.
type clipboardManager struct {
	clearDelay time.Duration
	logger     logging.Logger

	mu       sync.Mutex
	timer    *time.Timer
	lastCopy string
}

var _ services.Clipboard = (*clipboardManager)(nil)

func newClipboardManager(clearDelay time.Duration, logger logging.Logger) *clipboardManager {
	return &clipboardManager{clearDelay: clearDelay, logger: logger.With("module", "clipboard")}
}

func (m *clipboardManager) Copy(text string) error {
	if len(text) > maxClipboardSize {
		return fmt.Errorf("clipboard content too large: %d bytes", len(text))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	m.lastCopy = text

	if m.clearDelay > 0 {
		m.timer = time.AfterFunc(m.clearDelay, m.clearIfUnchanged)
	}
	return nil
}

func (m *clipboardManager) clearIfUnchanged() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer = nil
	if err := m.clearLocked(); err != nil {
		m.logger.Warn(context.Background(), "failed to auto-clear clipboard", "error", err)
	}
}

func (m *clipboardManager) clearLocked() error {
	if m.lastCopy == "" {
		return nil
	}

	current, err := clipboardReadAll()
	if err != nil {
		return fmt.Errorf("cannot verify clipboard content: %w", err)
	}
	if current != m.lastCopy {
		m.lastCopy = ""
		return nil
	}

	if err := clipboardWriteAll(""); err != nil {
		return err
	}
	m.lastCopy = ""
	return nil
}

// Close clears a pending secret right away.
func (m *clipboardManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	return m.clearLocked()
}

// Package clipboard copies template payloads with a primary and a fallback
// path and drives the transient "copied" confirmation.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/ziadkadry99/ffsite/internal/clock"
)

// ConfirmDuration is how long the copied state stays visible.
const ConfirmDuration = 2 * time.Second

// ErrUnavailable is returned by a path that cannot run in this environment.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	Copy(text string) error
}

// System writes through the platform clipboard utility.
type System struct{}

// Copy implements Clipboard.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set its clipboard via an escape sequence.
// It works over SSH where no local clipboard utility exists.
type OSC52 struct {
	Out io.Writer
}

// Copy implements Clipboard.
func (o OSC52) Copy(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// CopyError is returned when both paths fail.
type CopyError struct {
	Primary  error
	Fallback error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy failed: primary: %v; fallback: %v", e.Primary, e.Fallback)
}

func (e *CopyError) Unwrap() []error { return []error{e.Primary, e.Fallback} }

// Copier tries Primary, then Fallback. The fallback runs only when the
// primary path fails or is missing.
type Copier struct {
	Primary  Clipboard
	Fallback Clipboard
	Logger   *slog.Logger
}

// NewCopier returns the default terminal copier: the system clipboard with
// an OSC 52 fallback written to out.
func NewCopier(out io.Writer, logger *slog.Logger) *Copier {
	return &Copier{Primary: System{}, Fallback: OSC52{Out: out}, Logger: logger}
}

// Copy copies text. It returns a *CopyError when no path succeeded.
func (c *Copier) Copy(text string) error {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	primaryErr := ErrUnavailable
	if c.Primary != nil {
		if primaryErr = c.Primary.Copy(text); primaryErr == nil {
			return nil
		}
		logger.Debug("primary clipboard failed, using fallback", "error", primaryErr)
	}

	fallbackErr := ErrUnavailable
	if c.Fallback != nil {
		if fallbackErr = c.Fallback.Copy(text); fallbackErr == nil {
			return nil
		}
	}
	err := &CopyError{Primary: primaryErr, Fallback: fallbackErr}
	logger.Warn("copy failed", "error", err)
	return err
}

// Confirmation tracks the transient copied state. Each Show restarts the
// timer so the last copy wins; when it expires onRevert runs.
type Confirmation struct {
	clock    clock.Clock
	duration time.Duration
	onRevert func()

	mu     sync.Mutex
	timer  clock.Timer
	active bool
	gen    uint64
}

// NewConfirmation creates a Confirmation. A zero duration uses
// ConfirmDuration; a nil clock uses the real one.
func NewConfirmation(c clock.Clock, d time.Duration, onRevert func()) *Confirmation {
	if c == nil {
		c = clock.Real{}
	}
	if d <= 0 {
		d = ConfirmDuration
	}
	return &Confirmation{clock: c, duration: d, onRevert: onRevert}
}

// Show enters the copied state, cancelling any pending revert.
func (cf *Confirmation) Show() {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	if cf.timer != nil {
		cf.timer.Stop()
	}
	cf.gen++
	gen := cf.gen
	cf.active = true
	cf.timer = cf.clock.AfterFunc(cf.duration, func() {
		cf.mu.Lock()
		if gen != cf.gen {
			cf.mu.Unlock()
			return
		}
		cf.active = false
		cf.timer = nil
		revert := cf.onRevert
		cf.mu.Unlock()
		if revert != nil {
			revert()
		}
	})
}

// Active reports whether the copied state is visible.
func (cf *Confirmation) Active() bool {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	return cf.active
}

// Duration returns the confirmation window.
func (cf *Confirmation) Duration() time.Duration { return cf.duration }

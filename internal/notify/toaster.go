package notify

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
)

// DefaultCapacity bounds the toast stack when no capacity is given.
const DefaultCapacity = 3

// ExpiredMsg retires the toast with the given ID.
type ExpiredMsg struct {
	ID uint64
}

type toast struct {
	id     uint64
	notice ports.Notice
}

// Toaster is an on-screen notifier: a bounded FIFO of notices rendered as
// alerts. When full, the oldest toast is dropped to make room.
type Toaster struct {
	mu        sync.Mutex
	toasts    []toast
	capacity  int
	ttl       time.Duration
	nextID    uint64
	scheduled uint64
	width     int
}

var _ ports.Notifier = (*Toaster)(nil)

// NewToaster creates a toaster. A ttl of zero keeps toasts until Expire or
// Clear removes them.
func NewToaster(capacity int, ttl time.Duration) *Toaster {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Toaster{capacity: capacity, ttl: ttl}
}

func (t *Toaster) Notify(notice ports.Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	t.toasts = append(t.toasts, toast{id: t.nextID, notice: notice})
	if overflow := len(t.toasts) - t.capacity; overflow > 0 {
		t.toasts = append([]toast(nil), t.toasts[overflow:]...)
	}
}

// Notices returns the visible notices, oldest first.
func (t *Toaster) Notices() []ports.Notice {
	t.mu.Lock()
	defer t.mu.Unlock()

	notices := make([]ports.Notice, len(t.toasts))
	for i, item := range t.toasts {
		notices[i] = item.notice
	}
	return notices
}

func (t *Toaster) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.toasts)
}

// Expire drops the oldest toast and reports whether one was removed.
func (t *Toaster) Expire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.toasts) == 0 {
		return false
	}
	t.toasts = t.toasts[1:]
	return true
}

func (t *Toaster) Clear() {
	t.mu.Lock()
	t.toasts = nil
	t.mu.Unlock()
}

// SetWidth fixes the rendered width of every toast. Zero sizes to content.
func (t *Toaster) SetWidth(width int) {
	t.mu.Lock()
	t.width = width
	t.mu.Unlock()
}

// Schedule returns expiry timers for toasts added since the previous call.
// Hosts call it after every Update so each toast is retired after the ttl.
func (t *Toaster) Schedule() tea.Cmd {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ttl <= 0 || t.scheduled == t.nextID {
		t.scheduled = t.nextID
		return nil
	}

	var cmds []tea.Cmd
	for _, item := range t.toasts {
		if item.id > t.scheduled {
			cmds = append(cmds, ExpireCmd(item.id, t.ttl))
		}
	}
	t.scheduled = t.nextID
	return tea.Batch(cmds...)
}

// ExpireCmd produces an ExpiredMsg for id once ttl has elapsed.
func ExpireCmd(id uint64, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Update retires the toast named by an ExpiredMsg. Toasts already pushed
// out by newer ones are ignored.
func (t *Toaster) Update(msg tea.Msg) bool {
	expired, ok := msg.(ExpiredMsg)
	if !ok {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i, item := range t.toasts {
		if item.id == expired.ID {
			t.toasts = append(t.toasts[:i:i], t.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// View stacks the toasts, newest at the bottom.
func (t *Toaster) View() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.toasts) == 0 {
		return ""
	}

	inset := components.Style(lipgloss.NewStyle(), components.MarginX(components.SpacingSizeExtraSmall))
	views := make([]string, len(t.toasts))
	for i, item := range t.toasts {
		views[i] = inset.Render(AlertFor(item.notice).WithWidth(t.width).View())
	}
	return strings.Join(views, "\n")
}

// AlertFor renders a notice with the alert variant matching its level.
func AlertFor(notice ports.Notice) components.Alert {
	return components.NewAlert(notice.Message, components.AlertOptions{
		Variant: alertVariant(notice.Level),
		Title:   notice.Title,
	})
}

func alertVariant(level ports.Level) components.AlertVariant {
	switch level {
	case ports.LevelSuccess:
		return components.AlertVariantSuccess
	case ports.LevelWarning:
		return components.AlertVariantWarning
	case ports.LevelError:
		return components.AlertVariantError
	default:
		return components.AlertVariantInfo
	}
}

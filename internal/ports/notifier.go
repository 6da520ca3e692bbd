package ports

// Level ranks a notice by severity. Hosts map levels onto their own visual
// treatment; the zero value is LevelInfo.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a short, user-facing message raised by a component.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

// Notifier surfaces notices to the user. Components call through this
// capability instead of rendering toasts themselves, so a host can route
// notices to an on-screen toast stack, a log, or nowhere at all.
//
// Implementations must be safe to call from a bubbletea Update loop: Notify
// must not block and must not send messages back into the program.
type Notifier interface {
	Notify(notice Notice)
}

// NotifierFunc adapts an ordinary function to Notifier.
type NotifierFunc func(Notice)

func (fn NotifierFunc) Notify(notice Notice) {
	fn(notice)
}

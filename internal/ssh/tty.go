// Package ssh adapts an SSH session channel to a tcell terminal.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var _ tcell.Tty = (*Tty)(nil)

// Tty implements tcell.Tty over an SSH channel. Each connection gets its own
// Tty and tcell.Screen.
type Tty struct {
	rw io.ReadWriteCloser

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	onSize func()
	once   sync.Once
}

// NewTty wraps rw (usually a gliderlabs Session). window is the size from the
// PTY request; winCh delivers later window-change requests.
func NewTty(rw io.ReadWriteCloser, window gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{rw: rw, window: window, winCh: winCh}
}

// NewSessionTty builds a Tty from a session that has a PTY.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return NewTty(s, pty.Window, winCh)
}

func (t *Tty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *Tty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain are no-ops: the channel lifecycle belongs to the SSH
// handler and writes are not buffered.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that drains the window-change channel until it closes.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	t.once.Do(func() {
		if t.winCh == nil {
			return
		}
		go t.watch()
	})
}

func (t *Tty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

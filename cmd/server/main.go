// stranded-server hosts the game over SSH. Every connection plays its own,
// independent session. Build:
//
//	go build -o stranded-server ./cmd/server
//
// Usage:
//
//	./stranded-server [--port 2222] [--key server_host_key] [--tuning tuning.yaml]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"stranded/internal/config"
	"stranded/internal/game"
	"stranded/internal/runlog"
	"stranded/internal/sim"
	internalssh "stranded/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	tuningFile := flag.String("tuning", "", "Optional YAML tuning file")
	maxSessions := flag.Int("max-sessions", 32, "Maximum concurrent sessions")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	history := flag.Bool("history", true, "Append finished sessions to the run log")
	flag.Parse()

	logger := newLogger(*logLevel)

	cfg, err := config.Load(*tuningFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	h := newHost(cfg, *maxSessions, *history, logger)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("stranded SSH server listening", "addr", srv.Addr, "max_sessions", *maxSessions)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// ─── host ───────────────────────────────────────────────────────────────────

// host runs one game per SSH session, up to a fixed number at a time.
type host struct {
	cfg     config.Tuning
	slots   chan struct{}
	nextID  atomic.Uint64
	history bool // append finished sessions to the run log
	logger  *slog.Logger
}

func newHost(cfg config.Tuning, maxSessions int, history bool, logger *slog.Logger) *host {
	return &host{
		cfg:     cfg,
		slots:   make(chan struct{}, max(maxSessions, 1)),
		history: history,
		logger:  logger,
	}
}

// allowedTerms lists the TERM values accepted from clients. TERM selects a
// terminfo entry, so arbitrary values are rejected.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// sessionTerm returns the client's TERM if allowed, else xterm-256color.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return "xterm-256color"
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The server is full. Try again later.")
		return
	}

	id := h.nextID.Add(1)
	logger := h.logger.With("session", id, "user", s.User(), "remote", s.RemoteAddr().String())

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	rng := mrand.New(mrand.NewSource(time.Now().UnixNano() + int64(id)))
	session, err := sim.New(h.cfg, rng, logger)
	if err != nil {
		logger.Error("session setup failed", "error", err)
		return
	}

	logger.Info("session started")
	runErr := game.New(screen, session, game.WithLogger(logger)).Run(s.Context())
	if h.history {
		if err := runlog.Save(runlog.FromSession(session, "ssh", runErr)); err != nil {
			logger.Warn("run history not saved", "error", err)
		}
	}
	if runErr != nil {
		logger.Error("session aborted", "error", runErr)
		return
	}
	logger.Info("session ended", "stats", session.Stats())
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "stranded server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("could not persist host key", "path", path, "error", err)
		}
	}
	return signer, nil
}

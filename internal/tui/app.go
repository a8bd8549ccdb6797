package tui

import (
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitaminmoo/swbulb-tool/internal/commands"
	"github.com/vitaminmoo/swbulb-tool/internal/config"
)

var errClosed = errors.New("tui closed")

// connGuard owns the live connection. A connect that completes after
// close is disconnected immediately, since the program no longer reads
// its result.
type connGuard struct {
	mu         sync.Mutex
	closed     bool
	disconnect func() error
}

func (g *connGuard) wrap(connect Connector) Connector {
	return func() (commands.Sender, func() error, error) {
		sender, disconnect, err := connect()
		if err != nil {
			return nil, nil, err
		}

		g.mu.Lock()
		defer g.mu.Unlock()
		if g.closed {
			if disconnect != nil {
				if err := disconnect(); err != nil {
					config.Debugf("Disconnect failed: %v", err)
				}
			}
			return nil, nil, errClosed
		}
		g.disconnect = disconnect
		return sender, disconnect, nil
	}
}

func (g *connGuard) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.disconnect != nil {
		if err := g.disconnect(); err != nil {
			config.Debugf("Disconnect failed: %v", err)
		}
		g.disconnect = nil
	}
}

// Run starts the TUI application.
func Run(cfg *config.File, connect Connector) error {
	guard := &connGuard{}
	defer guard.close()

	m := NewModel(cfg, guard.wrap(connect))
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return err
	}
	return nil
}

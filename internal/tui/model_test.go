package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitaminmoo/swbulb-tool/internal/commands"
	"github.com/vitaminmoo/swbulb-tool/internal/config"
)

type recorder struct {
	sent [][]byte
	err  error
}

func (r *recorder) Send(cmd []byte) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, cmd)
	return nil
}

func testConfig() *config.File {
	return &config.File{
		Address:           "AA:BB:CC:DD:EE:FF",
		DefaultBrightness: 50,
		Presets: map[string]string{
			"red":    "#ff0000",
			"blue":   "0,0,255",
			"broken": "not-a-colour",
		},
	}
}

func connectedModel(t *testing.T, rec *recorder) Model {
	t.Helper()
	m := NewModel(testConfig(), func() (commands.Sender, func() error, error) {
		return rec, func() error { return nil }, nil
	})

	msg := m.startConnect()()
	next, _ := m.Update(msg)
	m = next.(Model)
	if !m.connected {
		t.Fatalf("model not connected: %s", m.errorMsg)
	}
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

// deliver runs cmd and feeds its message back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyT     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestMainMenuSendsFixedCommands(t *testing.T) {
	tests := []struct {
		downs int
		want  []byte
	}{
		{0, []byte{0x57, 0x0F, 0x47, 0x01, 0x01}},
		{1, []byte{0x57, 0x0F, 0x47, 0x01, 0x02}},
		{2, []byte{0x57, 0x0F, 0x47, 0x01, 0x03}},
	}

	for _, tt := range tests {
		rec := &recorder{}
		m := connectedModel(t, rec)
		for i := 0; i < tt.downs; i++ {
			m, _ = press(t, m, keyDown)
		}
		m, cmd := press(t, m, keyEnter)
		if !m.sending {
			t.Error("model should be sending")
		}
		m = deliver(t, m, cmd)

		if len(rec.sent) != 1 || !bytes.Equal(rec.sent[0], tt.want) {
			t.Errorf("downs=%d sent %X, want % X", tt.downs, rec.sent, tt.want)
		}
		if m.sending {
			t.Error("model still sending after sentMsg")
		}
	}
}

func TestBrightnessScreen(t *testing.T) {
	rec := &recorder{}
	m := connectedModel(t, rec)

	// Main -> Brightness (4th item)
	m, _ = press(t, m, keyDown, keyDown, keyDown, keyEnter)
	if m.view != ViewBrightness {
		t.Fatalf("view = %v, want ViewBrightness", m.view)
	}

	// 50 -> 70 -> 60
	m, _ = press(t, m, keyRight, keyRight, keyLeft)
	if m.meter.Level() != 60 {
		t.Fatalf("level = %d, want 60", m.meter.Level())
	}

	m, cmd := press(t, m, keyEnter)
	m = deliver(t, m, cmd)

	want := []byte{0x57, 0x0F, 0x47, 0x01, 0x14, 60}
	if len(rec.sent) != 1 || !bytes.Equal(rec.sent[0], want) {
		t.Errorf("sent %X, want % X", rec.sent, want)
	}
	if m.lastSent != "57 0F 47 01 14 3C" {
		t.Errorf("lastSent = %q", m.lastSent)
	}

	m, _ = press(t, m, keyEsc)
	if m.view != ViewMain {
		t.Errorf("view after esc = %v, want ViewMain", m.view)
	}
}

func TestColorScreenSkipsBrokenPresets(t *testing.T) {
	rec := &recorder{}
	m := connectedModel(t, rec)

	if len(m.presets) != 2 {
		t.Fatalf("presets = %+v, want 2 valid", m.presets)
	}

	// Main -> Colour (5th item); presets sorted: blue, red
	m, _ = press(t, m, keyUp, keyEnter)
	if m.view != ViewColor {
		t.Fatalf("view = %v, want ViewColor", m.view)
	}

	m, cmd := press(t, m, keyDown, keyEnter)
	deliver(t, m, cmd)

	want := []byte{0x57, 0x0F, 0x47, 0x01, 0x16, 0xFF, 0x00, 0x00}
	if len(rec.sent) != 1 || !bytes.Equal(rec.sent[0], want) {
		t.Errorf("sent %X, want % X", rec.sent, want)
	}
}

func TestToggleShortcut(t *testing.T) {
	rec := &recorder{}
	m := connectedModel(t, rec)

	m, cmd := press(t, m, keyT)
	deliver(t, m, cmd)

	want := []byte{0x57, 0x0F, 0x47, 0x01, 0x03}
	if len(rec.sent) != 1 || !bytes.Equal(rec.sent[0], want) {
		t.Errorf("sent %X, want % X", rec.sent, want)
	}
}

func TestSendWhileDisconnected(t *testing.T) {
	m := NewModel(testConfig(), func() (commands.Sender, func() error, error) {
		return nil, nil, errors.New("no adapter")
	})
	next, _ := m.Update(m.startConnect()())
	m = next.(Model)

	if m.connected || m.connecting {
		t.Fatal("model should be offline")
	}
	if !strings.Contains(m.errorMsg, "no adapter") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}

	m, cmd := press(t, m, keyEnter)
	if cmd != nil {
		t.Error("no command should be issued while disconnected")
	}
	if !strings.Contains(m.errorMsg, "Not connected") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
}

func TestSendFailureIsReported(t *testing.T) {
	rec := &recorder{err: errors.New("link lost")}
	m := connectedModel(t, rec)

	m, cmd := press(t, m, keyEnter)
	m = deliver(t, m, cmd)

	if !strings.Contains(m.errorMsg, "link lost") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
}

func TestQuit(t *testing.T) {
	m := connectedModel(t, &recorder{})
	_, cmd := press(t, m, keyQ)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewRenders(t *testing.T) {
	m := connectedModel(t, &recorder{})
	out := m.View()
	for _, want := range []string{"SwitchBot Bulb", "Turn on", "AA:BB:CC:DD:EE:FF"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

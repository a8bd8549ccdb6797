package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitaminmoo/swbulb-tool/internal/commands"
	"github.com/vitaminmoo/swbulb-tool/internal/config"
	"github.com/vitaminmoo/swbulb-tool/internal/switchbot"
	"github.com/vitaminmoo/swbulb-tool/internal/util"
)

// Connector opens a connection to the bulb. The returned function
// disconnects it; Run owns that call, not the model.
type Connector func() (commands.Sender, func() error, error)

// View represents different screens in the TUI.
type View int

const (
	ViewMain View = iota
	ViewBrightness
	ViewColor
)

// MenuItem represents a menu option.
type MenuItem struct {
	Title       string
	Description string
	View        View
	Action      func(m Model) (Model, tea.Cmd)
}

// Preset is a named colour from the config file.
type Preset struct {
	Name    string
	Hex     string
	R, G, B uint8
}

// Model is the main Bubbletea model for the TUI.
type Model struct {
	// State
	view      View
	cursor    int
	menuItems []MenuItem
	width     int
	height    int

	// Connection
	address    string
	connect    Connector
	sender     commands.Sender
	connected  bool
	connecting bool
	sending    bool

	// Data
	presets   []Preset
	meter     BrightnessMeter
	lastSent  string
	errorMsg  string
	statusMsg string

	// Components
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	styles  Styles
}

// connectMsg signals connection attempt result.
type connectMsg struct {
	sender commands.Sender
	err    error
}

// sentMsg reports the outcome of a write.
type sentMsg struct {
	cmd []byte
	err error
}

// NewModel creates the TUI model. Presets that fail to parse are skipped.
func NewModel(cfg *config.File, connect Connector) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		address:    cfg.Address,
		connect:    connect,
		connecting: true,
		presets:    loadPresets(cfg.Presets),
		meter:      NewBrightnessMeter(cfg.DefaultBrightness),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		styles:     DefaultStyles(),
	}
	m.menuItems = []MenuItem{
		{Title: "Turn on", Description: "Switch the bulb on", Action: fixedAction(switchbot.TurnOn)},
		{Title: "Turn off", Description: "Switch the bulb off", Action: fixedAction(switchbot.TurnOff)},
		{Title: "Toggle", Description: "Flip the power state", Action: fixedAction(switchbot.Toggle)},
		{Title: "Brightness", Description: "Choose a brightness level", View: ViewBrightness},
		{Title: "Colour", Description: "Choose a colour preset", View: ViewColor},
	}
	return m
}

func loadPresets(raw map[string]string) []Preset {
	presets := make([]Preset, 0, len(raw))
	for name, value := range raw {
		r, g, b, err := commands.ParseColor(value, nil)
		if err != nil {
			config.Debugf("Skipping preset %q: %v", name, err)
			continue
		}
		presets = append(presets, Preset{
			Name: name,
			Hex:  fmt.Sprintf("#%02x%02x%02x", r, g, b),
			R:    r, G: g, B: b,
		})
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets
}

func fixedAction(kind switchbot.Kind) func(Model) (Model, tea.Cmd) {
	return func(m Model) (Model, tea.Cmd) {
		return m.send(switchbot.FixedCommand(kind))
	}
}

// Init starts the spinner and the first connection attempt.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startConnect())
}

func (m Model) startConnect() tea.Cmd {
	connect := m.connect
	return func() tea.Msg {
		sender, _, err := connect()
		return connectMsg{sender: sender, err: err}
	}
}

// send queues a write. Only one write is in flight at a time.
func (m Model) send(cmd []byte) (Model, tea.Cmd) {
	if !m.connected {
		m.errorMsg = "Not connected (press c to connect)"
		return m, nil
	}
	if m.sending {
		return m, nil
	}

	m.sending = true
	m.errorMsg = ""
	sender := m.sender
	return m, func() tea.Msg {
		return sentMsg{cmd: cmd, err: sender.Send(cmd)}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case connectMsg:
		m.connecting = false
		if msg.err != nil {
			m.connected = false
			m.errorMsg = fmt.Sprintf("Connect failed: %v", msg.err)
			return m, nil
		}
		m.sender = msg.sender
		m.connected = true
		m.errorMsg = ""
		m.statusMsg = "Connected"
		return m, nil

	case sentMsg:
		m.sending = false
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Send failed: %v", msg.err)
			return m, nil
		}
		m.lastSent = util.FormatHex(msg.cmd)
		m.statusMsg = "Sent " + switchbot.Describe(msg.cmd)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Connect):
		if m.connected || m.connecting {
			return m, nil
		}
		m.connecting = true
		m.errorMsg = ""
		return m, m.startConnect()
	case key.Matches(msg, m.keys.Power):
		return m.send(switchbot.FixedCommand(switchbot.Toggle))
	case key.Matches(msg, m.keys.Back):
		if m.view != ViewMain {
			m.view = ViewMain
			m.cursor = 0
		}
		return m, nil
	}

	switch m.view {
	case ViewMain:
		return m.updateMain(msg)
	case ViewBrightness:
		return m.updateBrightness(msg)
	case ViewColor:
		return m.updateColor(msg)
	}
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -1, len(m.menuItems))
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 1, len(m.menuItems))
	case key.Matches(msg, m.keys.Select):
		item := m.menuItems[m.cursor]
		if item.Action != nil {
			return item.Action(m)
		}
		m.view = item.View
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateBrightness(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Down):
		m.meter.Dimmer()
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Up):
		m.meter.Brighter()
	case key.Matches(msg, m.keys.Select):
		return m.send(switchbot.SetBrightnessCommand(m.meter.Level()))
	}
	return m, nil
}

func (m Model) updateColor(msg tea.KeyMsg) (Model, tea.Cmd) {
	if len(m.presets) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -1, len(m.presets))
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 1, len(m.presets))
	case key.Matches(msg, m.keys.Select):
		p := m.presets[m.cursor]
		return m.send(switchbot.SetRGBCommand(p.R, p.G, p.B))
	}
	return m, nil
}

func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return (cursor + delta + n) % n
}

// View renders the TUI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("SwitchBot Bulb"))
	b.WriteString(" ")
	b.WriteString(m.styles.Subtitle.Render(m.viewTitle()))
	b.WriteString("\n")

	var content string
	switch m.view {
	case ViewMain:
		content = m.viewMain()
	case ViewBrightness:
		content = m.viewBrightness()
	case ViewColor:
		content = m.viewColor()
	}
	b.WriteString(m.styles.Content.Render(content))
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatusBar())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

func (m Model) viewTitle() string {
	switch m.view {
	case ViewBrightness:
		return "Brightness"
	case ViewColor:
		return "Colour"
	default:
		return "Main"
	}
}

func (m Model) viewMain() string {
	var b strings.Builder
	for i, item := range m.menuItems {
		if i == m.cursor {
			b.WriteString(m.styles.MenuItemSelected.Render("> " + item.Title))
		} else {
			b.WriteString(m.styles.MenuItem.Render("  " + item.Title))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.MenuItemDim.Render(item.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewBrightness() string {
	return m.meter.View() + "\n\n" +
		m.styles.Muted.Render("←/→ adjust, enter to apply")
}

func (m Model) viewColor() string {
	if len(m.presets) == 0 {
		return m.styles.Muted.Render("No colour presets configured")
	}

	var b strings.Builder
	for i, p := range m.presets {
		line := fmt.Sprintf("%s %-12s %s", swatch(p.Hex), p.Name, p.Hex)
		if i == m.cursor {
			b.WriteString(m.styles.MenuItemSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.MenuItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewStatusBar() string {
	var state string
	switch {
	case m.connecting:
		state = m.spinner.View() + " connecting"
	case m.sending:
		state = m.styles.StatusOnline.Render(m.spinner.View() + " sending")
	case m.connected:
		state = m.styles.StatusOnline.Render("● online")
	default:
		state = m.styles.StatusOffline.Render("○ offline")
	}

	address := m.address
	if address == "" {
		address = "(none)"
	}

	parts := []string{
		state,
		m.styles.StatusKey.Render("Bulb") + m.styles.StatusValue.Render(address),
	}
	if m.lastSent != "" {
		parts = append(parts, m.styles.StatusKey.Render("Last")+m.styles.StatusValue.Render(m.lastSent))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.styles.Success.Render(m.statusMsg))
	}
	return m.styles.StatusBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

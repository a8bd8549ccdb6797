package cli

import (
	"fmt"
	"os"

	"github.com/vitaminmoo/swbulb-tool/internal/ble"
	"github.com/vitaminmoo/swbulb-tool/internal/commands"
	"github.com/vitaminmoo/swbulb-tool/internal/config"
	"github.com/vitaminmoo/swbulb-tool/internal/tui"
)

// CLI is the root command structure for swbulb.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable verbose debug output"`
	Address string `short:"a" env:"SWBULB_ADDRESS" help:"Bulb address (MAC, or CoreBluetooth UUID on macOS)"`
	Config  string `type:"path" help:"Config file (default: ~/.config/swbulb/config.yaml)"`
	LogFile string `name:"log-file" type:"path" help:"Also write debug logs to this file"`

	// Default command - TUI
	Tui TuiCmd `cmd:"" default:"withargs" help:"Launch interactive TUI (default)"`

	On         OnCmd         `cmd:"" help:"Turn the bulb on"`
	Off        OffCmd        `cmd:"" help:"Turn the bulb off"`
	Toggle     ToggleCmd     `cmd:"" help:"Toggle the bulb"`
	Color      ColorCmd      `cmd:"" aliases:"colour,rgb" help:"Set the bulb colour"`
	Brightness BrightnessCmd `cmd:"" help:"Set the bulb brightness"`

	Encode EncodeCmd `cmd:"" help:"Print the bytes for a command without connecting"`
	UUIDs  UUIDsCmd  `cmd:"" name:"uuids" help:"Print the service and characteristic UUIDs"`
}

// settings sets up logging and merges the config file with flags.
func (c *CLI) settings() (*config.File, error) {
	config.SetupLogging(c.Verbose, c.LogFile)

	path := c.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.Address != "" {
		cfg.Address = c.Address
	}
	return cfg, nil
}

// withBulb loads settings, connects, runs fn, and disconnects.
func (c *CLI) withBulb(fn func(commands.Sender) error) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	return sendTo(cfg.Address, fn)
}

func sendTo(address string, fn func(commands.Sender) error) error {
	bulb, disconnect, err := ble.Open(address)
	if err != nil {
		return err
	}
	defer disconnect()

	return fn(bulb)
}

// --- TUI Command ---

type TuiCmd struct{}

func (c *TuiCmd) Run(globals *CLI) error {
	cfg, err := globals.settings()
	if err != nil {
		return err
	}
	return tui.Run(cfg, bleConnector(cfg.Address))
}

func bleConnector(address string) tui.Connector {
	return func() (commands.Sender, func() error, error) {
		bulb, disconnect, err := ble.Open(address)
		if err != nil {
			return nil, nil, err
		}
		return bulb, disconnect, nil
	}
}

// --- Power Commands ---

type OnCmd struct{}

func (c *OnCmd) Run(globals *CLI) error {
	return globals.withBulb(commands.On)
}

type OffCmd struct{}

func (c *OffCmd) Run(globals *CLI) error {
	return globals.withBulb(commands.Off)
}

type ToggleCmd struct{}

func (c *ToggleCmd) Run(globals *CLI) error {
	return globals.withBulb(commands.Toggle)
}

// --- Light Commands ---

type ColorCmd struct {
	Value []string `arg:"" help:"#rrggbb, r g b, r,g,b or a preset name"`
}

func (c *ColorCmd) Run(globals *CLI) error {
	cfg, err := globals.settings()
	if err != nil {
		return err
	}
	r, g, b, err := commands.ParseColor(joinColor(c.Value), cfg.Presets)
	if err != nil {
		return err
	}
	return sendTo(cfg.Address, func(s commands.Sender) error {
		return commands.Color(s, r, g, b)
	})
}

type BrightnessCmd struct {
	Level uint8 `arg:"" help:"Brightness 0-100"`
}

func (c *BrightnessCmd) Run(globals *CLI) error {
	return globals.withBulb(func(s commands.Sender) error {
		return commands.Brightness(s, c.Level)
	})
}

// --- Offline Commands ---

type EncodeCmd struct {
	Action string   `arg:"" help:"on, off, toggle, color or brightness"`
	Args   []string `arg:"" optional:"" help:"Arguments for color or brightness"`
	Dump   bool     `help:"Also print a hex dump of the payload"`
}

func (c *EncodeCmd) Run(globals *CLI) error {
	cfg, err := globals.settings()
	if err != nil {
		return err
	}
	return commands.Encode(os.Stdout, c.Action, c.Args, cfg.Presets, c.Dump)
}

type UUIDsCmd struct{}

func (c *UUIDsCmd) Run(globals *CLI) error {
	commands.UUIDs(os.Stdout)
	return nil
}

// joinColor accepts "r g b" as three arguments as well as a single value.
func joinColor(parts []string) string {
	if len(parts) == 3 {
		return fmt.Sprintf("%s,%s,%s", parts[0], parts[1], parts[2])
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return fmt.Sprint(parts)
}

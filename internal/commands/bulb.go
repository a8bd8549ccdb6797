package commands

import (
	"errors"
	"fmt"

	"github.com/vitaminmoo/swbulb-tool/internal/switchbot"
	"github.com/vitaminmoo/swbulb-tool/internal/util"
)

// ErrBrightnessRange is returned for brightness values the bulb ignores.
var ErrBrightnessRange = errors.New("brightness must be 0-100")

// Sender delivers an encoded command to a bulb.
type Sender interface {
	Send(cmd []byte) error
}

// On turns the bulb on.
func On(s Sender) error {
	return Fixed(s, switchbot.TurnOn)
}

// Off turns the bulb off.
func Off(s Sender) error {
	return Fixed(s, switchbot.TurnOff)
}

// Toggle flips the bulb's power state.
func Toggle(s Sender) error {
	return Fixed(s, switchbot.Toggle)
}

// Fixed sends one of the fixed commands.
func Fixed(s Sender, kind switchbot.Kind) error {
	cmd := switchbot.FixedCommand(kind)
	if cmd == nil {
		return fmt.Errorf("unsupported command %v", kind)
	}
	return send(s, cmd)
}

// Color sets the bulb colour.
func Color(s Sender, r, g, b uint8) error {
	return send(s, switchbot.SetRGBCommand(r, g, b))
}

// Brightness sets the bulb brightness. Values above 100 are rejected here
// since the encoder itself passes them through.
func Brightness(s Sender, level uint8) error {
	if !switchbot.ValidBrightness(level) {
		return fmt.Errorf("%w: got %d", ErrBrightnessRange, level)
	}
	return send(s, switchbot.SetBrightnessCommand(level))
}

func send(s Sender, cmd []byte) error {
	if err := s.Send(cmd); err != nil {
		return fmt.Errorf("%s: %w", switchbot.Describe(cmd), err)
	}
	fmt.Printf("Sent %s (%s)\n", switchbot.Describe(cmd), util.FormatHex(cmd))
	return nil
}

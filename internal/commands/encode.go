package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vitaminmoo/swbulb-tool/internal/switchbot"
	"github.com/vitaminmoo/swbulb-tool/internal/util"
)

// Build encodes an action without talking to a device. Actions are
// on, off, toggle, color <value> and brightness <0-255>. Brightness is
// not range checked so out-of-range encodings can be inspected.
func Build(action string, args []string, presets map[string]string) ([]byte, error) {
	switch strings.ToLower(action) {
	case "color", "colour", "rgb":
		if len(args) == 0 {
			return nil, fmt.Errorf("%s needs a colour argument", action)
		}
		r, g, b, err := ParseColor(strings.Join(args, ","), presets)
		if err != nil {
			return nil, err
		}
		return switchbot.SetRGBCommand(r, g, b), nil

	case "brightness":
		if len(args) != 1 {
			return nil, fmt.Errorf("brightness needs one argument")
		}
		v, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid brightness %q: %w", args[0], err)
		}
		return switchbot.SetBrightnessCommand(uint8(v)), nil
	}

	kind, err := switchbot.ParseKind(action)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("%s takes no arguments", kind)
	}
	return switchbot.FixedCommand(kind), nil
}

// Encode prints the encoding of an action in several notations. With
// dump set, a hex dump of the payload follows.
func Encode(w io.Writer, action string, args []string, presets map[string]string, dump bool) error {
	cmd, err := Build(action, args, presets)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Command: %s\n", switchbot.Describe(cmd))
	fmt.Fprintf(w, "Length:  %d\n", len(cmd))
	fmt.Fprintf(w, "Hex:     %s\n", util.FormatHex(cmd))
	fmt.Fprintf(w, "Go:      %s\n", util.GoLiteral(cmd))
	if len(cmd) == switchbot.BrightnessCommandLen && !switchbot.ValidBrightness(cmd[5]) {
		fmt.Fprintf(w, "Warning: brightness %d is outside 0-%d\n", cmd[5], switchbot.MaxBrightness)
	}
	if dump {
		fmt.Fprintln(w)
		util.WriteHexDump(w, cmd)
	}
	return nil
}

// UUIDs prints the identifiers a BLE stack needs to reach the bulb.
func UUIDs(w io.Writer) {
	fmt.Fprintf(w, "Service:        %s\n", switchbot.ServiceUUIDString)
	fmt.Fprintf(w, "Characteristic: %s\n", switchbot.CharacteristicUUIDString)
}

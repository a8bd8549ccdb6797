// Package switchbot encodes the write payloads understood by SwitchBot
// colour bulbs. Every function here is pure; the returned slices belong
// to the caller.
package switchbot

import (
	"fmt"
	"strings"
)

// Command layout: 57 0F 47 01 <opcode> [params...]
const (
	magic       byte = 0x57
	expandCmd   byte = 0x0F
	bulbCmd     byte = 0x47
	bulbCmdType byte = 0x01

	opTurnOn     byte = 0x01
	opTurnOff    byte = 0x02
	opToggle     byte = 0x03
	opBrightness byte = 0x14
	opRGB        byte = 0x16
)

const (
	FixedCommandLen      = 5
	RGBCommandLen        = 8
	BrightnessCommandLen = 6

	// MaxBrightness is the top of the range the bulb firmware acts on.
	// SetBrightnessCommand does not enforce it.
	MaxBrightness = 100
)

var (
	TurnOnCommand  = [FixedCommandLen]byte{magic, expandCmd, bulbCmd, bulbCmdType, opTurnOn}
	TurnOffCommand = [FixedCommandLen]byte{magic, expandCmd, bulbCmd, bulbCmdType, opTurnOff}
	ToggleCommand  = [FixedCommandLen]byte{magic, expandCmd, bulbCmd, bulbCmdType, opToggle}
)

// Kind selects one of the fixed commands.
type Kind int

const (
	TurnOn Kind = iota
	TurnOff
	Toggle
)

var kindNames = map[Kind]string{
	TurnOn:  "turn-on",
	TurnOff: "turn-off",
	Toggle:  "toggle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "on", "off", "toggle" as well as the String() forms.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "on", "turn-on", "turnon":
		return TurnOn, nil
	case "off", "turn-off", "turnoff":
		return TurnOff, nil
	case "toggle":
		return Toggle, nil
	}
	return 0, fmt.Errorf("unknown command kind %q", name)
}

// FixedCommand returns a copy of the 5-byte command for kind, or nil if
// kind is not one of TurnOn, TurnOff or Toggle.
func FixedCommand(kind Kind) []byte {
	var cmd [FixedCommandLen]byte
	switch kind {
	case TurnOn:
		cmd = TurnOnCommand
	case TurnOff:
		cmd = TurnOffCommand
	case Toggle:
		cmd = ToggleCommand
	default:
		return nil
	}
	return cmd[:]
}

// SetRGBCommand encodes a colour change. Every channel value is valid.
func SetRGBCommand(r, g, b uint8) []byte {
	return []byte{magic, expandCmd, bulbCmd, bulbCmdType, opRGB, r, g, b}
}

// SetBrightnessCommand encodes a brightness change. The bulb acts on
// 0-100; larger values are passed through as-is and must be checked by
// the caller (see ValidBrightness).
func SetBrightnessCommand(brightness uint8) []byte {
	return []byte{magic, expandCmd, bulbCmd, bulbCmdType, opBrightness, brightness}
}

// ValidBrightness reports whether v is inside the range the bulb acts on.
func ValidBrightness(v uint8) bool {
	return v <= MaxBrightness
}

// Describe names a command produced by this package, e.g.
// "set-rgb r=255 g=0 b=128". Anything else is reported as unknown.
func Describe(cmd []byte) string {
	if len(cmd) < FixedCommandLen ||
		cmd[0] != magic || cmd[1] != expandCmd || cmd[2] != bulbCmd || cmd[3] != bulbCmdType {
		return fmt.Sprintf("unknown (%d bytes)", len(cmd))
	}

	switch op := cmd[4]; {
	case op == opTurnOn && len(cmd) == FixedCommandLen:
		return TurnOn.String()
	case op == opTurnOff && len(cmd) == FixedCommandLen:
		return TurnOff.String()
	case op == opToggle && len(cmd) == FixedCommandLen:
		return Toggle.String()
	case op == opRGB && len(cmd) == RGBCommandLen:
		return fmt.Sprintf("set-rgb r=%d g=%d b=%d", cmd[5], cmd[6], cmd[7])
	case op == opBrightness && len(cmd) == BrightnessCommandLen:
		return fmt.Sprintf("set-brightness %d", cmd[5])
	default:
		return fmt.Sprintf("unknown opcode 0x%02X (%d bytes)", op, len(cmd))
	}
}

package ble

import (
	"fmt"
	"strings"

	"tinygo.org/x/bluetooth"
)

// parseAddress parses a CoreBluetooth peripheral UUID.
func parseAddress(s string) (bluetooth.Address, error) {
	uuid, err := bluetooth.ParseUUID(strings.TrimSpace(s))
	if err != nil {
		return bluetooth.Address{}, fmt.Errorf("%w %q: want a peripheral UUID", ErrInvalidAddress, s)
	}
	return bluetooth.Address{UUID: uuid}, nil
}

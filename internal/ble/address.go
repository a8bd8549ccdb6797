//go:build !darwin

package ble

import (
	"fmt"
	"strings"

	"tinygo.org/x/bluetooth"
)

// parseAddress parses a MAC address. Lower-case hex is accepted.
func parseAddress(s string) (bluetooth.Address, error) {
	mac, err := bluetooth.ParseMAC(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return bluetooth.Address{}, fmt.Errorf("%w %q: want AA:BB:CC:DD:EE:FF", ErrInvalidAddress, s)
	}
	return bluetooth.Address{MACAddress: bluetooth.MACAddress{MAC: mac}}, nil
}

package ble

import (
	"fmt"
	"strings"

	"github.com/vitaminmoo/swbulb-tool/internal/config"

	"tinygo.org/x/bluetooth"
)

// Connect connects to the bulb at a known address. There is no scan:
// the address must come from the user or the config file.
func Connect(address string) (bluetooth.Device, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return bluetooth.Device{}, ErrNoAddress
	}

	addr, err := parseAddress(address)
	if err != nil {
		return bluetooth.Device{}, err
	}

	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return bluetooth.Device{}, fmt.Errorf("failed to enable Bluetooth: %w", err)
	}

	config.Debugf("Connecting to %s...", address)

	device, err := adapter.Connect(addr, bluetooth.ConnectionParams{})
	if err != nil {
		return bluetooth.Device{}, fmt.Errorf("failed to connect to %s: %w", address, err)
	}

	config.Debugf("Connected to %s", address)
	return device, nil
}

// Open connects to address and resolves the command characteristic.
// The returned close function disconnects the device.
func Open(address string) (*BulbContext, func() error, error) {
	device, err := Connect(address)
	if err != nil {
		return nil, nil, err
	}

	ctx, err := SetupBulb(device)
	if err != nil {
		device.Disconnect()
		return nil, nil, err
	}

	return ctx, device.Disconnect, nil
}

package ble

import (
	"errors"
	"fmt"

	"github.com/vitaminmoo/swbulb-tool/internal/config"
	"github.com/vitaminmoo/swbulb-tool/internal/switchbot"

	"tinygo.org/x/bluetooth"
)

var (
	ErrNoAddress              = errors.New("no bulb address configured")
	ErrInvalidAddress         = errors.New("invalid bulb address")
	ErrServiceNotFound        = errors.New("bulb service not found")
	ErrCharacteristicNotFound = errors.New("bulb command characteristic not found")
	ErrShortWrite             = errors.New("short write")
)

// SetupBulb discovers the SwitchBot service and its command characteristic.
func SetupBulb(device bluetooth.Device) (*BulbContext, error) {
	config.Debugf("Discovering service %s...", switchbot.ServiceUUIDString)

	services, err := device.DiscoverServices([]bluetooth.UUID{switchbot.ServiceUUID})
	if err != nil {
		return nil, fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		return nil, ErrServiceNotFound
	}
	config.Debugf("Found service: %s", services[0].UUID().String())

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{switchbot.CharacteristicUUID})
	if err != nil {
		return nil, fmt.Errorf("failed to discover characteristics: %w", err)
	}

	for i := range chars {
		config.Debugf("Found characteristic: %s", chars[i].UUID().String())
		if chars[i].UUID() == switchbot.CharacteristicUUID {
			return NewBulbContext(&chars[i]), nil
		}
	}

	return nil, ErrCharacteristicNotFound
}

package switchbot

import "tinygo.org/x/bluetooth"

const (
	// ServiceUUIDString is the bulb's communication service
	ServiceUUIDString = "cba20d00-224d-11e6-9fb8-0002a5d5c51b"

	// CharacteristicUUIDString is the writable characteristic that accepts commands
	CharacteristicUUIDString = "cba20002-224d-11e6-9fb8-0002a5d5c51b"
)

var (
	ServiceUUID        = mustParseUUID(ServiceUUIDString)
	CharacteristicUUID = mustParseUUID(CharacteristicUUIDString)
)

func mustParseUUID(s string) bluetooth.UUID {
	uuid, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic("switchbot: invalid UUID " + s + ": " + err.Error())
	}
	return uuid
}

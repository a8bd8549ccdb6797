package ble

import (
	"fmt"
	"sync"

	"github.com/vitaminmoo/swbulb-tool/internal/config"
	"github.com/vitaminmoo/swbulb-tool/internal/switchbot"
	"github.com/vitaminmoo/swbulb-tool/internal/util"
)

// Writer is the part of bluetooth.DeviceCharacteristic used to send commands.
type Writer interface {
	WriteWithoutResponse(p []byte) (n int, err error)
}

// BulbContext holds the characteristic commands are written to.
type BulbContext struct {
	CommandChar Writer

	writeMu sync.Mutex
}

// NewBulbContext wraps an already discovered command characteristic.
func NewBulbContext(w Writer) *BulbContext {
	return &BulbContext{CommandChar: w}
}

// Send writes one encoded command. Writes are serialised; the bulb gives
// no acknowledgement so a nil error only means the write was accepted
// by the local stack.
func (ctx *BulbContext) Send(cmd []byte) error {
	ctx.writeMu.Lock()
	defer ctx.writeMu.Unlock()

	config.Debugf("Sending %s: %s", switchbot.Describe(cmd), util.FormatHex(cmd))

	n, err := ctx.CommandChar.WriteWithoutResponse(cmd)
	if err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	if n != len(cmd) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(cmd))
	}

	config.Debugf("Wrote %d bytes", n)
	return nil
}

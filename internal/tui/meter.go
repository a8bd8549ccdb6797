package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitaminmoo/swbulb-tool/internal/switchbot"
)

const brightnessStep = 10

// BrightnessMeter tracks the brightness being chosen on the brightness screen.
type BrightnessMeter struct {
	progress progress.Model
	level    uint8
}

// NewBrightnessMeter creates a meter starting at level.
func NewBrightnessMeter(level uint8) BrightnessMeter {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	if !switchbot.ValidBrightness(level) {
		level = switchbot.MaxBrightness
	}
	return BrightnessMeter{progress: p, level: level}
}

// Level returns the selected brightness, always within 0-100.
func (b BrightnessMeter) Level() uint8 {
	return b.level
}

// Brighter raises the level by one step, stopping at the maximum.
func (b *BrightnessMeter) Brighter() {
	if b.level > switchbot.MaxBrightness-brightnessStep {
		b.level = switchbot.MaxBrightness
		return
	}
	b.level += brightnessStep
}

// Dimmer lowers the level by one step, stopping at zero.
func (b *BrightnessMeter) Dimmer() {
	if b.level < brightnessStep {
		b.level = 0
		return
	}
	b.level -= brightnessStep
}

// View renders the meter.
func (b BrightnessMeter) View() string {
	pct := float64(b.level) / switchbot.MaxBrightness
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf("%3d%%", b.level))
	return b.progress.ViewAs(pct) + " " + label
}

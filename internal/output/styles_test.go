package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/sedlib/sedvet/internal/sed"
)

func TestReasonStyle(t *testing.T) {
	tests := []struct {
		name     string
		reason   sed.Reason
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{
			name:   "nan returns red",
			reason: sed.ReasonNaN,
			wantFG: ColorRed,
		},
		{
			name:   "header returns yellow",
			reason: sed.ReasonHeader,
			wantFG: ColorYellow,
		},
		{
			name:     "could not load returns bold red",
			reason:   sed.ReasonCouldNotLoad,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			reason: sed.Reason("unknown-value"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := ReasonStyle(tt.reason)
			assert.Equal(t, tt.wantBold, style.GetBold(), "bold mismatch")
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
		})
	}
}

func TestFormatFailureLine(t *testing.T) {
	line := FormatFailureLine("starSED/kurucz/km01_6000.fits_g40", sed.ReasonHeader)

	assert.Contains(t, line, "starSED/kurucz/km01_6000.fits_g40")
	assert.Contains(t, line, "failed because of")
	assert.Contains(t, line, "header")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Everything looks good")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Everything looks good")
}

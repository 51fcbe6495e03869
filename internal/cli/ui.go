package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/itdepends/pkg/errors"
)

var (
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorGray = lipgloss.Color("245") // Gray - secondary text
)

var (
	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
	styleStage     = lipgloss.NewStyle().Bold(true)
	styleDetail    = lipgloss.NewStyle().Foreground(colorGray)
)

const iconError = "✗"

// PrintError writes a one-line description of err to w, naming the
// pipeline stage that failed when it is known:
//
//	✗ query registry failed: lookup com.lib:foo: GET https://...: unexpected status 503
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, formatError(err))
}

func formatError(err error) string {
	prefix := styleIconError.Render(iconError) + " "
	if stage := errors.Stage(err); stage != "" {
		prefix += styleStage.Render(stage+" failed") + ": "
	}
	return prefix + styleDetail.Render(errors.UserMessage(err))
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/wineconf/errors"
)

// ErrorHandler is the single place errors are reported and fatal
// conditions end the process.
type ErrorHandler struct {
	Verbose bool
	Stderr  io.Writer
	Exit    func(code int)
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Stderr:  os.Stderr,
		Exit:    os.Exit,
	}
}

// Handle reports err. Fatal errors print "wine: <message>" and exit with
// status 1; everything else is printed and returned to the caller.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsFatal(err) {
		fmt.Fprintf(h.Stderr, "wine: %s\n", errors.Message(err))
		h.details(err)
		h.Exit(1)
		return err
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeLaunchFailed:
		fmt.Fprintf(h.Stderr, "wine: %s\n", errors.Message(err))
		fmt.Fprintf(h.Stderr, "Set the binary location explicitly with --env, e.g. WINESERVER=/path/to/wineserver.\n")

	case errors.ErrCodeNoLoaderName:
		fmt.Fprintf(h.Stderr, "wine: %s\n", errors.Message(err))

	default:
		red := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		fmt.Fprintf(h.Stderr, "%s %v\n", red.Render("Error:"), err)
	}
	h.details(err)
	return err
}

func (h *ErrorHandler) details(err error) {
	if !h.Verbose {
		return
	}
	if wineErr, ok := err.(*errors.WineError); ok {
		fmt.Fprintf(h.Stderr, "\nError details:\n%s\n", wineErr.ToJSON())
	}
}

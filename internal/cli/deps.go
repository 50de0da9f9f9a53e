package cli

import (
	"io"
	"os"

	"github.com/xolan/tally/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is built on first use by EnsureServices
	Services *service.Services

	// Width reports the output width used to fit tables
	Width func() int
}

// DefaultDeps creates a new Deps with default values. Services are not
// created until EnsureServices is called, so commands that never touch the
// config (--version, completion) do not create the config directory.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Width:  TerminalWidth,
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	d := DefaultDeps()
	d.Services = services
	return d
}

// EnsureServices creates the services from the user's config file if they
// have not been set yet. Log records go to Stderr.
func (d *Deps) EnsureServices() error {
	if d.Services != nil {
		return nil
	}
	services, err := service.NewServices(d.Stderr)
	if err != nil {
		return err
	}
	d.Services = services
	return nil
}

// OutputWidth returns Width(), or DefaultWidth when Width is unset.
func (d *Deps) OutputWidth() int {
	if d.Width == nil {
		return DefaultWidth
	}
	return d.Width()
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}

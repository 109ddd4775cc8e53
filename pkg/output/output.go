// Package output renders probe results for the console.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/verify-setup/pkg/check"
)

// Palette maps semantic roles to terminal escape sequences.
// The zero Palette prints plain text.
type Palette struct {
	Reset   string
	Success string
	Failure string
	Warn    string
	Info    string
}

var ansi = Palette{
	Reset:   "\033[0m",
	Success: "\033[32m",
	Failure: "\033[31m",
	Warn:    "\033[33m",
	Info:    "\033[34m",
}

// ANSI returns the colored palette.
func ANSI() Palette {
	return ansi
}

// DetectPalette returns ANSI when stdout supports color and NO_COLOR is
// unset, and the plain palette otherwise.
func DetectPalette() Palette {
	return detectPalette(os.Stdout.Fd())
}

func detectPalette(fd uintptr, opts ...supportscolor.Option) Palette {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return Palette{}
	}
	if !supportscolor.SupportsColor(fd, opts...).SupportsColor {
		return Palette{}
	}
	return ansi
}

const (
	DefaultTitle   = "Fullstack Mastery Hub"
	separatorWidth = 40
)

// Printer writes the console report.
// Errors from writing are intentionally ignored for console output.
type Printer struct {
	out    io.Writer
	colors Palette
}

// New creates a Printer writing to out with the given palette.
func New(out io.Writer, colors Palette) *Printer {
	return &Printer{out: out, colors: colors}
}

// Header prints the banner followed by a blank line.
func (p *Printer) Header(title string) {
	if title == "" {
		title = DefaultTitle
	}
	_, _ = fmt.Fprintf(p.out, "%s🔍 Verifying %s Setup...%s\n\n", p.colors.Info, title, p.colors.Reset)
}

// PrintResult prints one line for a probe result.
func (p *Printer) PrintResult(r check.Result) {
	if r.OK() {
		_, _ = fmt.Fprintf(p.out, "%s✓%s %s: %s\n", p.colors.Success, p.colors.Reset, r.Name, r.Output)
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s✗%s %s: Not installed\n", p.colors.Failure, p.colors.Reset, r.Name)
}

// Separator prints a blank line and a horizontal rule.
func (p *Printer) Separator() {
	_, _ = fmt.Fprintf(p.out, "\n%s%s%s\n", p.colors.Info, strings.Repeat("━", separatorWidth), p.colors.Reset)
}

// Summary prints the closing message for the run.
func (p *Printer) Summary(passed bool) {
	if passed {
		_, _ = fmt.Fprintf(p.out, "%s✅ All prerequisites are installed!%s\n", p.colors.Success, p.colors.Reset)
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s⚠️  Some prerequisites are missing. Please install them to continue.%s\n", p.colors.Warn, p.colors.Reset)
}

package main

import (
	"io"

	"github.com/pterm/pterm"

	xqerrors "github.com/jacoelho/xqsem/errors"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// printer writes tagged lines, styled unless plain is set.
type printer struct {
	w     io.Writer
	plain bool
}

func newPrinter(w io.Writer, plain bool) printer {
	return printer{w: w, plain: plain}
}

func (p printer) tagged(style *pterm.Style, color pterm.Color, tag, msg string) error {
	if p.plain {
		return writef(p.w, "%s: %s\n", tag, msg)
	}
	return writef(p.w, "%s %s\n", style.Sprint(tag), color.Sprint(msg))
}

func (p printer) info(tag, msg string) error {
	return p.tagged(successStyleBG, successColorFG, tag, msg)
}

func (p printer) warn(tag, msg string) error {
	return p.tagged(warnStyleBG, warnColorFG, tag, msg)
}

func (p printer) error(tag string, err error) error {
	return p.tagged(errorStyleBG, errorColorFG, tag, err.Error())
}

func (p printer) line(args ...any) error {
	return writeln(p.w, args...)
}

// report prints diagnostics carried by err one per line, or err itself.
func (p printer) report(tag string, err error) error {
	diags, ok := xqerrors.AsDiagnostics(err)
	if !ok {
		return p.error(tag, err)
	}
	for i := range diags {
		if writeErr := p.error(diags[i].Code, &diags[i]); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

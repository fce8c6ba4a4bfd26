// Package report turns a verify.Report into the text a user reads.
package report

import (
	"CheckHash/internal/verify"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/colorstring"
)

const separator = "========================================================================="

type Options struct {
	Lang   string // "sv" | "en"
	Format string // "text" | "json"
	Color  bool
}

func Render(w io.Writer, r verify.Report, opts Options) error {
	if strings.EqualFold(opts.Format, "json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	_, err := io.WriteString(w, Text(r, opts))
	return err
}

// Text renders r in the given language. User-supplied values are never run
// through the color parser.
func Text(r verify.Report, opts Options) string {
	m := lookup(strings.ToLower(opts.Lang))
	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !opts.Color,
		Reset:   true,
	}
	paint := func(color, s string) string { return c.Color("[" + color + "]" + s) }

	var b strings.Builder
	line := func(s ...string) {
		b.WriteString(strings.Join(s, ""))
		b.WriteString("\n")
	}

	if r.Outcome == verify.MissingFilename {
		banner := strings.Repeat("=", len(m.noFile))
		line(banner)
		line(paint("red", m.noFile))
		line(banner)
		if r.Hash != "" {
			line()
			line(m.hash)
			line(r.Hash)
		}
		return b.String()
	}

	line(m.file, r.Path)
	line()
	line(m.hash)
	line(r.Hash)
	line()
	line(m.bits, fmt.Sprint(utf8.RuneCountInString(r.Hash)*4))
	line()

	if r.Outcome == verify.UnknownAlgorithm {
		line(m.validLengths)
		line()
		line(paint("red", "ERROR: !!!!!!!!!!!!!!!!!!!!!!"))
		line(paint("red", m.unknownAlg))
		line(paint("red", "ERROR: !!!!!!!!!!!!!!!!!!!!!!"))
		return b.String()
	}

	line(m.assumed, strings.ToLower(r.Algorithm.String()))
	line()

	if r.Outcome == verify.IOFailure {
		bang := strings.Repeat("!", 58)
		code, desc := 0, ""
		if r.Err != nil {
			code, desc = r.Err.Code, r.Err.Description
		}
		line(separator)
		line(paint("red", bang))
		line(paint("red", fmt.Sprintf("!!! %s(%d): ", m.ioError, code)), desc, paint("red", " !!!"))
		line(paint("red", bang))
		line(separator)
		return b.String()
	}

	line(m.claimed)
	line(r.Hash)
	line()
	line(m.computed)
	line(r.Computed)
	line(strings.ToUpper(r.Computed))
	line()

	if r.Outcome == verify.Match {
		line(paint("green", m.ok))
		line()
		line(paint("green", m.okFile))
		line(r.Path)
		line()
		line(":-)")
		return b.String()
	}

	line(paint("yellow", m.warning))
	line(separator)
	return b.String()
}

func About(lang string) string {
	return lookup(strings.ToLower(lang)).about + "\n"
}

func Prompt(lang string) string {
	return lookup(strings.ToLower(lang)).prompt
}

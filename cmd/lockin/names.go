package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/algo-lockin/dsp/filter/fir"
	"github.com/cwbudde/algo-lockin/dsp/window"
	"github.com/cwbudde/algo-lockin/internal/logging"
)

// canonicalWindow maps a user supplied name such as "hanning" or
// " Kaiser35" to its window type. Unrecognized names fall back to the
// rectangular window with a warning.
func canonicalWindow(name string, log logging.Logger) window.Type {
	canon := cases.Upper(language.Und).String(strings.TrimSpace(name))
	if t, ok := window.Lookup(canon); ok {
		return t
	}
	log.Warn("unknown window, using rectangular", logging.Fields{"window": name})
	return window.ParseType(canon)
}

func canonicalKind(name string) (fir.Kind, error) {
	return fir.ParseKind(cases.Lower(language.Und).String(strings.TrimSpace(name)))
}

// displayName renders a canonical window name for tables, e.g. "Nuttall4c".
func displayName(t window.Type) string {
	return cases.Title(language.Und).String(cases.Lower(language.Und).String(t.String()))
}

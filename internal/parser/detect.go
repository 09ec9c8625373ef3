package parser

import (
	"regexp"
	"strings"
)

// Format names one of the two supported chart dialects.
type Format string

const (
	FormatChordPro Format = "chordpro"
	FormatSimple   Format = "simple"
	FormatUnknown  Format = "unknown"
)

var (
	// a {directive} alone on a line
	directiveLineRe = regexp.MustCompile(`^\{[^{}]+\}$`)
	// an inline [chord] butted up against word characters
	inlineChordRe = regexp.MustCompile(`\w\[[^\[\]]+\]|\[[^\[\]]+\]\w`)
	// a standalone bracketed section header: caps, digits, spaces
	simpleHeaderRe = regexp.MustCompile(`^\[[A-Z0-9 ]+\]$`)
	// a leading "Label: value" metadata shape
	simpleMetaRe = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{0,20}[:=]`)
)

// DetectFormat classifies raw chart text as one of the two dialects.
// Directive and inline-chord signals win outright; section-header and
// metadata shapes select the simple dialect; with no signals at all the
// simple dialect is the default. Empty input is unknown.
func DetectFormat(text string) Format {
	if strings.TrimSpace(text) == "" {
		return FormatUnknown
	}

	var hasDirective, hasInlineChord, hasHeader, hasMeta bool
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if directiveLineRe.MatchString(line) {
			hasDirective = true
		}
		if inlineChordRe.MatchString(line) {
			hasInlineChord = true
		}
		if simpleHeaderRe.MatchString(line) {
			hasHeader = true
		}
		if simpleMetaRe.MatchString(line) {
			hasMeta = true
		}
	}

	switch {
	case hasDirective || hasInlineChord:
		return FormatChordPro
	case hasHeader || hasMeta:
		return FormatSimple
	default:
		return FormatSimple
	}
}

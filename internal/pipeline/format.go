// Package pipeline turns raw scanned payloads into enriched contact records.
// Every function is a total, side-effect-free transformation over its input;
// malformed data degrades to placeholder values instead of errors.
package pipeline

import "strings"

// Format identifies which input grammar a scanned payload uses.
type Format int

// Recognized payload grammars, in sniffing priority order.
const (
	FormatStructured Format = iota
	FormatDelimited
	FormatHyperlink
	FormatFreeText
)

// String returns a stable label for logging and API payloads.
func (f Format) String() string {
	switch f {
	case FormatStructured:
		return "structured"
	case FormatDelimited:
		return "delimited"
	case FormatHyperlink:
		return "hyperlink"
	default:
		return "freetext"
	}
}

// Classify sniffs the payload and selects a grammar. The checks run in a fixed
// priority order, so ambiguous inputs (a URL containing a pipe, say) resolve
// deterministically: braces win over pipes, pipes win over the http prefix.
func Classify(raw string) Format {
	switch {
	case strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}"):
		return FormatStructured
	case strings.Contains(raw, "|"):
		return FormatDelimited
	case strings.HasPrefix(raw, "http"):
		return FormatHyperlink
	default:
		return FormatFreeText
	}
}

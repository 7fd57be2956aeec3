// Package parmsbook embeds the SaR II parameter reference source.
package parmsbook

import (
	_ "embed"
	"strings"

	"sar2tools/internal/markup"
)

//go:embed sar2parms.txt
var raw string

// Raw returns the source in its authoring format.
func Raw() string { return raw }

// Source returns the decoded, flat delimited string.
func Source() (string, error) {
	return markup.DecodeSource(strings.NewReader(raw))
}

// Package ui embeds the HTML templates for the valuation wizard.
package ui

import "embed"

//go:embed templates
var Files embed.FS

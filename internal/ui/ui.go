// Package ui embeds the built frontend so the server ships as one binary.
package ui

import "embed"

//go:embed dist
var DistFS embed.FS

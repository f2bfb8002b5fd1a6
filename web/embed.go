// Package web embeds the HTML templates and static assets served in release
// mode. In debug mode the same directory is read from disk for hot reload.
package web

import "embed"

//go:embed templates static
var EmbeddedFS embed.FS

// Package mazedata provides the bundled sample mazefiles and utilities for loading them.
package mazedata

import "embed"

// dataFS embeds the maze index and every mazefile in this directory at build time.
//
//go:embed index.json *.maze
var dataFS embed.FS

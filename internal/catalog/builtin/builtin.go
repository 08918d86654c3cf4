// Package builtin embeds the agent catalog shipped with agentsel.
package builtin

import (
	"embed"
	"io/fs"
)

//go:embed agents
var content embed.FS

// FS returns the embedded catalog rooted at its entry directory, suitable
// for catalog.Load.
func FS() fs.FS {
	sub, err := fs.Sub(content, "agents")
	if err != nil {
		// Unreachable: the directory is embedded at compile time.
		panic(err)
	}
	return sub
}

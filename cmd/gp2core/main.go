// Command gp2core is a small inspection tool over the host-graph runtime:
// it replays a line-oriented script of node/edge/snapshot operations
// against a graph.Graph and reports the resulting state. It does not
// implement GP2 itself — no lexer, parser, or rule matcher — it exercises
// the core the way an embedder would.
package main

import (
	"os"

	"github.com/ismaili-ziad/GP2/cmd/gp2core/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

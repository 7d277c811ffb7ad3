// Command graphsearch is an interactive exerciser for a small undirected
// graph: insert vertices and edges, run depth-first and breadth-first
// searches and print the adjacency lists.
//
//	graphsearch [--config file] [--capacity n] [--no-menu] [--log-level l] [--log-format f]
//
// Commands are read from stdin, results go to stdout, logs to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "graphsearch:", err)
		stop()
		os.Exit(1)
	}
}

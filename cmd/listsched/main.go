// Command listsched is the reference driver for the list-scheduling
// engine: it loads a processor descriptor and data-flow graph from a JSON
// file, runs a forward schedule or the coordinate-descent search driver
// over it, and prints the resulting makespan (spec.md §6).
package main

import "github.com/pietrek928/listsched/cmd/listsched/cmd"

func main() {
	cmd.Execute()
}

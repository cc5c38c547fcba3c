// Package listsched schedules a data-flow operation graph over an abstract
// processor with multiple execution ports and a tiered memory hierarchy.
//
// The module is organized as:
//
//	procmodel/  — immutable processor description: ports, op catalog, mem tiers
//	procstate/  — per-attempt simulated processor state: port contention,
//	              memory-tier selection, and the resulting makespan
//	program/    — the data-flow graph bound to a processor, with the
//	              priority-ordered forward/backward topological walks
//	search/     — the coordinate-descent local search driver over priority
//	              vectors
//	smtree/     — the segment tree used to track peak simultaneous liveness
//	internal/   — input-file decoding, CLI config/logging, and a synthetic
//	              DAG-fixture generator used by tests and `listsched generate`
//	cmd/listsched/ — the reference CLI driver
package listsched

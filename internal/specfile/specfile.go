// Package specfile decodes the JSON processor-descriptor and graph input
// files the listsched CLI accepts (spec.md §6, "Constructor inputs…from
// the embedding layer"). No third-party JSON/schema library in the
// retrieved example pack targets this bespoke shape, so stdlib
// encoding/json is used directly; see DESIGN.md.
package specfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pietrek928/listsched/procmodel"
	"github.com/pietrek928/listsched/program"
)

// MemTier is one entry of the "mem_tiers" array, in fast-to-slow order.
type MemTier struct {
	Size     int     `json:"size"`
	Port     int     `json:"port"`
	LoadTime float64 `json:"load_time"`
}

// Op is one entry of the "ops" catalog array.
type Op struct {
	Latency float64 `json:"latency"`
	Ports   []int   `json:"ports"`
}

// Node is one entry of the "nodes" array.
type Node struct {
	Op       int     `json:"op"`
	StartPos int     `json:"start_pos"`
	EndPos   int     `json:"end_pos"`
	ExpUse   float64 `json:"exp_use"`
}

// File is the top-level shape of a listsched input document.
type File struct {
	Ports    int       `json:"ports"`
	MemTiers []MemTier `json:"mem_tiers"`
	Ops      []Op      `json:"ops"`
	Nodes    []Node    `json:"nodes"`
	// Preds[v] lists v's predecessor node indices (G[v] in spec.md's
	// notation).
	Preds [][]int `json:"preds"`
}

// Load reads and decodes a File from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: reading %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("specfile: decoding %s: %w", path, err)
	}

	return &f, nil
}

// Build constructs the processor descriptor and program described by f.
func (f *File) Build() (*procmodel.Descriptor, *program.Program, error) {
	desc, err := procmodel.NewDescriptor(f.Ports)
	if err != nil {
		return nil, nil, fmt.Errorf("specfile: building processor descriptor: %w", err)
	}

	for i, t := range f.MemTiers {
		if _, err := desc.NewMemLevel(t.Size, t.Port, t.LoadTime); err != nil {
			return nil, nil, fmt.Errorf("specfile: mem_tiers[%d]: %w", i, err)
		}
	}

	for i, o := range f.Ops {
		if _, err := desc.NewOp(o.Latency, o.Ports); err != nil {
			return nil, nil, fmt.Errorf("specfile: ops[%d]: %w", i, err)
		}
	}

	nodes := make([]program.NodeSpec, len(f.Nodes))
	for i, n := range f.Nodes {
		nodes[i] = program.NodeSpec{Op: n.Op, StartPos: n.StartPos, EndPos: n.EndPos, ExpUse: n.ExpUse}
	}

	prog, err := program.New(desc, nodes, f.Preds)
	if err != nil {
		return nil, nil, fmt.Errorf("specfile: building program: %w", err)
	}

	return desc, prog, nil
}

// SeedOrder returns the reference driver's initial priority vector,
// order[i] = -i, matching pietrek928/speedups' test() driver
// (original_source/optim.h).
func SeedOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = -i
	}

	return order
}

package procstate

import (
	"github.com/pietrek928/listsched/procmodel"
	"github.com/pietrek928/listsched/smtree"
)

// State is the mutable simulator for one scheduling attempt over a fixed
// processor. See doc.go for the per-step commit protocol.
type State struct {
	proc  *procmodel.Descriptor
	tiers []procmodel.MemTier // cached copy, Descriptor is immutable post-construction

	mt            *smtree.Tree
	portsFreeTime []float64

	endT      []float64
	endSet    []bool
	lastUsage []int

	portTraffic map[int]float64
	opStartT    float64
}

// New builds a State for n nodes against the given processor descriptor.
// The returned State starts pristine (equivalent to calling Reset).
func New(proc *procmodel.Descriptor, n int) (*State, error) {
	if proc == nil {
		return nil, ErrNilDescriptor
	}
	if n < 0 {
		return nil, ErrNegativeNodeCount
	}
	tiers := proc.Tiers()
	if len(tiers) == 0 {
		return nil, ErrNoMemoryTiers
	}

	mt, err := smtree.New(n + 1)
	if err != nil {
		return nil, err
	}

	s := &State{
		proc:          proc,
		tiers:         tiers,
		mt:            mt,
		portsFreeTime: make([]float64, proc.NPorts()),
		endT:          make([]float64, n),
		endSet:        make([]bool, n),
		lastUsage:     make([]int, n),
		portTraffic:   make(map[int]float64),
	}

	return s, nil
}

// Reset rewinds port free-times, the liveness range tree, the
// earliest-start clock, and the per-node emitted flags to a pristine state,
// without reallocating the backing buffers. end_t/last_usage values are
// intentionally left untouched: a
// correctly-driven attempt overwrites every node's entry before any
// consumer reads it, exactly as pietrek928/speedups' proc_state::clear
// does (spec.md §4.C, §9).
func (s *State) Reset() {
	s.opStartT = 0
	s.mt.Clear()
	for i := range s.portsFreeTime {
		s.portsFreeTime[i] = 0
	}
	for i := range s.endSet {
		s.endSet[i] = false
	}
	for k := range s.portTraffic {
		delete(s.portTraffic, k)
	}
}

// BeginOp clears the transient per-port traffic accumulator ahead of the
// UseMem calls for the node about to be emitted at step.
func (s *State) BeginOp() {
	for k := range s.portTraffic {
		delete(s.portTraffic, k)
	}
}

// memLevelSelect walks the tier list in fast-to-slow order and returns the
// first tier whose cumulative capacity is >= q; if q exceeds the total
// capacity, the slowest tier absorbs the overflow (CapacityExceeded,
// spec.md §7 — a modeling fact, not an error).
func (s *State) memLevelSelect(q int) procmodel.MemTier {
	remaining := q
	for _, m := range s.tiers {
		if remaining <= m.Size {
			return m
		}
		remaining -= m.Size
	}

	return s.tiers[len(s.tiers)-1]
}

// UseMem records that the node being emitted at step consumes the value
// produced (or last consumed) by predecessor u: it extends u's live
// interval in the range tree, selects u's reload tier by the resulting
// peak-liveness count, accrues that tier's load cost on its bound port,
// and advances the pending earliest-start clock past u's completion time.
func (s *State) UseMem(u, step int) error {
	if u < 0 || u >= len(s.lastUsage) {
		return ErrUnknownNode
	}
	if !s.endSet[u] {
		return ErrPredecessorNotEmitted
	}

	srcStep := s.lastUsage[u]
	q, err := s.mt.Inc(srcStep, step)
	if err != nil {
		return err
	}

	tier := s.memLevelSelect(q)
	s.portTraffic[tier.Port] += tier.LoadTime

	if s.endT[u] > s.opStartT {
		s.opStartT = s.endT[u]
	}
	s.lastUsage[u] = step

	return nil
}

// Perform commits the operation for node v at step: accrued memory
// traffic is serialized into the ports it touched (each such port's free
// time advances to max(free_time+traffic, earliest_start), which in turn
// becomes the new earliest_start), then the admissible port with the
// smallest free time is chosen to execute op — ties broken in favor of
// whichever port was encountered first in op.Ports.
func (s *State) Perform(v, step int, op procmodel.Op) error {
	if v < 0 || v >= len(s.endT) {
		return ErrUnknownNode
	}

	// Iterated in ascending port order (not map order) so that the
	// sequential threading of opStartT through each touched port below
	// is deterministic, matching pietrek928/speedups' use of an ordered
	// map keyed by port index.
	for port := 0; port < len(s.portsFreeTime); port++ {
		useTime, touched := s.portTraffic[port]
		if !touched {
			continue
		}

		next := s.portsFreeTime[port] + useTime
		if s.opStartT > next {
			next = s.opStartT
		}
		s.portsFreeTime[port] = next
		s.opStartT = next
	}

	chosen := -1
	var chosenFree float64
	for _, p := range op.Ports {
		if chosen == -1 || s.portsFreeTime[p] < chosenFree {
			chosen = p
			chosenFree = s.portsFreeTime[p]
		}
	}

	start := s.opStartT
	if chosenFree > start {
		start = chosenFree
	}
	end := start + op.Len

	s.portsFreeTime[chosen] = end
	s.endT[v] = end
	s.endSet[v] = true
	s.lastUsage[v] = step
	s.opStartT = start

	return nil
}

// FinishTime returns the overall makespan: the maximum free time across
// every port once all nodes have been emitted.
func (s *State) FinishTime() float64 {
	m := 0.0
	for i, t := range s.portsFreeTime {
		if i == 0 || t > m {
			m = t
		}
	}

	return m
}

// EndTime returns node v's completion time and whether Perform has been
// called for it in the current attempt.
func (s *State) EndTime(v int) (float64, bool) {
	if v < 0 || v >= len(s.endT) {
		return 0, false
	}

	return s.endT[v], s.endSet[v]
}

// PortsFreeTime returns a copy of the current per-port free-time vector.
func (s *State) PortsFreeTime() []float64 {
	out := make([]float64, len(s.portsFreeTime))
	copy(out, s.portsFreeTime)

	return out
}

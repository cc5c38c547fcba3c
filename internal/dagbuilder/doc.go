// Package dagbuilder generates synthetic predecessor graphs for exercising
// the scheduler against larger, regularly-shaped or randomized data-flow
// graphs than the small hand-written fixtures in program/search tests.
//
// Each topology (Chain, FanIn, FanOut, Grid, RandomSparse) is a Constructor
// closure that fills in a preds slice
// for n nodes; Build applies functional Options (an RNG source, an edge
// density) and returns the resulting preds[v] = list of v's predecessors,
// always satisfying pred < v so the result is acyclic by construction.
package dagbuilder

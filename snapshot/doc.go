// Package snapshot implements the speculative-execution stack that backs
// GP2's try…then…else, if…then…else, and P! control constructs: Push takes
// a deep copy of a graph.Graph and records it, Restore discards the
// caller's current graph and hands back the most recently pushed copy.
//
// Unlike the original runtime, which keeps this stack in a module-level
// global (Stack *graph_stack), a Stack here is an explicit value the caller
// threads through — typically one per executor — so independent evaluations
// never share or corrupt each other's snapshots.
package snapshot

// Package gp2 is the runtime graph-manipulation core for GP2, a declarative
// graph-transformation language: a stable-index host-graph store, the
// label-class secondary index used to accelerate rule matching, and the
// snapshot/restore mechanism that supports the speculative execution and
// backtracking required by try…then…else and nested control constructs.
//
// This module does not implement GP2 itself — no lexer, parser, AST,
// symbol table, semantic analyser, expression VM, or pattern matcher.
// Those are external collaborators that consume the read-only query
// surface exposed by package graph.
//
// Organized into:
//
//	slotset/    — generic slotted container with LIFO free-slot reuse
//	label/      — Label, Atom, label class, Mark
//	graph/      — Node, Edge, Graph store, label-class index, validation
//	snapshot/   — snapshot stack for speculative execution
//	gptext/     — textual and verbose serialisation
//	gpconfig/   — runtime-configurable node/edge/incidence ceilings
//	diagnostics/— console + structured log sinks
//	cmd/gp2core/— CLI replaying a script of operations against a host graph
package gp2

// Package label implements the GP2 label AST: atoms, marks, labels, and the
// coarse label-class classification used by the graph store's secondary
// index. Everything here is a value type; a Label is owned exclusively by
// whichever node or edge holds it (see package graph), so Clone is the only
// sanctioned way to share structure across two owners.
package label

// Package slotset provides the generic append-with-reuse container that
// backs every stable-index collection in the GP2 host-graph runtime: the
// graph's node and edge catalogs, and each node's two incidence arrays.
//
// A Set hands out a stable integer index on Insert and recycles indices
// freed by Remove via a LIFO free-slot stack, exactly as described for the
// slotted container in the host-graph specification. Elements carry their
// own index (they implement Indexable) so that a live handle always knows
// where it lives, mirroring the original C implementation's convention of
// storing node->index / edge->index on the element itself rather than
// threading the index alongside it.
package slotset

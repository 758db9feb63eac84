package graph

// NodeClassMapLen and EdgeClassMapLen expose the number of live map entries
// in nodesByClass / edgesByClass for white-box test assertions (e.g. that a
// class's map entry collapses once its list empties), mirroring the
// teacher's export-privates-for-test convention.

// NodeClassMapLen returns the number of distinct classes currently present
// in g's nodes-by-class map.
func (g *Graph) NodeClassMapLen() int { return len(g.nodesByClass) }

// EdgeClassMapLen returns the number of distinct classes currently present
// in g's edges-by-class map.
func (g *Graph) EdgeClassMapLen() int { return len(g.edgesByClass) }

// Package gptext renders a graph.Graph into the textual and verbose forms
// defined for the GP2 runtime, grounded on the original implementation's
// printGraph/printVerboseGraph/printList/printMark family of functions. It
// is read-only: every function here is a pure function of the graph's
// query surface.
package gptext

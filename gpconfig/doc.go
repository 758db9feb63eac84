// Package gpconfig resolves the runtime-configurable ceilings a
// graph.Graph is constructed with — maximum nodes, maximum edges, maximum
// incident edges per node — from defaults, an optional YAML config file,
// and environment variables, via spf13/viper. This is the Go analogue of
// the original runtime's compile-time MAX_NODES/MAX_EDGES/
// MAX_INCIDENT_EDGES constants: a construction-time value instead of a
// preprocessor definition.
package gpconfig

// Package export defines the exporter contract shared by every output format
// and the registry the orchestrator resolves formats through.
package export

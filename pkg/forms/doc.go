// Package forms defines the typed snapshot model every pipeline stage
// consumes: the item union with its raw variant tags, navigation directives,
// top-level metadata, and the Provider/Source/Loader contracts used to acquire
// snapshots. The snapshot is immutable once fetched; exporters receive it by
// read-only reference and never re-fetch.
package forms

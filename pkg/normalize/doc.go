// Package normalize flattens the item union into the uniform record shape the
// structured export serializes. Extraction is fail-soft: recoverable per-item
// conditions degrade the record and surface on a reporter side channel instead
// of aborting the run.
package normalize

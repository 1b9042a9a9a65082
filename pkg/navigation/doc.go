// Package navigation assigns section numbers to page-break items and resolves
// navigation directives (continue / submit / jump-to-section) into the
// descriptors the prose exporter embeds in its output.
package navigation

// Package richtext converts the limited rich-text markup found in form
// titles, descriptions and help text into prose (markdown) markup.
package richtext

package prose

import (
	"fmt"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/forms"
)

// renderHeader evaluates the optional front-matter template with the snapshot
// metadata bound. Template errors are caller misconfiguration and abort the
// export.
func renderHeader(options export.Options, metadata forms.Metadata) ([]string, error) {
	tmpl, err := pongo2.FromString(options.HeaderTemplate)
	if err != nil {
		return nil, fmt.Errorf("prose: parse header template: %w", err)
	}

	rendered, err := tmpl.Execute(pongo2.Context{
		"title":        metadata.Title,
		"description":  metadata.Description,
		"generated_at": options.Now().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("prose: execute header template: %w", err)
	}

	rendered = strings.TrimRight(rendered, "\n")
	if rendered == "" {
		return nil, nil
	}
	return strings.Split(rendered, "\n"), nil
}

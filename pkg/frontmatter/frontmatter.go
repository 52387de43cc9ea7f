// Package frontmatter extracts YAML frontmatter from Markdown content,
// so tracked documents can carry their own metadata into a version.
package frontmatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata aliases the flexible YAML frontmatter map.
type Metadata map[string]interface{}

// Parse splits content into its frontmatter metadata and body.
// Content without a leading --- fence is all body, with nil metadata.
func Parse(content string) (Metadata, string, error) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return nil, content, nil
	}

	rest := content[3:] // skip the opening ---

	// The closing fence must exist; a lone opening fence is malformed.
	idx := strings.Index(rest, "---")
	if idx < 0 {
		return nil, "", errors.New("frontmatter started but no closing delimiter found")
	}

	meta := make(Metadata)
	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body := rest[idx+3:]
	body = strings.TrimPrefix(body, "\r\n")
	body = strings.TrimPrefix(body, "\n")

	return meta, body, nil
}

// Scalars flattens the top-level scalar fields of metadata into the
// string map a version carries. Nested mappings and sequences are
// skipped; version metadata stays a flat string-to-string mapping.
func Scalars(meta Metadata) map[string]string {
	if len(meta) == 0 {
		return nil
	}

	out := make(map[string]string)
	for k, v := range meta {
		switch val := v.(type) {
		case string:
			out[k] = val
		case bool:
			out[k] = strconv.FormatBool(val)
		case int:
			out[k] = strconv.Itoa(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'g', -1, 64)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

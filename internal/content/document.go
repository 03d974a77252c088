package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the raw form of a content file: the decoded frontmatter mapping
// and the untouched body text.
type Document struct {
	Path string
	Meta map[string]any
	Body string
}

var errUnterminatedFrontmatter = errors.New("frontmatter opened but no closing delimiter found")

// splitFrontmatter separates a leading `---` delimited YAML block from the
// body. A file without a frontmatter block yields an empty mapping and the
// full text as body; required-field validation rejects it later.
func splitFrontmatter(data []byte) (map[string]any, string, error) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return map[string]any{}, string(data), nil
	}

	rest := data[bytes.IndexByte(data, '\n')+1:]

	var yamlPart, bodyPart []byte
	switch {
	case bytes.HasPrefix(rest, []byte("---")):
		// empty frontmatter block
		bodyPart = rest[3:]
	default:
		end := bytes.Index(rest, []byte("\n---"))
		if end < 0 {
			return nil, "", errUnterminatedFrontmatter
		}
		yamlPart = rest[:end]
		bodyPart = rest[end+len("\n---"):]
	}

	// Drop the remainder of the closing delimiter line.
	if i := bytes.IndexByte(bodyPart, '\n'); i >= 0 {
		bodyPart = bodyPart[i+1:]
	} else {
		bodyPart = nil
	}

	meta := map[string]any{}
	if len(bytes.TrimSpace(yamlPart)) > 0 {
		if err := yaml.Unmarshal(yamlPart, &meta); err != nil {
			return nil, "", fmt.Errorf("decode frontmatter: %w", err)
		}
	}

	body := strings.TrimPrefix(string(bodyPart), "\n")
	return meta, body, nil
}

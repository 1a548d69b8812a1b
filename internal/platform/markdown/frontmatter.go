package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Split separates a leading YAML frontmatter block from body and decodes it
// into meta when meta is non-nil. Content without frontmatter is all body.
// CRLF line endings are normalized first.
func Split(content string, meta any) (string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fence+"\n") {
		return content, nil
	}
	rest := content[len(fence)+1:]
	raw, body, ok := strings.Cut(rest, "\n"+fence+"\n")
	if !ok {
		if !strings.HasSuffix(rest, "\n"+fence) {
			return "", fmt.Errorf("frontmatter: missing closing %q", fence)
		}
		raw, body = strings.TrimSuffix(rest, "\n"+fence), ""
	}
	if meta != nil {
		if err := yaml.Unmarshal([]byte(raw), meta); err != nil {
			return "", fmt.Errorf("frontmatter: %w", err)
		}
	}
	return body, nil
}

// Render writes meta as frontmatter ahead of body. Struct fields keep their
// declared order.
func Render(meta any, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(fence + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	buf.WriteString(fence + "\n")
	if !strings.HasPrefix(body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(body)
	return buf.String(), nil
}

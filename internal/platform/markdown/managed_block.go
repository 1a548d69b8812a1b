package markdown

import "strings"

// Block is a generated region of a note, fenced by HTML comments so it stays
// invisible when rendered. Text outside the fences belongs to the author.
type Block struct {
	Owner string
	Name  string
}

func (b Block) start() string { return "<!-- " + b.Owner + ":" + b.Name + ":start -->" }
func (b Block) end() string   { return "<!-- " + b.Owner + ":" + b.Name + ":end -->" }

// Replace swaps the block's content for generated, appending the block when
// body has none yet.
func (b Block) Replace(body, generated string) string {
	fenced := b.start() + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.end()

	if i, j, ok := b.bounds(body); ok {
		return body[:i] + fenced + body[j:]
	}
	switch {
	case strings.TrimSpace(body) == "":
		return fenced + "\n"
	case strings.HasSuffix(body, "\n\n"):
		return body + fenced + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + fenced + "\n"
	default:
		return body + "\n\n" + fenced + "\n"
	}
}

// Extract returns the generated content between the fences.
func (b Block) Extract(body string) (string, bool) {
	i, j, ok := b.bounds(body)
	if !ok {
		return "", false
	}
	inner := body[i+len(b.start()) : j-len(b.end())]
	return strings.Trim(inner, "\n"), true
}

func (b Block) bounds(body string) (int, int, bool) {
	i := strings.Index(body, b.start())
	if i < 0 {
		return 0, 0, false
	}
	j := strings.Index(body[i:], b.end())
	if j < 0 {
		return 0, 0, false
	}
	return i, i + j + len(b.end()), true
}

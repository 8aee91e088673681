package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractArray isolates the first balanced JSON array in text and returns it
// after a strict parse check. The remote service often wraps its payload in
// explanatory prose or markdown fences, so a bare json.Unmarshal of the whole
// response is not an option.
func ExtractArray(text string) (json.RawMessage, error) {
	return extract(text, '[', ']')
}

// ExtractObject isolates the first balanced JSON object in text.
func ExtractObject(text string) (json.RawMessage, error) {
	return extract(text, '{', '}')
}

func extract(text string, open, close byte) (json.RawMessage, error) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return nil, &ErrInvalidResponse{
			Content: text,
			Err:     fmt.Errorf("no %q found in response", string(open)),
		}
	}

	end, err := matchBracket(text, start, open, close)
	if err != nil {
		return nil, &ErrInvalidResponse{Content: text, Err: err}
	}

	candidate := json.RawMessage(text[start : end+1])

	// Parse strictly; a balanced substring is not necessarily valid JSON.
	var parsed any
	if uerr := json.Unmarshal(candidate, &parsed); uerr != nil {
		return nil, &ErrInvalidResponse{
			Content: text,
			Err:     fmt.Errorf("extracted payload is not valid JSON: %w", uerr),
		}
	}

	return candidate, nil
}

// matchBracket returns the index of the bracket closing the one at start,
// skipping brackets inside JSON string literals.
func matchBracket(text string, start int, open, close byte) (int, error) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("unbalanced %q in response", string(open))
}

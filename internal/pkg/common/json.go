package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseJSON decodes a JSON string into v, rejecting trailing data after the
// first value.
func ParseJSON(data string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

// StripCodeFence removes a surrounding markdown code fence, if present.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ExtractJSONValue narrows text to the outermost JSON array or object, if one
// can be found. Models often wrap their JSON in prose.
func ExtractJSONValue(text string) string {
	text = StripCodeFence(text)

	arrStart, arrEnd := strings.Index(text, "["), strings.LastIndex(text, "]")
	objStart, objEnd := strings.Index(text, "{"), strings.LastIndex(text, "}")

	// Prefer the array when it encloses the object.
	if arrStart != -1 && arrEnd > arrStart && (objStart == -1 || arrStart < objStart) {
		return text[arrStart : arrEnd+1]
	}
	if objStart != -1 && objEnd > objStart {
		return text[objStart : objEnd+1]
	}
	return text
}

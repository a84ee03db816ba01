// README: Per-provider request/response field layouts for hosted completion APIs.
package ai

import "fmt"

// providerShape describes how one provider family lays out its completion
// API: how the prompt is carried in the request and where in the response
// body the completion text lives. Only the fields the request builder and
// the response parser actually consume are modelled.
type providerShape struct {
	// ChatMessages wraps the prompt as messages:[{role,content}] instead of
	// a flat prompt field.
	ChatMessages bool
	// PromptField names the flat prompt key when ChatMessages is false.
	PromptField string
	// ResponsePath is the nested path to the completion text: string keys
	// index objects, int keys index arrays.
	ResponsePath []any
}

var providerShapes = map[string]providerShape{
	"openai": {
		ChatMessages: true,
		ResponsePath: []any{"choices", 0, "message", "content"},
	},
	"huggingface": {
		PromptField:  "inputs",
		ResponsePath: []any{"generated_text"},
	},
	"anthropic": {
		PromptField:  "prompt",
		ResponsePath: []any{"completion"},
	},
}

// shapeFor resolves a provider name to its shape. Unrecognized names fall
// back to the huggingface layout rather than failing.
func shapeFor(name string) providerShape {
	if s, ok := providerShapes[name]; ok {
		return s
	}
	return providerShapes["huggingface"]
}

// lookupPath walks a decoded JSON document along a provider's response path
// and returns the string at the end of it.
func lookupPath(doc any, path []any) (string, error) {
	cur := doc
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return "", fmt.Errorf("response path %v: expected object at %q", path, key)
			}
			cur, ok = obj[key]
			if !ok {
				return "", fmt.Errorf("response path %v: missing key %q", path, key)
			}
		case int:
			arr, ok := cur.([]any)
			if !ok {
				return "", fmt.Errorf("response path %v: expected array at index %d", path, key)
			}
			if key < 0 || key >= len(arr) {
				return "", fmt.Errorf("response path %v: index %d out of range", path, key)
			}
			cur = arr[key]
		default:
			return "", fmt.Errorf("response path %v: unsupported step %T", path, step)
		}
	}

	text, ok := cur.(string)
	if !ok {
		return "", fmt.Errorf("response path %v: completion is %T, not string", path, cur)
	}
	return text, nil
}

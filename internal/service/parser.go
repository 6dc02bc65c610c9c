package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pageza/lista/backend/internal/types"
)

// jsonObjectPattern spans from the first '{' to the last '}' in the reply,
// which tolerates prose or code fences around the object.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON returns the brace-delimited JSON candidate in content.
func ExtractJSON(content string) (string, bool) {
	match := jsonObjectPattern.FindString(strings.TrimSpace(content))
	if match == "" {
		return "", false
	}
	return match, true
}

// ParseExtraction turns a model reply into an ExtractionResult. Ingredients
// default to an empty list; title and macros are left as the model sent them.
func ParseExtraction(content string) (*types.ExtractionResult, error) {
	raw, ok := ExtractJSON(content)
	if !ok {
		return nil, ErrNoJSON
	}

	var result types.ExtractionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse model JSON: %w", err)
	}

	if result.Ingredients == nil {
		result.Ingredients = []string{}
	}

	return &result, nil
}

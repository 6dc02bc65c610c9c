package types

import "encoding/json"

// ProcessRecipeRequest is the body accepted by the recipe extraction endpoints
type ProcessRecipeRequest struct {
	OCRText string `json:"ocrText"`
}

// ExtractionResult is the recipe data returned by the LLM.
//
// Title keeps whatever JSON value the model sent. Macros is relayed
// byte-for-byte: nil when the key is absent, "null" when the model
// reported no nutrition information, and otherwise an object such as
// {"calories":500,"protein":40,"carbs":57,"fat":14} (kcal and grams).
type ExtractionResult struct {
	Title       any             `json:"title"`
	Ingredients []string        `json:"ingredients"`
	Macros      json.RawMessage `json:"macros"`
}

// HasTitle reports whether Title is set to a truthy value. Missing, null,
// false, 0 and "" all count as no title.
func (r *ExtractionResult) HasTitle() bool {
	switch v := r.Title.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

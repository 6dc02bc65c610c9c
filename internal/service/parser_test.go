package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{"bare object", `{"title":"Pasta"}`, `{"title":"Pasta"}`, true},
		{"surrounding prose", "Here you go:\n{\"title\":\"Pasta\"}\nEnjoy!", `{"title":"Pasta"}`, true},
		{"code fence", "```json\n{\"a\":{\"b\":1}}\n```", `{"a":{"b":1}}`, true},
		{"spans first to last brace", `{"a":1} and {"b":2}`, `{"a":1} and {"b":2}`, true},
		{"no braces", "no json here", "", false},
		{"only opening brace", "{ incomplete", "", false},
		{"whitespace", "   \n  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.content)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExtraction(t *testing.T) {
	t.Run("null macros", func(t *testing.T) {
		result, err := ParseExtraction(`{"title":"Pasta","ingredients":["200g pasta"],"macros":null}`)
		require.NoError(t, err)
		assert.Equal(t, "Pasta", result.Title)
		assert.True(t, result.HasTitle())
		assert.Equal(t, "null", string(result.Macros))
	})

	t.Run("missing fields default", func(t *testing.T) {
		result, err := ParseExtraction(`{}`)
		require.NoError(t, err)
		assert.Nil(t, result.Title)
		assert.False(t, result.HasTitle())
		assert.NotNil(t, result.Ingredients)
		assert.Empty(t, result.Ingredients)
		assert.Nil(t, result.Macros)
	})

	t.Run("macros relayed unchanged", func(t *testing.T) {
		tests := []struct {
			name   string
			macros string
		}{
			{"partial", `{"calories":500}`},
			{"extra key", `{"calories":500,"protein":40,"carbs":57,"fat":14,"fiber":3}`},
			{"string values", `{"calories":"500","protein":"40g","carbs":"57g","fat":"14g"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := ParseExtraction(`{"title":"Pasta","ingredients":["1 egg"],"macros":` + tt.macros + `}`)
				require.NoError(t, err)
				assert.JSONEq(t, tt.macros, string(result.Macros))
			})
		}
	})

	t.Run("non-string title kept", func(t *testing.T) {
		result, err := ParseExtraction(`{"title":42,"ingredients":[]}`)
		require.NoError(t, err)
		assert.Equal(t, float64(42), result.Title)
		assert.True(t, result.HasTitle())
	})

	t.Run("multiple objects fail to parse", func(t *testing.T) {
		_, err := ParseExtraction(`{"a":1} and {"b":2}`)
		assert.Error(t, err)
	})

	t.Run("no JSON", func(t *testing.T) {
		_, err := ParseExtraction("plain text")
		assert.ErrorIs(t, err, ErrNoJSON)
	})
}

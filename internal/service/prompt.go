package service

import "fmt"

// Variant selects which extraction prompt and response shape is used
type Variant string

const (
	// VariantMacros extracts title, ingredients and macronutrients
	VariantMacros Variant = "macros"
	// VariantBasic extracts title and ingredients only
	VariantBasic Variant = "basic"
)

// promptSpec is the fixed part of a chat completion request for one variant
type promptSpec struct {
	system    string
	user      func(ocrText string) string
	maxTokens int
}

// The prompts are in Polish because the recipes (and the macro shorthand
// like "40b, 14t, 57w") are Polish.
var prompts = map[Variant]promptSpec{
	VariantMacros: {
		system:    "Jesteś asystentem kulinarnym. Wyciągnij składniki, makroskładniki i kalorie. Zwróć JSON.",
		user:      macrosUserPrompt,
		maxTokens: 1500,
	},
	VariantBasic: {
		system:    "Jesteś asystentem kulinarnym. Wyciągnij z tekstu składniki i zwróć JSON bez dodatkowego tekstu.",
		user:      basicUserPrompt,
		maxTokens: 1000,
	},
}

func macrosUserPrompt(ocrText string) string {
	return fmt.Sprintf(`Z tekstu OCR wyciągnij:
1. Tytuł przepisu
2. Składniki
3. Makroskładniki (białko, węglowodany, tłuszcze, kalorie)

Tekst OCR:
%s

WAŻNE o makroskładnikach:
- Szukaj: "białko", "b:", "b", "protein"
- Szukaj: "węglowodany", "węgle", "w:", "w", "carbs"
- Szukaj: "tłuszcze", "tłuszcz", "t:", "t", "fat"
- Szukaj: "kalorie", "kcal", "cal"
- Skróty: "500kcal, 40b, 14t, 57w" = 500 kcal, 40g białka, 14g tłuszczu, 57g węgli
- Jeśli brak w tekście, zwróć null

Zwróć TYLKO JSON:
{
  "title": "nazwa",
  "ingredients": ["składnik 1", "składnik 2"],
  "macros": {
    "calories": 500,
    "protein": 40,
    "carbs": 57,
    "fat": 14
  }
}

Lub jeśli brak makro:
{
  "title": "nazwa",
  "ingredients": [...],
  "macros": null
}

ZASADY:
- Usuń myślniki/kropki z początku składników
- Każdy składnik osobno
- BEZ instrukcji, BEZ nagłówków
- Makroskładniki w gramach, kalorie w kcal`, ocrText)
}

func basicUserPrompt(ocrText string) string {
	return fmt.Sprintf(`Z tekstu OCR wyciągnij tytuł przepisu i składniki. Popraw błędy OCR (np. "1509" to "150g").

Tekst OCR:
%s

Zwróć TYLKO JSON:
{
  "title": "nazwa",
  "ingredients": ["składnik 1", "składnik 2"]
}

WAŻNE:
- Usuń myślniki/kropki z początku
- Każdy składnik osobno
- BEZ instrukcji, BEZ nagłówków`, ocrText)
}

// buildMessages returns the system and user messages for a variant
func buildMessages(variant Variant, ocrText string) ([]Message, int, error) {
	spec, ok := prompts[variant]
	if !ok {
		return nil, 0, fmt.Errorf("unknown extraction variant %q", variant)
	}
	return []Message{
		{Role: "system", Content: spec.system},
		{Role: "user", Content: spec.user(ocrText)},
	}, spec.maxTokens, nil
}

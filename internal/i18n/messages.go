// Package i18n resolves user-facing messages for the caller's language.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	MissingOCRText        = "missing_ocr_text"
	MissingAPIKey         = "missing_api_key"
	MissingAPIKeyOnServer = "missing_api_key_on_server"
	UpstreamFailed        = "upstream_failed"
	UpstreamAPIFailed     = "upstream_api_failed"
	DefaultTitle          = "default_title"
	RateLimited           = "rate_limited"
)

var supported = []language.Tag{language.Polish, language.English}

var translations = map[language.Tag]map[string]string{
	language.Polish: {
		MissingOCRText:        "Brak tekstu OCR",
		MissingAPIKey:         "Brak klucza API",
		MissingAPIKeyOnServer: "Brak klucza API na serwerze",
		UpstreamFailed:        "Błąd OpenAI",
		UpstreamAPIFailed:     "Błąd OpenAI API",
		DefaultTitle:          "Przepis",
		RateLimited:           "Przekroczono limit zapytań",
	},
	language.English: {
		MissingOCRText:        "Missing OCR text",
		MissingAPIKey:         "Missing API key",
		MissingAPIKeyOnServer: "API key is not configured on the server",
		UpstreamFailed:        "OpenAI error",
		UpstreamAPIFailed:     "OpenAI API error",
		DefaultTitle:          "Recipe",
		RateLimited:           "Rate limit exceeded",
	},
}

// Translator picks a printer per request from the Accept-Language header
type Translator struct {
	catalog  catalog.Catalog
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

// NewTranslator builds the message catalog. defaultLocale is used when the
// request states no preference we support.
func NewTranslator(defaultLocale string) (*Translator, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.Polish))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}

	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, err
	}

	// The first tag of a matcher is its default.
	ordered := []language.Tag{fallback}
	for _, tag := range supported {
		if tag != fallback {
			ordered = append(ordered, tag)
		}
	}

	return &Translator{
		catalog:  builder,
		matcher:  language.NewMatcher(ordered),
		tags:     ordered,
		fallback: fallback,
	}, nil
}

// Lookup returns the message for key in the best language for acceptLanguage
func (t *Translator) Lookup(acceptLanguage, key string) string {
	return t.printer(acceptLanguage).Sprintf(key)
}

func (t *Translator) printer(acceptLanguage string) *message.Printer {
	tag := t.fallback
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			_, idx, confidence := t.matcher.Match(tags...)
			if confidence != language.No {
				tag = t.tags[idx]
			}
		}
	}
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

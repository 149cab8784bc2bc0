package localize

import "context"

// Translator is the capability of an external translation service. Empty or
// whitespace-only text must be returned unchanged without a network call.
// sourceLang may be empty to let the provider detect it.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
	Name() string
}

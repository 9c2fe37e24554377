package service

import (
	"fmt"
	"strings"
)

// Language is a supported translation target.
type Language struct {
	Code  string
	Label string
}

// languages is the closed set of targets the generation model is prompted
// with. Lookups accept the ISO code or the human-readable label (with or
// without the parenthesised native name the UI appends).
var languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "es", Label: "Spanish"},
	{Code: "fr", Label: "French"},
	{Code: "de", Label: "German"},
	{Code: "it", Label: "Italian"},
	{Code: "pt", Label: "Portuguese"},
	{Code: "ja", Label: "Japanese"},
	{Code: "ko", Label: "Korean"},
	{Code: "zh", Label: "Chinese"},
	{Code: "ru", Label: "Russian"},
	{Code: "ar", Label: "Arabic"},
	{Code: "hi", Label: "Hindi"},
}

// ResolveLanguage maps a target-language identifier to a supported Language.
// "Spanish (Español)", "Spanish" and "es" all resolve to the same entry.
func ResolveLanguage(target string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(target))
	if i := strings.IndexByte(normalized, '('); i >= 0 {
		normalized = strings.TrimSpace(normalized[:i])
	}
	for _, l := range languages {
		if normalized == l.Code || normalized == strings.ToLower(l.Label) {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("unsupported target language %q", target)
}

// SupportedLanguages returns the full target set, for the languages endpoint.
func SupportedLanguages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

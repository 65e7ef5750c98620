package domain

// LocalizedText maps a language code ("az", "en", "ru") to a translation.
type LocalizedText map[string]string

const DefaultLanguage = "az"

// Get returns the translation for lang, falling back to the default
// language and then to any non-empty translation.
func (t LocalizedText) Get(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLanguage]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// Empty reports whether no translation is present.
func (t LocalizedText) Empty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

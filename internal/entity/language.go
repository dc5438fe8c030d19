package entity

import (
	"fmt"
	"strings"
)

// Language is one of the closed set of output languages offered to the user.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"

	DefaultLanguage = LanguageEnglish
)

var languageCodes = map[Language]string{
	LanguageEnglish: "en",
	LanguageHindi:   "hi",
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi}
}

// ParseLanguage accepts a display name in any letter case. An empty name
// selects the default language.
func ParseLanguage(name string) (Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLanguage, nil
	}
	for _, lang := range Languages() {
		if strings.EqualFold(string(lang), name) {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
}

// Code returns the lowercase target code passed to translation services.
func (l Language) Code() string {
	return languageCodes[l]
}

func (l Language) IsDefault() bool {
	return l == DefaultLanguage
}

func (l Language) IsValid() bool {
	_, ok := languageCodes[l]
	return ok
}

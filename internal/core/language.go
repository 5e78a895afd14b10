package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnsupportedLanguage is returned when a language name is not part of the supported set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language identifies the programming language of a submitted snippet.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageJava       Language = "java"
	LanguageCPP        Language = "c++"
)

// SupportedLanguages returns the languages offered by the selector, in display order.
// The first entry is the default selection.
func SupportedLanguages() []Language {
	return []Language{
		LanguagePython,
		LanguageJavaScript,
		LanguageTypeScript,
		LanguageJava,
		LanguageCPP,
	}
}

// DefaultLanguage is the language selected on a fresh form.
func DefaultLanguage() Language {
	return SupportedLanguages()[0]
}

// ParseLanguage resolves a case-insensitive language name.
func ParseLanguage(s string) (Language, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, l := range SupportedLanguages() {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Title returns the display label, e.g. "Python" or "C++".
func (l Language) Title() string {
	if l == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(string(l))
	return string(unicode.ToUpper(r)) + string(l)[size:]
}

func (l Language) String() string {
	return string(l)
}

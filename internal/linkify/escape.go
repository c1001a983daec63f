package linkify

import "regexp"

// EscapePhrase quotes every regular expression metacharacter in phrase so it
// matches literally.
func EscapePhrase(phrase string) string {
	return regexp.QuoteMeta(phrase)
}

// phrasePattern matches phrase case-insensitively between word boundaries.
func phrasePattern(phrase string) string {
	return `(?i)\b` + EscapePhrase(phrase) + `\b`
}

func compilePhrase(phrase string) (*regexp.Regexp, error) {
	return regexp.Compile(phrasePattern(phrase))
}

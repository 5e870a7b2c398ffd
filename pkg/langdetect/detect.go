// Package langdetect guesses the language of fenced code block contents and
// canonicalizes info-string language tags. Detection uses go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined with confidence.
const Unknown = ""

// classifierCandidates limits the enry classifier to languages commonly
// found in documentation.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// fenceTags maps enry language names to the tags used after "```".
//
//nolint:gochecknoglobals // Read-only lookup table.
var fenceTags = map[string]string{
	"Shell":      "bash",
	"C++":        "cpp",
	"C#":         "csharp",
	"Emacs Lisp": "elisp",
}

// Detect returns the fence tag for code, or Unknown.
func Detect(code []byte) string {
	if len(bytes.TrimSpace(code)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return fenceTag(lang)
	}

	if lang := byPattern(code); lang != Unknown {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Unknown
}

// Normalize canonicalizes a user-written tag such as "golang" or "sh".
// Tags enry does not know are lowercased and returned unchanged.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Unknown
	}
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return fenceTag(lang)
	}
	return strings.ToLower(tag)
}

// byPattern checks a few prefixes that identify a language outright and
// that the classifier tends to miss on short snippets.
func byPattern(code []byte) string {
	trimmed := bytes.TrimSpace(code)
	lower := bytes.ToLower(trimmed)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(lower, []byte("<!doctype html")), bytes.HasPrefix(lower, []byte("<html")):
		return "html"
	case bytes.HasPrefix(trimmed, []byte("FROM ")):
		return "dockerfile"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`":`)):
		return "json"
	case bytes.Contains(trimmed, []byte("fn main()")), bytes.Contains(trimmed, []byte("println!(")):
		return "rust"
	}

	upper := strings.ToUpper(string(trimmed))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, kw) {
			return "sql"
		}
	}
	return Unknown
}

func fenceTag(lang string) string {
	if tag, ok := fenceTags[lang]; ok {
		return tag
	}
	return strings.ToLower(lang)
}

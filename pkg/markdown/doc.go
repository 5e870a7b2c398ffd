// Package markdown parses a restricted subset of Markdown into a Document.
//
// The grammar has two levels. Block rules (headings, lists, fenced code
// blocks and the paragraph fallback) are built from lines, and each line is
// a run of inline nodes (bold, italic, inline code, images, links and plain
// text) terminated by a newline. Every line, including the last one, must
// end with "\n"; use NormalizeInput to add a missing terminator.
//
// Alternatives are tried in a fixed order against an immutable cursor. A
// failed alternative consumes nothing, and a failure that no alternative can
// absorb aborts the whole parse with a *ParseError. There is no partial
// document on failure.
//
// Parse holds no state between calls and is safe for concurrent use.
package markdown

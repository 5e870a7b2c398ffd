package markdown

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("markdown parse failure")

// Rule names the grammar rule that failed.
type Rule string

const (
	RuleEOF            Rule = "unexpected end of input"
	RuleNewline        Rule = "expected newline terminator"
	RuleItalicOpen     Rule = `expected "*"`
	RuleItalicClose    Rule = `expected closing "*"`
	RuleBoldOpen       Rule = `expected "**"`
	RuleBoldClose      Rule = `expected closing "**"`
	RuleCodeOpen       Rule = "expected backtick"
	RuleCodeClose      Rule = "expected closing backtick"
	RuleImageOpen      Rule = `expected "!["`
	RuleLinkOpen       Rule = `expected "["`
	RuleBracketClose   Rule = `expected "]"`
	RuleParenOpen      Rule = `expected "("`
	RuleParenClose     Rule = `expected ")"`
	RuleContent        Rule = "expected at least one content character"
	RulePlaintext      Rule = "expected plain text"
	RuleHeadingMarker  Rule = `expected "#"`
	RuleHeadingSpace   Rule = `expected " " after heading marker`
	RuleListMarker     Rule = `expected "- "`
	RuleDigits         Rule = "expected digit run"
	RuleOrderedDot     Rule = `expected ". " after item number`
	RuleFenceOpen      Rule = "expected opening code fence"
	RuleFenceClose     Rule = "expected closing code fence"
	RuleFenceNewline   Rule = "expected newline after closing code fence"
	RuleStalledOnBlock Rule = "block rule consumed no input"
)

// ParseError reports where and why a parse failed.
type ParseError struct {
	// Rule is the grammar rule that failed.
	Rule Rule

	// Offset is the byte offset of the failure in the input.
	Offset int

	// Line and Column are the 1-based position of Offset. Column counts runes.
	Line   int
	Column int

	// Remaining is the unconsumed input at the failure.
	Remaining string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Rule)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SourceLine returns the full source line containing the failure, without
// its newline.
func (e *ParseError) SourceLine(input string) string {
	if e.Offset > len(input) {
		return ""
	}
	start := strings.LastIndexByte(input[:e.Offset], '\n') + 1
	end := strings.IndexByte(input[e.Offset:], '\n')
	if end < 0 {
		return input[start:]
	}
	return input[start : e.Offset+end]
}

// failure is the internal, allocation-light form of a ParseError.
type failure struct {
	rule Rule
	at   int
}

func fail(c cursor, rule Rule) *failure {
	return &failure{rule: rule, at: c.pos}
}

func (f *failure) toError(input string) *ParseError {
	before := input[:f.at]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return &ParseError{
		Rule:      f.rule,
		Offset:    f.at,
		Line:      line,
		Column:    utf8.RuneCountInString(before[lineStart:]) + 1,
		Remaining: input[f.at:],
	}
}

package markdown

type inlineRule func(cursor) (cursor, Inline, *failure)

// inlineRules is the fixed alternation order. Italic precedes bold: on
// "**x**" the italic rule fails on its empty body and falls through. Image
// precedes link so "![" is never read as "!" followed by a link.
//
//nolint:gochecknoglobals // Read-only rule table.
var inlineRules = [...]inlineRule{
	matchItalic,
	matchInlineCode,
	matchBold,
	matchImage,
	matchLink,
	matchPlaintext,
}

// delimited matches open, one or more bytes not in stop, then closer.
func delimited(c cursor, open, stop, closer string, openRule, closeRule Rule) (cursor, string, *failure) {
	next, f := c.tag(open, openRule)
	if f != nil {
		return c, "", f
	}
	next, body, f := next.takeUntil(stop, RuleContent)
	if f != nil {
		return c, "", f
	}
	next, f = next.tag(closer, closeRule)
	if f != nil {
		return c, "", f
	}
	return next, body, nil
}

func matchItalic(c cursor) (cursor, Inline, *failure) {
	next, body, f := delimited(c, "*", "*\n", "*", RuleItalicOpen, RuleItalicClose)
	if f != nil {
		return c, nil, f
	}
	return next, Italic{Content: body}, nil
}

func matchBold(c cursor) (cursor, Inline, *failure) {
	next, body, f := delimited(c, "**", "*\n", "**", RuleBoldOpen, RuleBoldClose)
	if f != nil {
		return c, nil, f
	}
	return next, Bold{Content: body}, nil
}

func matchInlineCode(c cursor) (cursor, Inline, *failure) {
	next, body, f := delimited(c, "`", "`\n", "`", RuleCodeOpen, RuleCodeClose)
	if f != nil {
		return c, nil, f
	}
	return next, InlineCode{Code: body}, nil
}

// matchTarget matches "[label](url)" after an already consumed prefix
// that stands in for "[".
func matchTarget(c cursor, open string, openRule Rule) (cursor, string, string, *failure) {
	next, label, f := delimited(c, open, "]\n", "]", openRule, RuleBracketClose)
	if f != nil {
		return c, "", "", f
	}
	next, url, f := delimited(next, "(", ")\n", ")", RuleParenOpen, RuleParenClose)
	if f != nil {
		return c, "", "", f
	}
	return next, label, url, nil
}

func matchImage(c cursor) (cursor, Inline, *failure) {
	next, alt, url, f := matchTarget(c, "![", RuleImageOpen)
	if f != nil {
		return c, nil, f
	}
	return next, Image{Alt: alt, URL: url}, nil
}

func matchLink(c cursor) (cursor, Inline, *failure) {
	next, label, url, f := matchTarget(c, "[", RuleLinkOpen)
	if f != nil {
		return c, nil, f
	}
	return next, Link{Label: label, URL: url}, nil
}

// reservedAt reports whether an inline form other than plain text, or the
// line terminator, may begin at s[i].
func reservedAt(s string, i int) bool {
	switch s[i] {
	case '*', '`', '[', '\n':
		return true
	case '!':
		return i+1 < len(s) && s[i+1] == '['
	default:
		return false
	}
}

func matchPlaintext(c cursor) (cursor, Inline, *failure) {
	rest := c.rest()
	n := 0
	for n < len(rest) && !reservedAt(rest, n) {
		n++
	}
	if n == 0 {
		if c.eof() {
			return c, nil, fail(c, RuleEOF)
		}
		return c, nil, fail(c, RulePlaintext)
	}
	return c.advance(n), Plaintext{Content: rest[:n]}, nil
}

// matchInline returns the first inline rule that matches at c. When none
// does, the failure that got furthest into the input is returned; ties go
// to the earlier rule.
func matchInline(c cursor) (cursor, Inline, *failure) {
	var furthest *failure
	for _, rule := range inlineRules {
		next, node, f := rule(c)
		if f == nil {
			return next, node, nil
		}
		if furthest == nil || f.at > furthest.at {
			furthest = f
		}
	}
	return c, nil, furthest
}

// matchLine consumes inline nodes until none matches, then requires "\n".
// If the newline is missing and an inline rule failed past the cursor, as
// on an unterminated "*", that deeper failure is reported instead.
func matchLine(c cursor) (cursor, Line, *failure) {
	start := c
	var (
		line  Line
		stuck *failure
	)
	for {
		next, node, f := matchInline(c)
		if f != nil {
			stuck = f
			break
		}
		line = append(line, node)
		c = next
	}

	next, f := c.tag("\n", RuleNewline)
	if f != nil {
		if stuck != nil && stuck.at > c.pos {
			return start, nil, stuck
		}
		return start, nil, f
	}
	return next, line, nil
}

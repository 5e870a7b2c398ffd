package markdown

import "strings"

const codeFence = "```"

func matchHeading(c cursor) (cursor, Block, *failure) {
	next, hashes, f := c.takeWhile(isHash, RuleHeadingMarker)
	if f != nil {
		return c, nil, f
	}
	next, f = next.tag(" ", RuleHeadingSpace)
	if f != nil {
		return c, nil, f
	}
	next, content, f := matchLine(next)
	if f != nil {
		return c, nil, f
	}
	return next, Heading{Level: len(hashes), Content: content}, nil
}

func unorderedMarker(c cursor) (cursor, *failure) {
	return c.tag("- ", RuleListMarker)
}

func orderedMarker(c cursor) (cursor, *failure) {
	next, _, f := c.takeWhile(isDigit, RuleDigits)
	if f != nil {
		return c, f
	}
	next, f = next.tag(". ", RuleOrderedDot)
	if f != nil {
		return c, f
	}
	return next, nil
}

// matchItems collects one or more marker-prefixed lines. Matching stops at
// the first item that fails; that is only an error when it is the first.
func matchItems(c cursor, marker func(cursor) (cursor, *failure)) (cursor, []Line, *failure) {
	var items []Line
	for {
		next, f := marker(c)
		var line Line
		if f == nil {
			next, line, f = matchLine(next)
		}
		if f != nil {
			if len(items) == 0 {
				return c, nil, f
			}
			return c, items, nil
		}
		items = append(items, line)
		c = next
	}
}

func matchUnorderedList(c cursor) (cursor, Block, *failure) {
	next, items, f := matchItems(c, unorderedMarker)
	if f != nil {
		return c, nil, f
	}
	return next, UnorderedList{Items: items}, nil
}

func matchOrderedList(c cursor) (cursor, Block, *failure) {
	next, items, f := matchItems(c, orderedMarker)
	if f != nil {
		return c, nil, f
	}
	return next, OrderedList{Items: items}, nil
}

// matchCodeblock matches a fenced block:
//
//	```lang
//	raw text
//	```
//
// The info string after the opening fence is optional and may not contain a
// backtick. The closing fence is a line of exactly three backticks.
func matchCodeblock(c cursor) (cursor, Block, *failure) {
	next, f := c.tag(codeFence, RuleFenceOpen)
	if f != nil {
		return c, nil, f
	}
	info, rest := next.rest(), 0
	if eol := strings.IndexByte(info, '\n'); eol >= 0 {
		info, rest = info[:eol], eol+1
	} else {
		return c, nil, fail(next.advance(len(info)), RuleNewline)
	}
	if strings.Contains(info, "`") {
		return c, nil, fail(next, RuleFenceOpen)
	}
	lang := strings.Trim(info, " \t")
	next = next.advance(rest)

	body := next
	for {
		if next.eof() {
			return c, nil, fail(next, RuleFenceClose)
		}
		if next.hasPrefix(codeFence + "\n") {
			raw := c.src[body.pos:next.pos]
			return next.advance(len(codeFence) + 1), Codeblock{Language: lang, Raw: raw}, nil
		}
		eol := strings.IndexByte(next.rest(), '\n')
		if eol < 0 {
			end := next.advance(len(next.rest()))
			if next.rest() == codeFence {
				return c, nil, fail(end, RuleFenceNewline)
			}
			return c, nil, fail(end, RuleFenceClose)
		}
		next = next.advance(eol + 1)
	}
}

func matchParagraph(c cursor) (cursor, Block, *failure) {
	next, content, f := matchLine(c)
	if f != nil {
		return c, nil, f
	}
	return next, Paragraph{Content: content}, nil
}

type blockRule func(cursor) (cursor, Block, *failure)

// blockRules is the fixed alternation order. The paragraph rule accepts
// any well-formed line, so it must stay last.
//
//nolint:gochecknoglobals // Read-only rule table.
var blockRules = [...]blockRule{
	matchHeading,
	matchUnorderedList,
	matchOrderedList,
	matchCodeblock,
	matchParagraph,
}

// matchBlock returns the first block rule that matches at c. A code fence
// that opened but did not close is reported as is; otherwise the failure
// of the paragraph fallback is the block's failure.
func matchBlock(c cursor) (cursor, Block, *failure) {
	var last *failure
	for _, rule := range blockRules {
		next, b, f := rule(c)
		if f == nil {
			return next, b, nil
		}
		if f.rule == RuleFenceClose || f.rule == RuleFenceNewline {
			return c, nil, f
		}
		last = f
	}
	return c, nil, last
}

package markdown

import "strings"

// cursor is an immutable position in the input. Rules take a cursor and
// return the advanced copy on success; the caller's copy is untouched on
// failure, which is what makes alternation non-consuming.
type cursor struct {
	src string
	pos int
}

func (c cursor) rest() string {
	return c.src[c.pos:]
}

func (c cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c cursor) hasPrefix(prefix string) bool {
	return strings.HasPrefix(c.rest(), prefix)
}

func (c cursor) advance(n int) cursor {
	c.pos += n
	return c
}

// tag consumes the literal s.
func (c cursor) tag(s string, rule Rule) (cursor, *failure) {
	if !c.hasPrefix(s) {
		return c, fail(c, rule)
	}
	return c.advance(len(s)), nil
}

// takeUntil consumes one or more bytes not in stop. The stop set must be
// ASCII so that multi-byte runes are never split.
func (c cursor) takeUntil(stop string, rule Rule) (cursor, string, *failure) {
	rest := c.rest()
	n := strings.IndexAny(rest, stop)
	if n < 0 {
		n = len(rest)
	}
	if n == 0 {
		if c.eof() {
			return c, "", fail(c, RuleEOF)
		}
		return c, "", fail(c, rule)
	}
	return c.advance(n), rest[:n], nil
}

// takeWhile consumes one or more bytes satisfying pred.
func (c cursor) takeWhile(pred func(byte) bool, rule Rule) (cursor, string, *failure) {
	rest := c.rest()
	n := 0
	for n < len(rest) && pred(rest[n]) {
		n++
	}
	if n == 0 {
		return c, "", fail(c, rule)
	}
	return c.advance(n), rest[:n], nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHash(b byte) bool { return b == '#' }

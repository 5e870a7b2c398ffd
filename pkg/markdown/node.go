package markdown

import "strings"

// InlineKind classifies an inline node.
type InlineKind uint8

const (
	InlineLink InlineKind = iota
	InlineImage
	InlineCodeSpan
	InlineBold
	InlineItalic
	InlinePlaintext
)

//nolint:gochecknoglobals // Read-only lookup table.
var inlineKindNames = [...]string{
	InlineLink:      "link",
	InlineImage:     "image",
	InlineCodeSpan:  "inline_code",
	InlineBold:      "bold",
	InlineItalic:    "italic",
	InlinePlaintext: "plaintext",
}

func (k InlineKind) String() string {
	if int(k) < len(inlineKindNames) {
		return inlineKindNames[k]
	}
	return "unknown"
}

// Inline is an atomic span within a single line. Inline nodes never nest.
//
// The set of implementations is closed: Link, Image, InlineCode, Bold,
// Italic and Plaintext.
type Inline interface {
	Kind() InlineKind
	// Text returns the human-readable text of the node.
	Text() string
	inline()
}

// Link is "[text](url)".
type Link struct {
	Label string
	URL   string
}

// Image is "![alt](url)".
type Image struct {
	Alt string
	URL string
}

// InlineCode is "`code`". Code never contains a backtick.
type InlineCode struct {
	Code string
}

// Bold is "**text**". Content never contains '*'.
type Bold struct {
	Content string
}

// Italic is "*text*". Content never contains '*'.
type Italic struct {
	Content string
}

// Plaintext is a maximal run of characters that start no other inline form.
type Plaintext struct {
	Content string
}

func (Link) Kind() InlineKind       { return InlineLink }
func (Image) Kind() InlineKind      { return InlineImage }
func (InlineCode) Kind() InlineKind { return InlineCodeSpan }
func (Bold) Kind() InlineKind       { return InlineBold }
func (Italic) Kind() InlineKind     { return InlineItalic }
func (Plaintext) Kind() InlineKind  { return InlinePlaintext }

func (l Link) Text() string       { return l.Label }
func (i Image) Text() string      { return i.Alt }
func (c InlineCode) Text() string { return c.Code }
func (b Bold) Text() string       { return b.Content }
func (i Italic) Text() string     { return i.Content }
func (p Plaintext) Text() string  { return p.Content }

func (Link) inline()       {}
func (Image) inline()      {}
func (InlineCode) inline() {}
func (Bold) inline()       {}
func (Italic) inline()     {}
func (Plaintext) inline()  {}

// Line is the parsed inline content of one source line, in reading order.
// A blank source line yields a nil Line.
type Line []Inline

// Text concatenates the text of every node in the line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, node := range l {
		sb.WriteString(node.Text())
	}
	return sb.String()
}

// IsEmpty reports whether the line has no inline nodes.
func (l Line) IsEmpty() bool {
	return len(l) == 0
}

// BlockKind classifies a block node.
type BlockKind uint8

const (
	BlockHeading BlockKind = iota
	BlockUnorderedList
	BlockOrderedList
	BlockParagraph
	BlockCodeblock
)

//nolint:gochecknoglobals // Read-only lookup table.
var blockKindNames = [...]string{
	BlockHeading:       "heading",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
	BlockParagraph:     "paragraph",
	BlockCodeblock:     "codeblock",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "unknown"
}

// Block is a structural unit of a Document.
//
// The set of implementations is closed: Heading, UnorderedList,
// OrderedList, Paragraph and Codeblock.
type Block interface {
	Kind() BlockKind
	block()
}

// Heading is "#... text". Level is the number of '#' characters and has no
// upper bound.
type Heading struct {
	Level   int
	Content Line
}

// UnorderedList holds one or more "- " items.
type UnorderedList struct {
	Items []Line
}

// OrderedList holds one or more "N. " items. Item numbers are not kept.
type OrderedList struct {
	Items []Line
}

// Paragraph is a single line that matched no other block rule. An empty
// Paragraph represents a blank source line.
type Paragraph struct {
	Content Line
}

// Codeblock is a fenced block of verbatim text. Raw holds the lines between
// the fences, each with its trailing newline.
type Codeblock struct {
	Language string
	Raw      string
}

func (Heading) Kind() BlockKind       { return BlockHeading }
func (UnorderedList) Kind() BlockKind { return BlockUnorderedList }
func (OrderedList) Kind() BlockKind   { return BlockOrderedList }
func (Paragraph) Kind() BlockKind     { return BlockParagraph }
func (Codeblock) Kind() BlockKind     { return BlockCodeblock }

func (Heading) block()       {}
func (UnorderedList) block() {}
func (OrderedList) block()   {}
func (Paragraph) block()     {}
func (Codeblock) block()     {}

// Document is the result of a successful parse.
type Document struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Blocks)
}

// Headings returns the document's headings in order.
func (d *Document) Headings() []Heading {
	if d == nil {
		return nil
	}
	var headings []Heading
	for _, b := range d.Blocks {
		if h, ok := b.(Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Title returns the text of the first heading, or "" if there is none.
func (d *Document) Title() string {
	headings := d.Headings()
	if len(headings) == 0 {
		return ""
	}
	return headings[0].Content.Text()
}

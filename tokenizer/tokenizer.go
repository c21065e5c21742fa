// Package tokenizer turns raw bytes into a stream of token.Token values. It
// is a byte-at-a-time state machine in the spirit of the WHATWG HTML
// tokenizer, trimmed to the states this module needs: tags, attributes,
// DOCTYPE with a PUBLIC identifier, comments (including the tolerant
// less-than-sign escapes), and raw-text runs inside <script>/<style>.
//
// Most state handlers consume the current byte first and switch on it;
// MarkupDeclarationOpen and the raw-text states match ahead before consuming,
// and states that need to look further ahead without committing the cursor
// use peek with an offset (negative offsets reach back over bytes already
// consumed). A handler that finds no transition for its byte panics with an
// *UnimplementedError — the state machine is not meant to recover from a
// byte it has no rule for.
package tokenizer

import (
	"golang.org/x/net/html/atom"

	"github.com/vellum-html/vellum/token"
)

// Tokenizer holds the cursor, current state, and in-progress token over a
// fixed input string.
type Tokenizer struct {
	input string
	pos   int
	line  int
	col   int

	// prevLine/prevCol hold position as of just before the most recent
	// consume, so a single reconsume can restore it. Nothing in this state
	// machine reconsumes twice in a row without an intervening consume.
	prevLine int
	prevCol  int

	state   State
	current *token.Token
	tokens  []token.Token
}

// New returns a Tokenizer positioned at the start of input, in the Data
// state.
func New(input string) *Tokenizer {
	return &Tokenizer{
		input: input,
		line:  1,
		col:   1,
		state: Data,
	}
}

// Run drives the state machine to completion and returns the emitted
// tokens. Any token under construction when the input ends is abandoned,
// not emitted. Run panics with an *UnimplementedError if a state has no
// transition for the byte it reads.
func (t *Tokenizer) Run() []token.Token {
	for !t.eof() {
		t.step()
	}
	return t.tokens
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.input)
}

// peek returns the byte at pos+offset, or 0 if that position is out of
// range. Offset may be negative to inspect bytes already consumed.
func (t *Tokenizer) peek(offset int) byte {
	i := t.pos + offset
	if i < 0 || i >= len(t.input) {
		return 0
	}
	return t.input[i]
}

func (t *Tokenizer) position() token.Position {
	return token.Position{Line: t.line, Column: t.col}
}

func (t *Tokenizer) consume() byte {
	t.prevLine, t.prevCol = t.line, t.col
	c := t.input[t.pos]
	t.pos++
	if c == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return c
}

// reconsume rewinds the cursor by one byte so the next step re-dispatches it
// under a (presumably different) state.
func (t *Tokenizer) reconsume() {
	t.pos--
	t.line, t.col = t.prevLine, t.prevCol
}

func (t *Tokenizer) fatal(b byte) {
	panic(&UnimplementedError{State: t.state, Position: t.position(), Byte: b})
}

func (t *Tokenizer) initToken(typ token.Type) {
	t.current = &token.Token{Type: typ, Start: t.position()}
}

func (t *Tokenizer) pushToken() {
	if t.current == nil {
		panic("tokenizer: pushToken called with no current token")
	}
	t.current.End = t.position()
	t.tokens = append(t.tokens, *t.current)
	t.current = nil
}

func (t *Tokenizer) emitChar(start token.Position, c byte) {
	t.tokens = append(t.tokens, token.Token{
		Type:  token.Character,
		Data:  string(c),
		Start: start,
		End:   t.position(),
	})
}

// beginAttribute appends a new empty attribute to the current token and
// makes it the one subsequent name/value bytes are appended to.
func (t *Tokenizer) beginAttribute() {
	t.current.Attributes = append(t.current.Attributes, token.Attribute{})
}

func (t *Tokenizer) currentAttr() *token.Attribute {
	return &t.current.Attributes[len(t.current.Attributes)-1]
}

// finishTag pushes the current StartTag/EndTag token and, for a <script> or
// <style> start tag, switches straight into the matching raw-text state
// instead of Data. This is the "raw-text entry" rule: it applies at every
// point a tag closes on a plain '>' (TagName, AfterAttributeName,
// AttributeValueUnquoted, AfterAttributeValueQuoted). A tag closed through
// SelfClosingStartTag does not go through here and always returns to Data.
func (t *Tokenizer) finishTag() {
	isStart := t.current.Type == token.StartTag
	name := t.current.Data
	t.pushToken()
	if isStart {
		switch atom.Lookup([]byte(name)) {
		case atom.Script:
			t.state = ScriptData
			return
		case atom.Style:
			t.state = StyleData
			return
		}
	}
	t.state = Data
}

func isWhitespace(c byte) bool {
	return c == '\t' || c == '\n' || c == ' '
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

// matchCaseInsensitive reports whether the len(kw) bytes starting at
// pos+offset spell kw, ASCII case-insensitively. offset may be negative to
// include the byte just consumed.
func (t *Tokenizer) matchCaseInsensitive(offset int, kw string) bool {
	for i := 0; i < len(kw); i++ {
		if toUpperASCII(t.peek(offset+i)) != toUpperASCII(kw[i]) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) step() {
	switch t.state {

	case Data:
		start := t.position()
		c := t.consume()
		if c == '<' {
			t.state = TagOpen
		} else {
			t.emitChar(start, c)
		}

	case TagOpen:
		c := t.consume()
		switch {
		case c == '!':
			t.state = MarkupDeclarationOpen
		case c == '/':
			t.state = EndTagOpen
		case isASCIILetter(c):
			t.initToken(token.StartTag)
			t.reconsume()
			t.state = TagName
		default:
			t.fatal(c)
		}

	case EndTagOpen:
		c := t.consume()
		if isASCIILetter(c) {
			t.initToken(token.EndTag)
			t.reconsume()
			t.state = TagName
		} else {
			t.fatal(c)
		}

	case MarkupDeclarationOpen:
		switch {
		case t.matchCaseInsensitive(0, "DOCTYPE"):
			for i := 0; i < len("DOCTYPE"); i++ {
				t.consume()
			}
			t.state = Doctype
		case t.peek(0) == '-' && t.peek(1) == '-':
			t.consume()
			t.consume()
			t.initToken(token.Comment)
			t.state = CommentStart
		default:
			t.fatal(t.peek(0))
		}

	case Doctype:
		c := t.consume()
		if c == ' ' {
			t.state = BeforeDoctypeName
		} else {
			t.fatal(c)
		}

	case BeforeDoctypeName:
		c := t.consume()
		if isASCIILetter(c) {
			t.initToken(token.Doctype)
			t.reconsume()
			t.state = DoctypeName
		} else {
			t.fatal(c)
		}

	case DoctypeName:
		c := t.consume()
		switch {
		case isWhitespace(c):
			t.state = AfterDoctypeName
		case c == '>':
			t.pushToken()
			t.state = Data
		default:
			t.current.Data += string(c)
		}

	case AfterDoctypeName:
		c := t.consume()
		switch {
		case isWhitespace(c):
			// ignore
		case c == '>':
			t.pushToken()
			t.state = Data
		case t.matchCaseInsensitive(-1, "PUBLIC"):
			for i := 0; i < 5; i++ {
				t.consume()
			}
			t.state = AfterDoctypePublicKeyword
		default:
			t.fatal(c)
		}

	case AfterDoctypePublicKeyword:
		c := t.consume()
		if isWhitespace(c) {
			t.state = BeforeDoctypePublicIdentifier
		} else {
			t.fatal(c)
		}

	case BeforeDoctypePublicIdentifier:
		c := t.consume()
		switch {
		case isWhitespace(c):
			// ignore
		case c == '"':
			t.state = DoctypePublicIdentifierDoubleQuoted
		default:
			t.fatal(c)
		}

	case DoctypePublicIdentifierDoubleQuoted:
		c := t.consume()
		if c == '"' {
			t.state = AfterDoctypePublicIdentifier
		}
		// other bytes are part of the public identifier; this tokenizer
		// does not surface it as token data, so nothing to accumulate.

	case AfterDoctypePublicIdentifier:
		c := t.consume()
		if c == '>' {
			t.pushToken()
			t.state = Data
		} else {
			t.fatal(c)
		}

	case TagName:
		c := t.consume()
		switch {
		case c == '>':
			t.finishTag()
		case c == '/':
			t.state = SelfClosingStartTag
		case isWhitespace(c):
			t.state = BeforeAttributeName
		default:
			t.current.Data += string(c)
		}

	case BeforeAttributeName:
		c := t.consume()
		switch {
		case isWhitespace(c):
			// ignore
		case c == '/' || c == '>':
			t.reconsume()
			t.state = AfterAttributeName
		case c == '=':
			t.fatal(c)
		default:
			t.beginAttribute()
			t.reconsume()
			t.state = AttributeName
		}

	case AttributeName:
		c := t.consume()
		switch {
		case isWhitespace(c) || c == '/' || c == '>':
			t.reconsume()
			t.state = AfterAttributeName
		case c == '=':
			t.state = BeforeAttributeValue
		case c == '"' || c == '\'' || c == '<':
			t.fatal(c)
		default:
			t.currentAttr().Name += string(c)
		}

	case AfterAttributeName:
		c := t.consume()
		switch {
		case isWhitespace(c):
			// ignore
		case c == '=':
			t.state = BeforeAttributeValue
		case c == '/':
			t.state = SelfClosingStartTag
		case c == '>':
			t.finishTag()
		default:
			t.beginAttribute()
			t.reconsume()
			t.state = AttributeName
		}

	case BeforeAttributeValue:
		c := t.consume()
		switch {
		case isWhitespace(c):
			// ignore
		case c == '"':
			t.state = AttributeValueDoubleQuoted
		case c == '\'':
			t.state = AttributeValueSingleQuoted
		case c == '>':
			t.fatal(c)
		default:
			t.reconsume()
			t.state = AttributeValueUnquoted
		}

	case AttributeValueDoubleQuoted:
		c := t.consume()
		if c == '"' {
			t.state = AfterAttributeValueQuoted
		} else {
			t.currentAttr().Value += string(c)
		}

	case AttributeValueSingleQuoted:
		c := t.consume()
		if c == '\'' {
			t.state = AfterAttributeValueQuoted
		} else {
			t.currentAttr().Value += string(c)
		}

	case AttributeValueUnquoted:
		c := t.consume()
		switch {
		case isWhitespace(c):
			t.state = BeforeAttributeName
		case c == '>':
			t.finishTag()
		default:
			t.currentAttr().Value += string(c)
		}

	case AfterAttributeValueQuoted:
		c := t.consume()
		switch {
		case isWhitespace(c):
			t.state = BeforeAttributeName
		case c == '/':
			t.state = SelfClosingStartTag
		case c == '>':
			t.finishTag()
		default:
			t.fatal(c)
		}

	case SelfClosingStartTag:
		c := t.consume()
		if c == '>' {
			t.current.SelfClosing = true
			t.pushToken()
			t.state = Data
		} else {
			t.fatal(c)
		}

	case CommentStart:
		c := t.consume()
		switch {
		case c == '-':
			t.state = CommentStartDash
		case c == '>':
			t.fatal(c)
		default:
			t.reconsume()
			t.state = Comment
		}

	case CommentStartDash:
		c := t.consume()
		switch {
		case c == '-':
			t.state = CommentEnd
		case c == '>':
			t.fatal(c)
		default:
			t.current.Data += "-"
			t.reconsume()
			t.state = Comment
		}

	case Comment:
		c := t.consume()
		switch c {
		case '<':
			t.current.Data += "<"
			t.state = CommentLessThanSign
		case '-':
			t.state = CommentEndDash
		default:
			t.current.Data += string(c)
		}

	case CommentLessThanSign:
		c := t.consume()
		switch c {
		case '<':
			t.current.Data += "<"
		case '!':
			t.state = CommentLessThanSignBang
		default:
			t.reconsume()
			t.state = Comment
		}

	case CommentLessThanSignBang:
		c := t.consume()
		if c == '-' {
			t.state = CommentLessThanSignBangDash
		} else {
			t.reconsume()
			t.state = Comment
		}

	case CommentLessThanSignBangDash:
		c := t.consume()
		if c == '-' {
			t.state = CommentLessThanSignBangDashDash
		} else {
			t.reconsume()
			t.state = Comment
		}

	case CommentLessThanSignBangDashDash:
		c := t.consume()
		if c != '>' {
			t.reconsume()
		}
		t.state = CommentEnd

	case CommentEndDash:
		c := t.consume()
		if c == '-' {
			t.state = CommentEnd
		} else {
			t.current.Data += "-"
			t.reconsume()
			t.state = Comment
		}

	case CommentEnd:
		c := t.consume()
		switch c {
		case '>':
			t.pushToken()
			t.state = Data
		case '!':
			t.fatal(c)
		case '-':
			t.current.Data += "-"
		default:
			t.current.Data += "--"
			t.reconsume()
			t.state = Comment
		}

	case ScriptData:
		t.runRawText("</script>")

	case StyleData:
		t.runRawText("</style>")

	default:
		panic(&UnimplementedError{State: t.state, Position: t.position()})
	}
}

// runRawText scans Character tokens one byte at a time until it finds
// closing, matched ASCII case-insensitively, then consumes past it in full
// and returns to Data. No EndTag token is emitted for the closing tag: the
// caller already knows which raw-text element it is in.
func (t *Tokenizer) runRawText(closing string) {
	if t.matchCaseInsensitive(0, closing) {
		for i := 0; i < len(closing); i++ {
			t.consume()
		}
		t.state = Data
		return
	}
	start := t.position()
	c := t.consume()
	t.emitChar(start, c)
}

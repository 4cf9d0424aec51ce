// Package parse implements the recursive-descent parser that turns xCDN
// source text into an *ast.Document.
package parse

import (
	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/diag"
	"github.com/gslf/xcdn-go/lex"
)

// Parser consumes tokens from a lex.Lexer with a single token of lookahead.
type Parser struct {
	lx      *lex.Lexer
	look    lex.Token
	hasLook bool
}

// New returns a Parser over src.
func New(src []byte) *Parser {
	return &Parser{lx: lex.New(src)}
}

// Parse parses src into a Document.
func Parse(src []byte) (*ast.Document, error) {
	return New(src).ParseDocument()
}

// ParseString parses src into a Document.
func ParseString(src string) (*ast.Document, error) {
	return Parse([]byte(src))
}

func (p *Parser) bump() (lex.Token, error) {
	if p.hasLook {
		t := p.look
		p.hasLook = false
		p.look = lex.Token{}
		return t, nil
	}
	return p.lx.Next()
}

func (p *Parser) peek() (lex.Token, error) {
	if !p.hasLook {
		t, err := p.lx.Next()
		if err != nil {
			return lex.Token{}, err
		}
		p.look = t
		p.hasLook = true
	}
	return p.look, nil
}

func (p *Parser) peekType() (lex.TokenType, error) {
	t, err := p.peek()
	if err != nil {
		return 0, err
	}
	return t.Type, nil
}

func (p *Parser) expect(kind lex.TokenType, expected string) (lex.Token, error) {
	t, err := p.bump()
	if err != nil {
		return lex.Token{}, err
	}
	if t.Type != kind {
		return lex.Token{}, diag.Newf(diag.Expected, t.Pos, "expected %s, found %s", expected, t.Type)
	}
	return t, nil
}

func (p *Parser) parseIdentString() (string, error) {
	t, err := p.bump()
	if err != nil {
		return "", err
	}
	if t.Type != lex.Ident {
		return "", diag.Newf(diag.Expected, t.Pos, "expected identifier, found %s", t.Type)
	}
	return t.Str, nil
}

func (p *Parser) parseKey() (string, error) {
	t, err := p.bump()
	if err != nil {
		return "", err
	}
	if t.Type == lex.Ident || t.Type == lex.String {
		return t.Str, nil
	}
	return "", diag.Newf(diag.Expected, t.Pos, "expected object key, found %s", t.Type)
}

// ParseDocument parses the optional prolog followed by either an implicit
// top-level object or a stream of top-level values.
//
// Disambiguating the implicit object requires two tokens of lookahead: the
// first identifier/string token is bumped, then the token after it is
// peeked to see whether a ':' follows. If it does, the document is an
// implicit object and the already-bumped token is its first key; otherwise
// the bumped token is reinterpreted as the first element of a value stream.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	doc := ast.New()

	for {
		pk, err := p.peekType()
		if err != nil {
			return nil, err
		}
		if pk != lex.Dollar {
			break
		}
		p.bump()
		name, err := p.parseIdentString()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.Colon, ":"); err != nil {
			return nil, err
		}
		valueNode, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		doc.PushDirective(name, valueNode.Value)

		pk, err = p.peekType()
		if err != nil {
			return nil, err
		}
		if pk == lex.Comma {
			p.bump()
		}
	}

	pk, err := p.peekType()
	if err != nil {
		return nil, err
	}

	switch pk {
	case lex.Ident, lex.String:
		return p.parseAfterLeadKey(doc)
	case lex.EOF:
		return doc, nil
	default:
		first, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		doc.PushValue(first)
		return p.parseValueStream(doc)
	}
}

func (p *Parser) parseAfterLeadKey(doc *ast.Document) (*ast.Document, error) {
	keyTok, err := p.bump()
	if err != nil {
		return nil, err
	}
	afterKey, err := p.peekType()
	if err != nil {
		return nil, err
	}

	if afterKey != lex.Colon {
		// Not an implicit object: the lead token is the first element of a
		// value stream. Only a String can stand alone as a bare value here;
		// a bare Ident is never itself a valid value (true/false/null are
		// their own token types), so anything else is an error.
		if keyTok.Type != lex.String {
			return nil, diag.Newf(diag.Expected, keyTok.Pos, "expected ':' after top-level key %q", keyTok.Str)
		}
		doc.PushValue(ast.NewNode(ast.NewString(keyTok.Str)))
		return p.parseValueStream(doc)
	}

	p.bump() // consume ':'
	obj := ast.NewObject()

	firstNode, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	ast.ObjectSet(obj, keyTok.Str, firstNode)

	for {
		pk, err := p.peekType()
		if err != nil {
			return nil, err
		}
		switch pk {
		case lex.Comma:
			p.bump()
		case lex.Ident, lex.String:
			key, err := p.parseKey()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lex.Colon, ":"); err != nil {
				return nil, err
			}
			n, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			ast.ObjectSet(obj, key, n)
		case lex.EOF:
			doc.PushValue(ast.NewNode(obj))
			return doc, nil
		default:
			bad, err := p.bump()
			if err != nil {
				return nil, err
			}
			return nil, diag.Newf(diag.Expected, bad.Pos, "expected object key, found %s", bad.Type)
		}
	}
}

func (p *Parser) parseValueStream(doc *ast.Document) (*ast.Document, error) {
	for {
		pk, err := p.peekType()
		if err != nil {
			return nil, err
		}
		if pk == lex.EOF {
			return doc, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		doc.PushValue(n)
	}
}

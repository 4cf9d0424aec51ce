package parse

import (
	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/diag"
	"github.com/gslf/xcdn-go/lex"
)

// parseValue bumps and interprets a single value token, recursing into
// parseObject/parseArray for containers. It never looks at decorations —
// those are parseNode's job.
func (p *Parser) parseValue() (*ast.Value, error) {
	t, err := p.bump()
	if err != nil {
		return nil, err
	}

	switch t.Type {
	case lex.LBrace:
		return p.parseObject()
	case lex.LBracket:
		return p.parseArray()
	case lex.String, lex.TripleString:
		return ast.NewString(t.Str), nil
	case lex.True:
		return ast.NewBool(true), nil
	case lex.False:
		return ast.NewBool(false), nil
	case lex.Null:
		return ast.NewNull(), nil
	case lex.Int:
		return ast.NewInt(t.IntVal), nil
	case lex.Float:
		return ast.NewFloat(t.FloatVal), nil
	case lex.DQuoted:
		// Decimal literals are stored verbatim; validation is lenient.
		return ast.NewDecimal(t.Str), nil
	case lex.BQuoted:
		b, err := decodeBase64(t.Str, t.Pos)
		if err != nil {
			return nil, err
		}
		return ast.NewBytes(b), nil
	case lex.UQuoted:
		if !validateUUID(t.Str) {
			return nil, diag.Newf(diag.InvalidUUID, t.Pos, "invalid UUID: %s", t.Str)
		}
		return ast.NewUUID(t.Str), nil
	case lex.TQuoted:
		return ast.NewDateTime(t.Str), nil
	case lex.RQuoted:
		return ast.NewDuration(t.Str), nil
	default:
		return nil, diag.Newf(diag.Expected, t.Pos, "expected value, found %s", t.Type)
	}
}

// parseObject parses entries up to and including the closing '}'. The
// opening '{' has already been consumed by the caller.
func (p *Parser) parseObject() (*ast.Value, error) {
	obj := ast.NewObject()

	for {
		pk, err := p.peekType()
		if err != nil {
			return nil, err
		}
		if pk == lex.RBrace {
			p.bump()
			return obj, nil
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.Colon, ":"); err != nil {
			return nil, err
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		ast.ObjectSet(obj, key, node)

		pk, err = p.peekType()
		if err != nil {
			return nil, err
		}
		if pk == lex.Comma {
			p.bump()
		}
	}
}

// parseArray parses elements up to and including the closing ']'. The
// opening '[' has already been consumed by the caller.
func (p *Parser) parseArray() (*ast.Value, error) {
	arr := ast.NewArray()

	for {
		pk, err := p.peekType()
		if err != nil {
			return nil, err
		}
		if pk == lex.RBracket {
			p.bump()
			return arr, nil
		}

		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		ast.ArrayPush(arr, node)

		pk, err = p.peekType()
		if err != nil {
			return nil, err
		}
		if pk == lex.Comma {
			p.bump()
		}
	}
}

// parseNode gathers any leading @annotation/#tag decorations and then
// parses the underlying value.
func (p *Parser) parseNode() (*ast.Node, error) {
	node := ast.NewNode(nil)

decorations:
	for {
		pk, err := p.peekType()
		if err != nil {
			return nil, err
		}
		switch pk {
		case lex.At:
			p.bump()
			name, err := p.parseIdentString()
			if err != nil {
				return nil, err
			}
			ann := node.AddAnnotation(name)
			if err := p.parseAnnotationArgs(ann); err != nil {
				return nil, err
			}
		case lex.Hash:
			p.bump()
			name, err := p.parseIdentString()
			if err != nil {
				return nil, err
			}
			node.AddTag(name)
		default:
			break decorations
		}
	}

	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	node.Value = val
	return node, nil
}

// parseAnnotationArgs parses an annotation's optional "(arg, arg, ...)"
// argument list, if one follows.
func (p *Parser) parseAnnotationArgs(ann *ast.Annotation) error {
	pk, err := p.peekType()
	if err != nil {
		return err
	}
	if pk != lex.LParen {
		return nil
	}
	p.bump()

	pk, err = p.peekType()
	if err != nil {
		return err
	}
	if pk == lex.RParen {
		p.bump()
		return nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return err
		}
		ann.PushArg(v)

		next, err := p.peekType()
		if err != nil {
			return err
		}
		switch next {
		case lex.Comma:
			p.bump()
			// A trailing comma before ')' is accepted.
			after, err := p.peekType()
			if err != nil {
				return err
			}
			if after == lex.RParen {
				p.bump()
				return nil
			}
		case lex.RParen:
			p.bump()
			return nil
		default:
			bad, err := p.bump()
			if err != nil {
				return err
			}
			return diag.Newf(diag.Expected, bad.Pos, "expected \",\" or \")\", found %s", bad.Type)
		}
	}
}

package savefile

import (
	"fmt"
	"strconv"
)

// Table is a parsed table literal: string-keyed fields plus the positional
// list part. The document format never mixes the two in one table, but the
// parser tolerates it.
type Table struct {
	Fields map[string]any
	List   []any
}

// Get returns the named field, or nil
func (t *Table) Get(key string) any {
	if t == nil || t.Fields == nil {
		return nil
	}
	return t.Fields[key]
}

// Parser parses a "return { ... }" document into a Table tree.
// Values are *Table, string, int64, or bool.
type Parser struct {
	lexer    *Lexer
	curToken Token
}

func NewParser(input []byte) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.lexer.NextToken()
	for p.curToken.Type == TokenComment {
		p.curToken = p.lexer.NextToken()
	}
}

// Parse consumes the whole document: a "return" prefix followed by one
// table literal.
func (p *Parser) Parse() (*Table, error) {
	if p.curToken.Type != TokenIdent || p.curToken.Literal != "return" {
		return nil, fmt.Errorf("line %d: document must start with return, got %s", p.curToken.Line, p.curToken.String())
	}
	p.nextToken()

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	root, ok := v.(*Table)
	if !ok {
		return nil, fmt.Errorf("document root must be a table")
	}
	if p.curToken.Type != TokenEOF {
		return nil, fmt.Errorf("line %d: trailing content after document: %s", p.curToken.Line, p.curToken.String())
	}
	return root, nil
}

func (p *Parser) parseValue() (any, error) {
	switch p.curToken.Type {
	case TokenLBrace:
		return p.parseTable()
	case TokenString:
		s := p.curToken.Literal
		p.nextToken()
		return s, nil
	case TokenNumber:
		n, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed number %q", p.curToken.Line, p.curToken.Literal)
		}
		p.nextToken()
		return n, nil
	case TokenIdent:
		switch p.curToken.Literal {
		case "true":
			p.nextToken()
			return true, nil
		case "false":
			p.nextToken()
			return false, nil
		}
		return nil, fmt.Errorf("line %d: unexpected identifier %q", p.curToken.Line, p.curToken.Literal)
	case TokenError:
		return nil, fmt.Errorf("line %d: %s", p.curToken.Line, p.curToken.Literal)
	default:
		return nil, fmt.Errorf("line %d: unexpected token %s", p.curToken.Line, p.curToken.String())
	}
}

// parseTable consumes "{ entry, entry, ... }". Entries are either
// bracketed-key assignments (["key"] = value), bare-key assignments
// (key = value), or positional values.
func (p *Parser) parseTable() (any, error) {
	p.nextToken() // consume {
	t := &Table{}

	for {
		switch p.curToken.Type {
		case TokenRBrace:
			p.nextToken()
			return t, nil
		case TokenEOF:
			return nil, fmt.Errorf("unterminated table")
		case TokenError:
			return nil, fmt.Errorf("line %d: %s", p.curToken.Line, p.curToken.Literal)
		}

		if err := p.parseEntry(t); err != nil {
			return nil, err
		}

		// entries are separated by commas; a trailing comma before } is fine
		if p.curToken.Type == TokenComma {
			p.nextToken()
		} else if p.curToken.Type != TokenRBrace {
			return nil, fmt.Errorf("line %d: expected , or } in table, got %s", p.curToken.Line, p.curToken.String())
		}
	}
}

func (p *Parser) parseEntry(t *Table) error {
	switch {
	case p.curToken.Type == TokenLBracket:
		// ["key"] = value
		p.nextToken()
		if p.curToken.Type != TokenString {
			return fmt.Errorf("line %d: bracketed key must be a string, got %s", p.curToken.Line, p.curToken.String())
		}
		key := p.curToken.Literal
		p.nextToken()
		if p.curToken.Type != TokenRBracket {
			return fmt.Errorf("line %d: expected ] after key %q", p.curToken.Line, key)
		}
		p.nextToken()
		return p.parseAssignment(t, key)

	case p.curToken.Type == TokenIdent && p.peekIsEqual():
		// key = value
		key := p.curToken.Literal
		p.nextToken()
		return p.parseAssignment(t, key)

	default:
		v, err := p.parseValue()
		if err != nil {
			return err
		}
		t.List = append(t.List, v)
		return nil
	}
}

func (p *Parser) parseAssignment(t *Table, key string) error {
	if p.curToken.Type != TokenEqual {
		return fmt.Errorf("line %d: expected = after key %q", p.curToken.Line, key)
	}
	p.nextToken()
	v, err := p.parseValue()
	if err != nil {
		return err
	}
	if t.Fields == nil {
		t.Fields = make(map[string]any)
	}
	t.Fields[key] = v
	return nil
}

// peekIsEqual reports whether the token after the current one is "=",
// without consuming anything.
func (p *Parser) peekIsEqual() bool {
	saved := *p.lexer
	tok := saved.NextToken()
	for tok.Type == TokenComment {
		tok = saved.NextToken()
	}
	return tok.Type == TokenEqual
}

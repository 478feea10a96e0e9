package parse

import (
	"strings"

	"github.com/kbirk/cnd/internal/util"
	"github.com/kbirk/cnd/pkg/schema"
)

// wellKnownNamespaces are the prefixes every JCR repository predefines. Names
// using them parse without an explicit declaration; any other prefix must be
// declared before first use.
var wellKnownNamespaces = map[string]string{
	"jcr": "http://www.jcp.org/jcr/1.0",
	"nt":  "http://www.jcp.org/jcr/nt/1.0",
	"mix": "http://www.jcp.org/jcr/mix/1.0",
	"xml": "http://www.w3.org/XML/1998/namespace",
}

// CndParser parses a single CND document into a schema. Each grammar rule is
// a method that checks and expects tokens via the shared parser primitives
// and assembles its fragment of the schema; the first mismatch anywhere
// aborts the whole parse.
type CndParser struct {
	parser
	schema     *schema.Schema
	namespaces map[string]string // declared plus well-known, for prefix checks
}

// Parse parses the given CND document.
func Parse(content string) (*schema.Schema, error) {
	return ParseNamed(content, "")
}

// ParseNamed parses the given CND document. The filename is used only in
// diagnostics.
func ParseNamed(content string, filename string) (*schema.Schema, error) {
	p := &CndParser{
		parser:     newParser(content, filename),
		schema:     schema.NewSchema(),
		namespaces: util.MergeMap(map[string]string{}, wellKnownNamespaces),
	}
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	return p.schema, nil
}

// parseDocument is the top-level loop: namespace mappings and node type
// declarations in any order until end of input. An empty document is a valid
// empty schema.
func (p *CndParser) parseDocument() error {
	for !p.isEOF() {
		if p.scanErr != nil {
			return p.scanErr
		}
		if p.checkToken(TokenLAngle) {
			if err := p.parseNamespaceMapping(); err != nil {
				return err
			}
			continue
		}
		if err := p.parseNodeType(); err != nil {
			return err
		}
	}
	if p.scanErr != nil {
		return p.scanErr
	}
	return nil
}

// parseNamespaceMapping parses `<prefix = 'uri'>`. Prefix and URI may each be
// bare or quoted.
func (p *CndParser) parseNamespaceMapping() error {
	if _, err := p.expectToken(TokenLAngle, ""); err != nil {
		return err
	}
	prefixTok, err := p.expectNameToken()
	if err != nil {
		return err
	}
	if _, err := p.expectToken(TokenEquals, ""); err != nil {
		return err
	}
	uriTok, err := p.expectNameToken()
	if err != nil {
		return err
	}
	if _, err := p.expectToken(TokenRAngle, ""); err != nil {
		return err
	}

	prefix, uri := prefixTok.Data, uriTok.Data
	if existing, ok := p.schema.Namespaces[prefix]; ok && existing != uri {
		return p.errAt(prefixTok, "namespace prefix `%s` redeclared with a different URI", prefix)
	}
	p.schema.Namespaces[prefix] = uri
	p.namespaces[prefix] = uri
	return nil
}

// parseNodeType parses `[name] > supertypes options...` followed by any
// number of property and child node definitions. The node type is only added
// to the schema once the whole declaration parsed.
func (p *CndParser) parseNodeType() error {
	if _, err := p.expectToken(TokenLBracket, ""); err != nil {
		return err
	}
	name, err := p.parseName()
	if err != nil {
		return err
	}
	if _, err := p.expectToken(TokenRBracket, ""); err != nil {
		return err
	}

	nt := &schema.NodeType{
		Name:      name,
		Queryable: true,
	}

	if _, ok := p.checkAndExpectToken(TokenRAngle, ""); ok {
		supertypes, err := p.parseNameList()
		if err != nil {
			return err
		}
		nt.Supertypes = supertypes
	}

	if err := p.parseNodeTypeOptions(nt); err != nil {
		return err
	}

	for {
		if _, ok := p.checkAndExpectToken(TokenDash, ""); ok {
			if err := p.parsePropertyDefinition(nt); err != nil {
				return err
			}
			continue
		}
		if _, ok := p.checkAndExpectToken(TokenPlus, ""); ok {
			if err := p.parseChildNodeDefinition(nt); err != nil {
				return err
			}
			continue
		}
		break
	}

	p.schema.NodeTypes = append(p.schema.NodeTypes, nt)
	return nil
}

// parseNodeTypeOptions parses the node type option keywords. They may appear
// in any order and any case; the loop runs until no option matches.
func (p *CndParser) parseNodeTypeOptions(nt *schema.NodeType) error {
	for {
		switch {
		case p.checkTokenInFold(TokenIdentifier, "abstract", "abs", "a"):
			p.consume()
			nt.Abstract = true
		case p.checkTokenInFold(TokenIdentifier, "mixin", "mix", "m"):
			p.consume()
			nt.Mixin = true
		case p.checkTokenInFold(TokenIdentifier, "orderable", "ord", "o"):
			p.consume()
			nt.Orderable = true
		case p.checkTokenInFold(TokenIdentifier, "noquery", "nq"):
			p.consume()
			nt.Queryable = false
		case p.checkTokenInFold(TokenIdentifier, "query", "q"):
			p.consume()
			nt.Queryable = true
		case p.checkTokenDataFold(TokenIdentifier, "primaryitem"):
			p.consume()
			name, err := p.parseName()
			if err != nil {
				return err
			}
			nt.PrimaryItemName = name
		case p.checkToken(TokenBang):
			// `! name` is the primaryitem shorthand
			p.consume()
			name, err := p.parseName()
			if err != nil {
				return err
			}
			nt.PrimaryItemName = name
		default:
			return nil
		}
	}
}

// parsePropertyDefinition parses one `- name (TYPE) = defaults attributes...
// < constraints` entry. The leading '-' has already been consumed.
func (p *CndParser) parsePropertyDefinition(nt *schema.NodeType) error {
	prop := &schema.PropertyDefinition{
		RequiredType:       schema.PropertyTypeString,
		FullTextSearchable: true,
		QueryOrderable:     true,
		OnParentVersion:    schema.OnParentVersionCopy,
	}

	name, err := p.parseItemName()
	if err != nil {
		return err
	}
	prop.Name = name

	if _, ok := p.checkAndExpectToken(TokenLParen, ""); ok {
		if _, ok := p.checkAndExpectToken(TokenAsterisk, ""); ok {
			prop.RequiredType = schema.PropertyTypeUndefined
		} else {
			tok, err := p.expectToken(TokenIdentifier, "")
			if err != nil {
				return err
			}
			typ, terr := schema.ParsePropertyType(tok.Data)
			if terr != nil {
				return p.errAt(tok, "%s", terr.Error())
			}
			prop.RequiredType = typ
		}
		if _, err := p.expectToken(TokenRParen, ""); err != nil {
			return err
		}
	}

	if _, ok := p.checkAndExpectToken(TokenEquals, ""); ok {
		values, err := p.parseValueList()
		if err != nil {
			return err
		}
		prop.DefaultValues = values
	}

	if err := p.parsePropertyAttributes(prop); err != nil {
		return err
	}

	if _, ok := p.checkAndExpectToken(TokenLAngle, ""); ok {
		constraints, err := p.parseValueList()
		if err != nil {
			return err
		}
		prop.ValueConstraints = constraints
	}

	nt.Properties = append(nt.Properties, prop)
	return nil
}

func (p *CndParser) parsePropertyAttributes(prop *schema.PropertyDefinition) error {
	for {
		switch {
		case p.checkTokenInFold(TokenIdentifier, "autocreated", "aut", "a"):
			p.consume()
			prop.Autocreated = true
		case p.checkTokenInFold(TokenIdentifier, "mandatory", "man", "m"):
			p.consume()
			prop.Mandatory = true
		case p.checkTokenInFold(TokenIdentifier, "protected", "pro", "p"):
			p.consume()
			prop.Protected = true
		case p.checkTokenInFold(TokenIdentifier, "multiple", "mul"):
			p.consume()
			prop.Multiple = true
		case p.checkToken(TokenAsterisk):
			p.consume()
			prop.Multiple = true
		case p.checkTokenInFold(TokenIdentifier, "nofulltext", "nof"):
			p.consume()
			prop.FullTextSearchable = false
		case p.checkTokenInFold(TokenIdentifier, "noqueryorder", "nqord"):
			p.consume()
			prop.QueryOrderable = false
		case p.checkToken(TokenIdentifier) && schema.IsOnParentVersionKeyword(p.peek().Data):
			tok := p.consume()
			opv, _ := schema.ParseOnParentVersion(tok.Data)
			prop.OnParentVersion = opv
		default:
			return nil
		}
	}
}

// parseChildNodeDefinition parses one `+ name (requiredTypes) = defaultType
// attributes...` entry. The leading '+' has already been consumed.
func (p *CndParser) parseChildNodeDefinition(nt *schema.NodeType) error {
	child := &schema.ChildNodeDefinition{
		OnParentVersion: schema.OnParentVersionCopy,
	}

	name, err := p.parseItemName()
	if err != nil {
		return err
	}
	child.Name = name

	if _, ok := p.checkAndExpectToken(TokenLParen, ""); ok {
		types, err := p.parseNameList()
		if err != nil {
			return err
		}
		child.RequiredTypes = types
		if _, err := p.expectToken(TokenRParen, ""); err != nil {
			return err
		}
	}

	if _, ok := p.checkAndExpectToken(TokenEquals, ""); ok {
		defaultType, err := p.parseName()
		if err != nil {
			return err
		}
		child.DefaultType = defaultType
	}

	for {
		switch {
		case p.checkTokenInFold(TokenIdentifier, "autocreated", "aut", "a"):
			p.consume()
			child.Autocreated = true
		case p.checkTokenInFold(TokenIdentifier, "mandatory", "man", "m"):
			p.consume()
			child.Mandatory = true
		case p.checkTokenInFold(TokenIdentifier, "protected", "pro", "p"):
			p.consume()
			child.Protected = true
		case p.checkTokenInFold(TokenIdentifier, "sns"):
			p.consume()
			child.SameNameSiblings = true
		case p.checkToken(TokenAsterisk):
			p.consume()
			child.SameNameSiblings = true
		case p.checkToken(TokenIdentifier) && schema.IsOnParentVersionKeyword(p.peek().Data):
			tok := p.consume()
			opv, _ := schema.ParseOnParentVersion(tok.Data)
			child.OnParentVersion = opv
		default:
			nt.ChildNodes = append(nt.ChildNodes, child)
			return nil
		}
	}
}

// parseName parses an identifier or quoted name and validates that a prefixed
// name uses a declared or well-known namespace prefix.
func (p *CndParser) parseName() (string, error) {
	tok, err := p.expectNameToken()
	if err != nil {
		return "", err
	}
	if err := p.checkNamespacePrefix(tok); err != nil {
		return "", err
	}
	return tok.Data, nil
}

// parseItemName is parseName with the residual name `*` also allowed.
func (p *CndParser) parseItemName() (string, error) {
	if _, ok := p.checkAndExpectToken(TokenAsterisk, ""); ok {
		return "*", nil
	}
	return p.parseName()
}

func (p *CndParser) expectNameToken() (Token, error) {
	if tok, ok := p.checkAndExpectToken(TokenString, ""); ok {
		return tok, nil
	}
	return p.expectToken(TokenIdentifier, "")
}

// parseNameList parses `name (, name)*`, deduplicating while preserving the
// first occurrence order.
func (p *CndParser) parseNameList() ([]string, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	names := []string{name}
	for {
		if _, ok := p.checkAndExpectToken(TokenComma, ""); !ok {
			break
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return util.RemoveDuplicates(names), nil
}

// parseValueList parses `value (, value)*` where each value is a quoted
// string or a bare token.
func (p *CndParser) parseValueList() ([]string, error) {
	tok, err := p.expectValueToken()
	if err != nil {
		return nil, err
	}
	values := []string{tok.Data}
	for {
		if _, ok := p.checkAndExpectToken(TokenComma, ""); !ok {
			break
		}
		tok, err := p.expectValueToken()
		if err != nil {
			return nil, err
		}
		values = append(values, tok.Data)
	}
	return values, nil
}

func (p *CndParser) expectValueToken() (Token, error) {
	if tok, ok := p.checkAndExpectToken(TokenString, ""); ok {
		return tok, nil
	}
	return p.expectToken(TokenIdentifier, "")
}

func (p *CndParser) checkNamespacePrefix(tok Token) error {
	idx := strings.IndexByte(tok.Data, ':')
	if idx <= 0 {
		return nil
	}
	prefix := tok.Data[:idx]
	if _, ok := p.namespaces[prefix]; !ok {
		return p.errAt(tok, "unknown namespace prefix `%s` in name `%s`", prefix, tok.Data)
	}
	return nil
}

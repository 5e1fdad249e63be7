package chtype

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chdriver/chwire/errs"
)

// Parse parses the canonical textual type as emitted by ClickHouse, per the
// grammar in spec.md §4.1:
//
//	type := ident ( '(' args ')' )?
//	args := arg ( ',' arg )*
//	arg  := literal | quoted | type
func Parse(s string) (*Type, error) {
	p := &parser{s: s}
	p.skipSpace()

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("%w: trailing input %q", errs.ErrBadType, p.s[p.pos:])
	}

	return t, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func (p *parser) parseIdent() (string, error) {
	start := p.pos
	if p.pos >= len(p.s) || !isIdentStart(p.s[p.pos]) {
		return "", fmt.Errorf("%w: expected identifier at %q", errs.ErrBadType, p.s[p.pos:])
	}
	p.pos++
	for p.pos < len(p.s) && isIdentCont(p.s[p.pos]) {
		p.pos++
	}

	return p.s[start:p.pos], nil
}

// parseType parses one `ident ( '(' args ')' )?` node starting at p.pos.
func (p *parser) parseType() (*Type, error) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	var args []string
	if p.pos < len(p.s) && p.s[p.pos] == '(' {
		argsStr, err := p.readParenGroup()
		if err != nil {
			return nil, err
		}
		args, err = splitTopLevelArgs(argsStr)
		if err != nil {
			return nil, err
		}
	}

	return build(name, args)
}

// readParenGroup consumes a balanced '(' ... ')' group at p.pos and returns
// its interior, tracking nested parens and single-quoted strings so that
// composite arguments (nested types, quoted timezones containing commas or
// parens) are not mis-split.
func (p *parser) readParenGroup() (string, error) {
	if p.s[p.pos] != '(' {
		return "", fmt.Errorf("%w: expected '('", errs.ErrBadType)
	}
	start := p.pos
	depth := 0
	inQuote := false

	for i := p.pos; i < len(p.s); i++ {
		c := p.s[i]
		switch {
		case c == '\'' && !inQuote:
			inQuote = true
		case c == '\'' && inQuote:
			inQuote = false
		case inQuote:
			// inside quotes, ignore parens/commas
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				p.pos = i + 1

				return p.s[start+1 : i], nil
			}
		}
	}

	return "", fmt.Errorf("%w: unbalanced parentheses in %q", errs.ErrBadType, p.s[start:])
}

// splitTopLevelArgs splits s on commas that are not inside nested
// parentheses or single quotes, trimming surrounding whitespace from each
// argument.
func splitTopLevelArgs(s string) ([]string, error) {
	var args []string
	depth := 0
	inQuote := false
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case inQuote:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced parentheses in %q", errs.ErrBadType, s)
			}
		case c == ',' && depth == 0:
			args = append(args, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if depth != 0 || inQuote {
		return nil, fmt.Errorf("%w: unbalanced parentheses in %q", errs.ErrBadType, s)
	}
	args = append(args, strings.TrimSpace(s[start:]))

	return args, nil
}

func parseQuoted(s string) (string, error) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return "", fmt.Errorf("%w: expected quoted string, got %q", errs.ErrBadType, s)
	}

	return s[1 : len(s)-1], nil
}

func parseIntArg(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: expected integer argument, got %q", errs.ErrBadType, s)
	}

	return n, nil
}

func parseNestedType(s string) (*Type, error) {
	return Parse(s)
}

// build dispatches on a parsed identifier and its raw argument strings (nil
// if the identifier had no parenthesized arguments).
func build(name string, args []string) (*Type, error) {
	switch name {
	case "Int8":
		return zeroArg(KindInt8, name, args)
	case "Int16":
		return zeroArg(KindInt16, name, args)
	case "Int32":
		return zeroArg(KindInt32, name, args)
	case "Int64":
		return zeroArg(KindInt64, name, args)
	case "Int128":
		return zeroArg(KindInt128, name, args)
	case "Int256":
		return zeroArg(KindInt256, name, args)
	case "UInt8":
		return zeroArg(KindUInt8, name, args)
	case "UInt16":
		return zeroArg(KindUInt16, name, args)
	case "UInt32":
		return zeroArg(KindUInt32, name, args)
	case "UInt64":
		return zeroArg(KindUInt64, name, args)
	case "UInt128":
		return zeroArg(KindUInt128, name, args)
	case "UInt256":
		return zeroArg(KindUInt256, name, args)
	case "Float32":
		return zeroArg(KindFloat32, name, args)
	case "Float64":
		return zeroArg(KindFloat64, name, args)
	case "String":
		return zeroArg(KindString, name, args)
	case "Date":
		return zeroArg(KindDate, name, args)
	case "UUID":
		return zeroArg(KindUUID, name, args)
	case "IPv4":
		return zeroArg(KindIPv4, name, args)
	case "IPv6":
		return zeroArg(KindIPv6, name, args)

	case "FixedString":
		if len(args) != 1 {
			return nil, arityErr(name, args)
		}
		n, err := parseIntArg(args[0])
		if err != nil {
			return nil, err
		}

		return FixedString(n), nil

	case "Decimal":
		if len(args) != 2 {
			return nil, arityErr(name, args)
		}
		p, err := parseIntArg(args[0])
		if err != nil {
			return nil, err
		}
		s, err := parseIntArg(args[1])
		if err != nil {
			return nil, err
		}

		return Decimal(p, s), nil

	case "Decimal32", "Decimal64", "Decimal128", "Decimal256":
		if len(args) != 1 {
			return nil, arityErr(name, args)
		}
		scale, err := parseIntArg(args[0])
		if err != nil {
			return nil, err
		}
		switch name {
		case "Decimal32":
			return Decimal32(scale), nil
		case "Decimal64":
			return Decimal64(scale), nil
		case "Decimal128":
			return Decimal128(scale), nil
		default:
			return Decimal256(scale), nil
		}

	case "DateTime":
		switch len(args) {
		case 0:
			return DateTime(nil), nil
		case 1:
			loc, err := parseTZArg(args[0])
			if err != nil {
				return nil, err
			}

			return DateTime(loc), nil
		default:
			return nil, arityErr(name, args)
		}

	case "DateTime64":
		switch len(args) {
		case 1:
			p, err := parseIntArg(args[0])
			if err != nil {
				return nil, err
			}

			return DateTime64(p, nil), nil
		case 2:
			p, err := parseIntArg(args[0])
			if err != nil {
				return nil, err
			}
			loc, err := parseTZArg(args[1])
			if err != nil {
				return nil, err
			}

			return DateTime64(p, loc), nil
		default:
			return nil, arityErr(name, args)
		}

	case "Array":
		if len(args) != 1 {
			return nil, arityErr(name, args)
		}
		elem, err := parseNestedType(args[0])
		if err != nil {
			return nil, err
		}

		return Array(elem), nil

	case "Nullable":
		if len(args) != 1 {
			return nil, arityErr(name, args)
		}
		inner, err := parseNestedType(args[0])
		if err != nil {
			return nil, err
		}

		return Nullable(inner), nil

	case "LowCardinality":
		if len(args) != 1 {
			return nil, arityErr(name, args)
		}
		inner, err := parseNestedType(args[0])
		if err != nil {
			return nil, err
		}

		return LowCardinality(inner), nil

	case "Map":
		if len(args) != 2 {
			return nil, arityErr(name, args)
		}
		k, err := parseNestedType(args[0])
		if err != nil {
			return nil, err
		}
		v, err := parseNestedType(args[1])
		if err != nil {
			return nil, err
		}

		return MapType(k, v), nil

	case "Tuple":
		if len(args) == 0 {
			return nil, arityErr(name, args)
		}
		elems := make([]*Type, len(args))
		for i, a := range args {
			e, err := parseNestedType(a)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}

		return Tuple(elems...), nil

	case "Enum8", "Enum16", "Nested":
		// spec.md §9: textual Enum/Nested parsing is a declared ambiguity;
		// this implementation surfaces it rather than guessing member
		// values from syntax alone.
		return nil, fmt.Errorf("%w: textual parse of %s is not implemented", errs.ErrUnsupported, name)

	default:
		return nil, fmt.Errorf("%w: unknown type %q", errs.ErrBadType, name)
	}
}

func zeroArg(k Kind, name string, args []string) (*Type, error) {
	if len(args) != 0 {
		return nil, arityErr(name, args)
	}

	return newScalar(k), nil
}

func arityErr(name string, args []string) error {
	return fmt.Errorf("%w: %s takes a different number of arguments than %d", errs.ErrBadType, name, len(args))
}

func parseTZArg(s string) (*time.Location, error) {
	name := s
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		var err error
		name, err = parseQuoted(s)
		if err != nil {
			return nil, err
		}
	}
	if name == "UTC" || name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", errs.ErrBadType, name, err)
	}

	return loc, nil
}

package jsonpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacoelho/jsonpath/internal/jsonvalue"
)

// FormatQuery renders q in canonical syntax: a leading '$' followed by its
// segments. FormatQuery composed with ParseQuery round-trips.
func FormatQuery(q *Query) string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, seg := range q.Segments {
		writeSegment(&sb, seg)
	}
	return sb.String()
}

// FormatSegment renders one segment in isolation (no leading '$').
func FormatSegment(seg Segment) string {
	var sb strings.Builder
	writeSegment(&sb, seg)
	return sb.String()
}

// FormatSelector renders one selector in its bracket form.
func FormatSelector(sel Selector) string {
	var sb strings.Builder
	writeSelector(&sb, sel)
	return sb.String()
}

// FormatExpression renders a filter expression with minimum parentheses,
// as it would appear after '?' in a filter selector.
func FormatExpression(expr Expression) string {
	var sb strings.Builder
	writeExpression(&sb, expr, precedenceOr)
	return sb.String()
}

func writeSegment(sb *strings.Builder, seg Segment) {
	if shorthand, ok := shorthandSelector(seg); ok {
		if seg.Kind == SegmentDescendant {
			sb.WriteString("..")
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(shorthand)
		return
	}
	if seg.Kind == SegmentDescendant {
		sb.WriteString("..")
	}
	sb.WriteByte('[')
	for i, sel := range seg.Selectors {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeSelector(sb, sel)
	}
	sb.WriteByte(']')
}

// shorthandSelector reports whether seg is a single Name (with a valid
// shorthand spelling) or single Wildcard selector, returning its printed
// form (".name"/ "..name" style, minus the leading dots).
func shorthandSelector(seg Segment) (string, bool) {
	if len(seg.Selectors) != 1 {
		return "", false
	}
	sel := seg.Selectors[0]
	switch sel.Kind {
	case SelectorWildcard:
		return "*", true
	case SelectorName:
		if isShorthandName(sel.Name) {
			return sel.Name, true
		}
	}
	return "", false
}

func isShorthandName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isNameFirstRune(r) {
				return false
			}
			continue
		}
		if !isNameCharRune(r) {
			return false
		}
	}
	return true
}

func writeSelector(sb *strings.Builder, sel Selector) {
	switch sel.Kind {
	case SelectorName:
		writeQuotedString(sb, sel.Name)
	case SelectorWildcard:
		sb.WriteByte('*')
	case SelectorIndex:
		sb.WriteString(strconv.FormatInt(sel.Index, 10))
	case SelectorSlice:
		writeSlice(sb, sel.Slice)
	case SelectorFilter:
		sb.WriteByte('?')
		writeExpression(sb, *sel.Filter, precedenceOr)
	}
}

func writeSlice(sb *strings.Builder, sl Slice) {
	if sl.Start != nil {
		sb.WriteString(strconv.FormatInt(*sl.Start, 10))
	}
	sb.WriteByte(':')
	if sl.End != nil {
		sb.WriteString(strconv.FormatInt(*sl.End, 10))
	}
	if sl.Step != nil {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(*sl.Step, 10))
	}
}

// writeQuotedString renders s as a single-quoted string literal, escaping
// the apostrophe, backslash, and the standard short escapes, and \uXXXX for
// any other non-printable code point.
func writeQuotedString(sb *strings.Builder, s string) {
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('\'')
}

// precedence levels, lowest to highest: Or(1), And(2), Comparison(3),
// Not(4), atom(5).
const (
	precedenceOr = iota + 1
	precedenceAnd
	precedenceComparison
	precedenceNot
	precedenceAtom
)

func expressionPrecedence(expr Expression) int {
	switch expr.Kind {
	case ExprOr:
		return precedenceOr
	case ExprAnd:
		return precedenceAnd
	case ExprComparison:
		return precedenceComparison
	case ExprNot:
		return precedenceNot
	default:
		return precedenceAtom
	}
}

// writeExpression renders expr, wrapping it in parentheses only when its
// own precedence is strictly lower than minPrecedence, the precedence
// required by its position.
func writeExpression(sb *strings.Builder, expr Expression, minPrecedence int) {
	if expressionPrecedence(expr) < minPrecedence {
		sb.WriteByte('(')
		writeExpressionBody(sb, expr)
		sb.WriteByte(')')
		return
	}
	writeExpressionBody(sb, expr)
}

func writeExpressionBody(sb *strings.Builder, expr Expression) {
	switch expr.Kind {
	case ExprOr:
		writeJoined(sb, expr.Operands, " || ", precedenceOr)
	case ExprAnd:
		writeJoined(sb, expr.Operands, " && ", precedenceAnd)
	case ExprNot:
		sb.WriteByte('!')
		writeExpression(sb, expr.Operands[0], precedenceNot)
	case ExprComparison:
		writeExpression(sb, expr.Operands[0], precedenceComparison+1)
		sb.WriteByte(' ')
		sb.WriteString(expr.Op.String())
		sb.WriteByte(' ')
		writeExpression(sb, expr.Operands[1], precedenceComparison+1)
	case ExprQuery:
		sb.WriteByte(expr.QueryRoot)
		for _, seg := range expr.QuerySegments {
			writeSegment(sb, seg)
		}
	case ExprLiteral:
		writeLiteral(sb, expr.Literal)
	case ExprFunction:
		writeFunctionCall(sb, expr.Function)
	}
}

func writeJoined(sb *strings.Builder, operands []Expression, sep string, minPrecedence int) {
	for i, op := range operands {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeExpression(sb, op, minPrecedence)
	}
}

func writeFunctionCall(sb *strings.Builder, fc *FunctionCall) {
	sb.WriteString(fc.Extension.Name)
	sb.WriteByte('(')
	for i, arg := range fc.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpression(sb, arg, precedenceOr)
	}
	sb.WriteByte(')')
}

func writeLiteral(sb *strings.Builder, v jsonvalue.Value) {
	switch v.Kind() {
	case jsonvalue.KindNull:
		sb.WriteString("null")
	case jsonvalue.KindBool:
		if v.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case jsonvalue.KindString:
		writeQuotedString(sb, v.Str())
	default:
		sb.WriteString(v.Number().String())
	}
}

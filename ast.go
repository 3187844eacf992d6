package jsonpath

import "github.com/jacoelho/jsonpath/internal/jsonvalue"

// Query is a parsed JSONPath expression: an ordered list of segments
// applied to a root value. The zero Query (no segments) matches the root
// alone.
type Query struct {
	Segments []Segment
}

// NewQuery builds a Query from its segments.
func NewQuery(segments ...Segment) *Query {
	return &Query{Segments: segments}
}

// SegmentKind distinguishes child ('.'/'[...]') from descendant ('..')
// segments.
type SegmentKind uint8

const (
	SegmentChild SegmentKind = iota
	SegmentDescendant
)

// Segment is one step of a Query: either a child segment, applied to the
// current nodelist, or a descendant segment, applied to every node and
// all of its descendants.
type Segment struct {
	Kind      SegmentKind
	Selectors []Selector
}

// NewChildSegment builds a child segment from one or more selectors.
func NewChildSegment(selectors ...Selector) Segment {
	return Segment{Kind: SegmentChild, Selectors: selectors}
}

// NewDescendantSegment builds a descendant segment from one or more
// selectors. A descendant segment with no selectors is a no-op at
// evaluation.
func NewDescendantSegment(selectors ...Selector) Segment {
	return Segment{Kind: SegmentDescendant, Selectors: selectors}
}

// SelectorKind distinguishes the five selector forms RFC 9535 defines.
type SelectorKind uint8

const (
	SelectorName SelectorKind = iota
	SelectorWildcard
	SelectorIndex
	SelectorSlice
	SelectorFilter
)

// Slice holds the (possibly absent) start/end/step of a slice selector.
// A nil field means that bound was omitted from the source text.
type Slice struct {
	Start *int64
	End   *int64
	Step  *int64
}

// Selector is one bracket- or dot-notation step within a segment.
type Selector struct {
	Kind SelectorKind

	Name  string // SelectorName
	Index int64  // SelectorIndex
	Slice Slice  // SelectorSlice

	Filter *Expression // SelectorFilter
}

// NewNameSelector builds a member-name selector.
func NewNameSelector(name string) Selector {
	return Selector{Kind: SelectorName, Name: name}
}

// NewWildcardSelector builds a wildcard selector.
func NewWildcardSelector() Selector {
	return Selector{Kind: SelectorWildcard}
}

// NewIndexSelector builds an array-index selector.
func NewIndexSelector(i int64) Selector {
	return Selector{Kind: SelectorIndex, Index: i}
}

// NewSliceSelector builds a slice selector; any bound may be nil.
func NewSliceSelector(start, end, step *int64) Selector {
	return Selector{Kind: SelectorSlice, Slice: Slice{Start: start, End: end, Step: step}}
}

// NewFilterSelector builds a filter selector from its logical expression.
func NewFilterSelector(expr Expression) Selector {
	return Selector{Kind: SelectorFilter, Filter: &expr}
}

// ExpressionKind identifies which variant of the filter-expression grammar
// an Expression holds.
type ExpressionKind uint8

const (
	ExprOr ExpressionKind = iota
	ExprAnd
	ExprNot
	ExprComparison
	ExprQuery
	ExprLiteral
	ExprFunction
)

// ComparisonOperator is one of RFC 9535's six comparison operators.
type ComparisonOperator uint8

const (
	OpEqual ComparisonOperator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

// String renders the operator's canonical spelling.
func (op ComparisonOperator) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Expression is a node of a filter expression tree. Which fields are
// populated depends on Kind:
//
//	ExprOr, ExprAnd    Operands (>= 2 elements)
//	ExprNot            Operands[0]
//	ExprComparison     Operands[0] (lhs), Op, Operands[1] (rhs)
//	ExprQuery          QueryRoot ('$' or '@'), QuerySegments
//	ExprLiteral        Literal
//	ExprFunction       Function
type Expression struct {
	Kind ExpressionKind

	Operands []Expression
	Op       ComparisonOperator

	QueryRoot     byte
	QuerySegments []Segment

	Literal jsonvalue.Value

	Function *FunctionCall
}

// FunctionCall is a call to a registered FunctionExtension within a filter
// expression.
type FunctionCall struct {
	Extension *FunctionExtension
	Args      []Expression
}

// NewOr builds a logical OR of two or more operands.
func NewOr(operands ...Expression) Expression {
	return Expression{Kind: ExprOr, Operands: operands}
}

// NewAnd builds a logical AND of two or more operands.
func NewAnd(operands ...Expression) Expression {
	return Expression{Kind: ExprAnd, Operands: operands}
}

// NewNot builds the negation of operand.
func NewNot(operand Expression) Expression {
	return Expression{Kind: ExprNot, Operands: []Expression{operand}}
}

// NewComparison builds a comparison of lhs and rhs.
func NewComparison(lhs Expression, op ComparisonOperator, rhs Expression) Expression {
	return Expression{Kind: ExprComparison, Operands: []Expression{lhs, rhs}, Op: op}
}

// NewQueryExpression builds an embedded '$'- or '@'-rooted sub-query.
// root must be '$' or '@'.
func NewQueryExpression(root byte, segments ...Segment) Expression {
	return Expression{Kind: ExprQuery, QueryRoot: root, QuerySegments: segments}
}

// NewLiteral builds a literal value expression.
func NewLiteral(v jsonvalue.Value) Expression {
	return Expression{Kind: ExprLiteral, Literal: v}
}

// NewFunctionExpression builds a call to ext with the given arguments.
func NewFunctionExpression(ext *FunctionExtension, args ...Expression) Expression {
	return Expression{Kind: ExprFunction, Function: &FunctionCall{Extension: ext, Args: args}}
}

// IsSingularSelector reports whether sel can, on its own, select at most
// one node: Name and Index selectors are singular, Wildcard/Slice/Filter
// are not.
func IsSingularSelector(sel Selector) bool {
	return sel.Kind == SelectorName || sel.Kind == SelectorIndex
}

// IsSingularSegment reports whether seg is a child segment with exactly
// one singular selector.
func IsSingularSegment(seg Segment) bool {
	return seg.Kind == SegmentChild && len(seg.Selectors) == 1 && IsSingularSelector(seg.Selectors[0])
}

// IsSingularQuery reports whether every segment of q is singular, i.e. q
// is statically guaranteed to select at most one node.
func IsSingularQuery(q *Query) bool {
	for _, seg := range q.Segments {
		if !IsSingularSegment(seg) {
			return false
		}
	}
	return true
}

// isSingularSegments is the embedded-query equivalent of IsSingularQuery,
// used by the parser when it only has a segment slice (not a *Query) at
// hand.
func isSingularSegments(segments []Segment) bool {
	for _, seg := range segments {
		if !IsSingularSegment(seg) {
			return false
		}
	}
	return true
}

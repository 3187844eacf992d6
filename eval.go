package jsonpath

import "github.com/jacoelho/jsonpath/internal/jsonvalue"

// Nodelist is an ordered, duplicate-preserving sequence of JSON nodes. It
// is never deduplicated.
type Nodelist []jsonvalue.Value

// Values renders the nodelist as plain Go values (nil, bool, json.Number,
// string, []any, map[string]any), the shapes encoding/json produces.
func (nl Nodelist) Values() []any {
	out := make([]any, len(nl))
	for i, v := range nl {
		out[i] = jsonvalue.ToAny(v)
	}
	return out
}

// EvaluateQuery evaluates a query against root and returns its nodelist.
// query may be a *Query, a Query, or a string (parsed with ParseQuery).
func EvaluateQuery(query any, root jsonvalue.Value, opts ...Option) (Nodelist, error) {
	q, err := asQuery(query)
	if err != nil {
		return nil, err
	}

	ctx := CreateQueryContext(root, opts...)
	return evaluateSegments(q.Segments, Nodelist{root}, ctx), nil
}

func asQuery(query any) (*Query, error) {
	switch v := query.(type) {
	case *Query:
		return v, nil
	case Query:
		return &v, nil
	case string:
		return ParseQuery(v)
	default:
		return nil, evalErrorf("evaluateQuery: unsupported query argument type %T", query)
	}
}

// evaluateSegments applies each segment of a query in order, threading the
// nodelist through.
func evaluateSegments(segments []Segment, nodes Nodelist, ctx *QueryContext) Nodelist {
	for _, seg := range segments {
		nodes = evaluateSegment(seg, nodes, ctx)
	}
	return nodes
}

func evaluateSegment(seg Segment, nodes Nodelist, ctx *QueryContext) Nodelist {
	if seg.Kind == SegmentDescendant {
		return evaluateDescendantSegment(seg, nodes, ctx)
	}
	return evaluateChildSegment(seg, nodes, ctx)
}

// evaluateChildSegment iterates selectors outer, nodes inner: for a
// segment with multiple selectors this order is observable in the result.
func evaluateChildSegment(seg Segment, nodes Nodelist, ctx *QueryContext) Nodelist {
	var out Nodelist
	for _, sel := range seg.Selectors {
		for _, n := range nodes {
			out = append(out, evaluateSelector(sel, n, ctx)...)
		}
	}
	return out
}

// evaluateDescendantSegment iterates nodes outer: for each input node,
// every selector is applied to the node itself before the pre-order walk
// of its descendants begins.
func evaluateDescendantSegment(seg Segment, nodes Nodelist, ctx *QueryContext) Nodelist {
	var out Nodelist
	for _, n := range nodes {
		for _, sel := range seg.Selectors {
			out = append(out, evaluateSelector(sel, n, ctx)...)
		}
		for _, d := range jsonvalue.Descendants(n) {
			for _, sel := range seg.Selectors {
				out = append(out, evaluateSelector(sel, d, ctx)...)
			}
		}
	}
	return out
}

func evaluateSelector(sel Selector, n jsonvalue.Value, ctx *QueryContext) Nodelist {
	switch sel.Kind {
	case SelectorName:
		if v, ok := jsonvalue.Child(n, sel.Name); ok {
			return Nodelist{v}
		}
		return nil
	case SelectorWildcard:
		return Nodelist(jsonvalue.Children(n))
	case SelectorIndex:
		return evaluateIndex(sel.Index, n)
	case SelectorSlice:
		return evaluateSlice(sel.Slice, n)
	case SelectorFilter:
		return evaluateFilterSelector(sel, n, ctx)
	default:
		return nil
	}
}

func evaluateIndex(i int64, n jsonvalue.Value) Nodelist {
	if !jsonvalue.IsArray(n) {
		return nil
	}
	length := int64(len(n.RawArray()))
	j := i
	if j < 0 {
		j += length
	}
	if j < 0 || j >= length {
		return nil
	}
	v, _ := jsonvalue.Index(n, int(j))
	return Nodelist{v}
}

// evaluateSlice implements the start:end:step slice selector algorithm,
// normalizing negative bounds and clamping against the array length before
// walking by step.
func evaluateSlice(sl Slice, n jsonvalue.Value) Nodelist {
	if !jsonvalue.IsArray(n) {
		return nil
	}
	length := int64(len(n.RawArray()))

	step := int64(1)
	switch {
	case sl.Step != nil:
		step = *sl.Step
	case length == 0:
		step = 0
	}
	if step == 0 {
		return nil
	}

	normalize := func(x int64) int64 {
		if x < 0 {
			return x + length
		}
		return x
	}
	clamp := func(x, lo, hi int64) int64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}

	var out Nodelist
	if step > 0 {
		start := int64(0)
		if sl.Start != nil {
			start = *sl.Start
		}
		end := length
		if sl.End != nil {
			end = *sl.End
		}
		lower := clamp(normalize(start), 0, length)
		upper := clamp(normalize(end), 0, length)
		for i := lower; i < upper; i += step {
			v, _ := jsonvalue.Index(n, int(i))
			out = append(out, v)
		}
		return out
	}

	start := length - 1
	if sl.Start != nil {
		start = *sl.Start
	}
	end := -length - 1
	if sl.End != nil {
		end = *sl.End
	}
	upper := clamp(normalize(start), -1, length-1)
	lower := clamp(normalize(end), -1, length-1)
	for i := upper; i > lower; i += step {
		v, _ := jsonvalue.Index(n, int(i))
		out = append(out, v)
	}
	return out
}

func evaluateFilterSelector(sel Selector, n jsonvalue.Value, ctx *QueryContext) Nodelist {
	var out Nodelist
	for _, child := range jsonvalue.Children(n) {
		if evaluateExpression(*sel.Filter, child, ctx) {
			out = append(out, child)
		}
	}
	return out
}

// evaluateExpression evaluates expr in a logical (test-expression)
// position against the current filter node. ExprLiteral is unreachable
// here — the parser never allows a bare literal as a test-expression.
func evaluateExpression(expr Expression, node jsonvalue.Value, ctx *QueryContext) bool {
	switch expr.Kind {
	case ExprOr:
		for _, op := range expr.Operands {
			if evaluateExpression(op, node, ctx) {
				return true
			}
		}
		return false
	case ExprAnd:
		for _, op := range expr.Operands {
			if !evaluateExpression(op, node, ctx) {
				return false
			}
		}
		return true
	case ExprNot:
		return !evaluateExpression(expr.Operands[0], node, ctx)
	case ExprComparison:
		lhs := evaluateComparableExpression(expr.Operands[0], node, ctx)
		rhs := evaluateComparableExpression(expr.Operands[1], node, ctx)
		return compareNodelists(lhs, expr.Op, rhs)
	case ExprQuery:
		return len(evaluateQueryExpression(expr, node, ctx)) != 0
	case ExprFunction:
		res := evaluateFunctionCall(expr.Function, node, ctx)
		switch res.Kind {
		case TypeLogical:
			return res.Logical
		case TypeNodes:
			return len(res.Nodes) != 0
		default:
			return false // unreachable: parser rejects Value functions here
		}
	default:
		return false // unreachable: bare literal in test-expression position
	}
}

// evaluateComparableExpression evaluates expr in a comparison/Value
// position, returning a single-element nodelist for a present value and an
// empty one for Nothing.
func evaluateComparableExpression(expr Expression, node jsonvalue.Value, ctx *QueryContext) Nodelist {
	switch expr.Kind {
	case ExprLiteral:
		return Nodelist{expr.Literal}
	case ExprQuery:
		return evaluateQueryExpression(expr, node, ctx)
	case ExprFunction:
		res := evaluateFunctionCall(expr.Function, node, ctx)
		if res.Value == nil {
			return nil
		}
		return Nodelist{*res.Value}
	default:
		return nil // unreachable: parser only allows the above in comparisons
	}
}

// evaluateQueryExpression resolves an embedded $/@ sub-query. '@' is
// rooted at the current filter node; '$' is rooted at the outermost query
// argument, which — because the argument never actually changes during one
// evaluation unless overridden via WithQueryArgument — is ctx.QueryArgument
// itself. The push/pop bracketing exists so that override is exception-safe
// and so nested '$' queries compose without special-casing depth.
func evaluateQueryExpression(expr Expression, node jsonvalue.Value, ctx *QueryContext) Nodelist {
	var root jsonvalue.Value
	if expr.QueryRoot == '@' {
		root = node
	} else {
		root = ctx.QueryArgument
		ctx.pushRoot(root)
		defer ctx.popRoot()
	}
	return evaluateSegments(expr.QuerySegments, Nodelist{root}, ctx)
}

func evaluateFunctionCall(fc *FunctionCall, node jsonvalue.Value, ctx *QueryContext) FuncResult {
	args := make([]FuncArg, len(fc.Args))
	for i, argExpr := range fc.Args {
		args[i] = evaluateFunctionArg(argExpr, fc.Extension.ParameterTypes[i], node, ctx)
	}
	return fc.Extension.Evaluate(ctx, args)
}

// evaluateFunctionArg evaluates one call argument, re-deriving how to
// interpret expr from the declared parameter type rather than from expr's
// own shape.
func evaluateFunctionArg(expr Expression, want DeclaredType, node jsonvalue.Value, ctx *QueryContext) FuncArg {
	switch want {
	case TypeValue:
		return evaluateValueArg(expr, node, ctx)
	case TypeLogical:
		return evaluateLogicalArg(expr, node, ctx)
	default: // TypeNodes
		return evaluateNodesArg(expr, node, ctx)
	}
}

func evaluateValueArg(expr Expression, node jsonvalue.Value, ctx *QueryContext) FuncArg {
	switch expr.Kind {
	case ExprLiteral:
		v := expr.Literal
		return FuncArg{Kind: TypeValue, Value: &v}
	case ExprQuery:
		nodes := evaluateQueryExpression(expr, node, ctx)
		if len(nodes) == 1 {
			v := nodes[0]
			return FuncArg{Kind: TypeValue, Value: &v}
		}
		return FuncArg{Kind: TypeValue}
	case ExprFunction:
		res := evaluateFunctionCall(expr.Function, node, ctx)
		return FuncArg{Kind: TypeValue, Value: res.Value}
	default:
		return FuncArg{Kind: TypeValue} // unreachable per parser typing
	}
}

func evaluateLogicalArg(expr Expression, node jsonvalue.Value, ctx *QueryContext) FuncArg {
	if expr.Kind == ExprFunction {
		res := evaluateFunctionCall(expr.Function, node, ctx)
		switch res.Kind {
		case TypeLogical:
			return FuncArg{Kind: TypeLogical, Logical: res.Logical}
		case TypeNodes:
			return FuncArg{Kind: TypeLogical, Logical: len(res.Nodes) != 0}
		default:
			return FuncArg{Kind: TypeLogical} // unreachable per parser typing
		}
	}
	return FuncArg{Kind: TypeLogical, Logical: evaluateExpression(expr, node, ctx)}
}

func evaluateNodesArg(expr Expression, node jsonvalue.Value, ctx *QueryContext) FuncArg {
	switch expr.Kind {
	case ExprQuery:
		return FuncArg{Kind: TypeNodes, Nodes: evaluateQueryExpression(expr, node, ctx)}
	case ExprFunction:
		res := evaluateFunctionCall(expr.Function, node, ctx)
		return FuncArg{Kind: TypeNodes, Nodes: res.Nodes}
	default:
		return FuncArg{Kind: TypeNodes} // unreachable per parser typing
	}
}

// compareNodelists implements the comparison table for possibly-Nothing
// operands. The parser guarantees each side has length 0 (Nothing) or 1.
func compareNodelists(lhs Nodelist, op ComparisonOperator, rhs Nodelist) bool {
	lEmpty, rEmpty := len(lhs) == 0, len(rhs) == 0

	switch {
	case lEmpty && rEmpty:
		switch op {
		case OpEqual, OpLessEqual, OpGreaterEqual:
			return true
		default:
			return false
		}
	case lEmpty != rEmpty:
		return op == OpNotEqual
	case len(lhs) == 1 && len(rhs) == 1:
		return compareValues(lhs[0], op, rhs[0])
	default:
		return false
	}
}

func compareValues(a jsonvalue.Value, op ComparisonOperator, b jsonvalue.Value) bool {
	switch op {
	case OpEqual:
		return jsonvalue.Equal(a, b)
	case OpNotEqual:
		return !jsonvalue.Equal(a, b)
	}

	order, ok := jsonvalue.Compare(a, b)
	if !ok {
		// Undefined ordering means false for every strict-ordering operator.
		return false
	}
	switch op {
	case OpLess:
		return order < 0
	case OpLessEqual:
		return order <= 0
	case OpGreater:
		return order > 0
	case OpGreaterEqual:
		return order >= 0
	default:
		return false
	}
}

package jsonpath

import "testing"

func TestParseQueryShorthandAndBracketEquivalence(t *testing.T) {
	a, err := ParseQuery("$.store.book")
	if err != nil {
		t.Fatalf("ParseQuery shorthand error = %v", err)
	}
	b, err := ParseQuery(`$['store']['book']`)
	if err != nil {
		t.Fatalf("ParseQuery bracket error = %v", err)
	}
	if FormatQuery(a) != FormatQuery(b) {
		t.Errorf("FormatQuery(a) = %q, FormatQuery(b) = %q, want equal", FormatQuery(a), FormatQuery(b))
	}
}

func TestParseQueryDescendantSegment(t *testing.T) {
	q, err := ParseQuery("$..book")
	if err != nil {
		t.Fatalf("ParseQuery error = %v", err)
	}
	if len(q.Segments) != 1 || q.Segments[0].Kind != SegmentDescendant {
		t.Fatalf("expected a single descendant segment, got %+v", q.Segments)
	}
}

func TestParseQueryRejectsMissingDollar(t *testing.T) {
	if _, err := ParseQuery(".store.book"); err == nil {
		t.Fatal("expected parse error for a query without a leading '$'")
	}
}

func TestParseQueryRejectsTrailingInput(t *testing.T) {
	if _, err := ParseQuery("$.a garbage"); err == nil {
		t.Fatal("expected parse error for trailing input")
	}
}

func TestParseImplicitQueryAcceptsBareName(t *testing.T) {
	q, err := ParseImplicitQuery("store.book")
	if err != nil {
		t.Fatalf("ParseImplicitQuery error = %v", err)
	}
	if len(q.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(q.Segments))
	}
	if q.Segments[0].Selectors[0].Name != "store" {
		t.Errorf("first segment name = %q, want store", q.Segments[0].Selectors[0].Name)
	}
}

func TestParseQueryLeadingZeroRejected(t *testing.T) {
	if _, err := ParseQuery("$[01]"); err == nil {
		t.Fatal("expected parse error for a leading-zero index")
	}
}

func TestParseQueryNegativeZeroRejected(t *testing.T) {
	if _, err := ParseQuery("$[-0]"); err == nil {
		t.Fatal("expected parse error for -0 as an index")
	}
}

func TestParseQueryStringLiteralEscapes(t *testing.T) {
	sel, err := ParseSelector(`'a\tbA'`)
	if err != nil {
		t.Fatalf("ParseSelector error = %v", err)
	}
	if sel.Name != "a\tbA" {
		t.Errorf("Name = %q, want %q", sel.Name, "a\tbA")
	}
}

func TestParseQuerySurrogatePairEscape(t *testing.T) {
	sel, err := ParseSelector("'\\ud83d\\ude00'")
	if err != nil {
		t.Fatalf("ParseSelector error = %v", err)
	}
	if sel.Name != "😀" {
		t.Errorf("Name = %q, want 😀", sel.Name)
	}
}

func TestParseQueryUnpairedSurrogateRejected(t *testing.T) {
	if _, err := ParseSelector(`'\ud83d'`); err == nil {
		t.Fatal("expected parse error for an unpaired high surrogate")
	}
}

func TestParseExpressionOperatorPrecedence(t *testing.T) {
	expr, err := ParseExpression(`@.a == 1 || @.b == 2 && @.c == 3`)
	if err != nil {
		t.Fatalf("ParseExpression error = %v", err)
	}
	if expr.Kind != ExprOr {
		t.Fatalf("top-level kind = %v, want ExprOr", expr.Kind)
	}
	if len(expr.Operands) != 2 || expr.Operands[1].Kind != ExprAnd {
		t.Fatalf("|| should bind looser than &&: %+v", expr.Operands)
	}
}

func TestParseExpressionParenthesesOverridePrecedence(t *testing.T) {
	expr, err := ParseExpression(`(@.a == 1 || @.b == 2) && @.c == 3`)
	if err != nil {
		t.Fatalf("ParseExpression error = %v", err)
	}
	if expr.Kind != ExprAnd {
		t.Fatalf("top-level kind = %v, want ExprAnd", expr.Kind)
	}
	if expr.Operands[0].Kind != ExprOr {
		t.Fatalf("first operand should be the parenthesized Or, got %v", expr.Operands[0].Kind)
	}
}

func TestParseExpressionRejectsBareLiteral(t *testing.T) {
	if _, err := ParseExpression("1"); err == nil {
		t.Fatal("expected parse error for a bare literal test-expression")
	}
}

func TestParseExpressionRejectsValueFunctionAsTestExpression(t *testing.T) {
	if _, err := ParseExpression("length(@.a)"); err == nil {
		t.Fatal("expected parse error for a Value-returning function used as a test-expression")
	}
}

func TestParseExpressionRejectsUnknownFunction(t *testing.T) {
	if _, err := ParseExpression("nope(@.a)"); err == nil {
		t.Fatal("expected parse error for an unresolved function name")
	}
}

func TestParseExpressionRejectsArityMismatch(t *testing.T) {
	if _, err := ParseExpression("count(@.a, @.b)"); err == nil {
		t.Fatal("expected parse error for an arity mismatch")
	}
}

func TestParseSliceSelectorBounds(t *testing.T) {
	sel, err := ParseSelector("1:5:2")
	if err != nil {
		t.Fatalf("ParseSelector error = %v", err)
	}
	if sel.Kind != SelectorSlice {
		t.Fatalf("Kind = %v, want SelectorSlice", sel.Kind)
	}
	if sel.Slice.Start == nil || *sel.Slice.Start != 1 {
		t.Errorf("Start = %v, want 1", sel.Slice.Start)
	}
	if sel.Slice.End == nil || *sel.Slice.End != 5 {
		t.Errorf("End = %v, want 5", sel.Slice.End)
	}
	if sel.Slice.Step == nil || *sel.Slice.Step != 2 {
		t.Errorf("Step = %v, want 2", sel.Slice.Step)
	}
}

func TestParseSliceSelectorOmittedBounds(t *testing.T) {
	sel, err := ParseSelector("::-1")
	if err != nil {
		t.Fatalf("ParseSelector error = %v", err)
	}
	if sel.Slice.Start != nil || sel.Slice.End != nil {
		t.Errorf("expected omitted start/end, got %+v", sel.Slice)
	}
	if sel.Slice.Step == nil || *sel.Slice.Step != -1 {
		t.Errorf("Step = %v, want -1", sel.Slice.Step)
	}
}

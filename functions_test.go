package jsonpath

import (
	"testing"

	"github.com/jacoelho/jsonpath/internal/jsonvalue"
)

func TestIntrinsicLength(t *testing.T) {
	cases := []struct {
		name string
		v    jsonvalue.Value
		want *int
	}{
		{"string counts scalar values", jsonvalue.String("é"), intPtr(1)},
		{"array counts elements", jsonvalue.FromAny([]any{1, 2, 3}), intPtr(3)},
		{"object counts members", jsonvalue.FromAny(map[string]any{"a": 1, "b": 2}), intPtr(2)},
		{"number has no length", jsonvalue.FromAny(1), nil},
	}
	for _, c := range cases {
		res := intrinsicLength.Evaluate(nil, []FuncArg{{Kind: TypeValue, Value: &c.v}})
		if c.want == nil {
			if res.Value != nil {
				t.Errorf("%s: Value = %v, want nil", c.name, jsonvalue.ToAny(*res.Value))
			}
			continue
		}
		if res.Value == nil {
			t.Errorf("%s: Value = nil, want %d", c.name, *c.want)
			continue
		}
		if !jsonvalue.Equal(*res.Value, jsonvalue.FromAny(*c.want)) {
			t.Errorf("%s: Value = %v, want %d", c.name, jsonvalue.ToAny(*res.Value), *c.want)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestIntrinsicCountNoDeduplication(t *testing.T) {
	res := intrinsicCount.Evaluate(nil, []FuncArg{{Kind: TypeNodes, Nodes: Nodelist{jsonvalue.FromAny(1), jsonvalue.FromAny(1)}}})
	if !jsonvalue.Equal(*res.Value, jsonvalue.FromAny(2)) {
		t.Errorf("count of duplicate nodes = %v, want 2", jsonvalue.ToAny(*res.Value))
	}
}

func TestIntrinsicValueCollapsesSingleNode(t *testing.T) {
	v := jsonvalue.FromAny("solo")
	res := intrinsicValue.Evaluate(nil, []FuncArg{{Kind: TypeNodes, Nodes: Nodelist{v}}})
	if res.Value == nil || !jsonvalue.Equal(*res.Value, v) {
		t.Errorf("value() = %v, want %v", res.Value, v)
	}

	res = intrinsicValue.Evaluate(nil, []FuncArg{{Kind: TypeNodes, Nodes: Nodelist{v, v}}})
	if res.Value != nil {
		t.Errorf("value() of a 2-element nodelist should be Nothing, got %v", jsonvalue.ToAny(*res.Value))
	}
}

func TestIntrinsicMatchAndSearch(t *testing.T) {
	subject := jsonvalue.String("abc123")
	wholePattern := jsonvalue.String("[a-z]+[0-9]+")
	partialPattern := jsonvalue.String("[0-9]+")

	matchRes := intrinsicMatch.Evaluate(nil, []FuncArg{{Value: &subject}, {Value: &wholePattern}})
	if !matchRes.Logical {
		t.Error("match() of the whole string against its own shape should be true")
	}

	notWhole := jsonvalue.String("[0-9]+")
	matchRes = intrinsicMatch.Evaluate(nil, []FuncArg{{Value: &subject}, {Value: &notWhole}})
	if matchRes.Logical {
		t.Error("match() should require the whole string, not a substring")
	}

	searchRes := intrinsicSearch.Evaluate(nil, []FuncArg{{Value: &subject}, {Value: &partialPattern}})
	if !searchRes.Logical {
		t.Error("search() should find the digits substring")
	}
}

func TestIntrinsicMatchFalseOnNonStringArgs(t *testing.T) {
	n := jsonvalue.FromAny(1)
	pattern := jsonvalue.String("1")
	res := intrinsicMatch.Evaluate(nil, []FuncArg{{Value: &n}, {Value: &pattern}})
	if res.Logical {
		t.Error("match() on a non-string subject should be false, not an error")
	}
}

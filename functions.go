package jsonpath

import (
	"github.com/jacoelho/jsonpath/internal/iregexp"
	"github.com/jacoelho/jsonpath/internal/jsonvalue"
)

// DeclaredType is one of the three static result kinds the parser's
// well-typedness checks and the evaluator's function dispatch use.
type DeclaredType uint8

const (
	TypeValue DeclaredType = iota
	TypeLogical
	TypeNodes
)

// FuncArg is one already-evaluated argument passed to a FunctionExtension.
// Only the field matching Kind is meaningful: Value (nil means Nothing)
// for TypeValue, Logical for TypeLogical, Nodes for TypeNodes.
type FuncArg struct {
	Kind    DeclaredType
	Value   *jsonvalue.Value
	Logical bool
	Nodes   Nodelist
}

// FuncResult is the result of calling a FunctionExtension, tagged the same
// way as FuncArg.
type FuncResult struct {
	Kind    DeclaredType
	Value   *jsonvalue.Value
	Logical bool
	Nodes   Nodelist
}

// valueResult and logicalResult build a FuncResult of the matching kind;
// small helpers so intrinsic implementations read as one line each.
func valueResult(v *jsonvalue.Value) FuncResult { return FuncResult{Kind: TypeValue, Value: v} }
func logicalResult(b bool) FuncResult           { return FuncResult{Kind: TypeLogical, Logical: b} }

// FunctionExtension is a named function callable from filter expressions.
// Its Evaluate implementation must return a FuncResult whose Kind matches
// ResultType; the parser guarantees Args are evaluated according to
// ParameterTypes before Evaluate is called.
type FunctionExtension struct {
	Name           string
	ParameterTypes []DeclaredType
	ResultType     DeclaredType
	Evaluate       func(ctx *QueryContext, args []FuncArg) FuncResult
}

func numberValue(n int) jsonvalue.Value {
	return jsonvalue.FromAny(n)
}

var intrinsicLength = &FunctionExtension{
	Name:           "length",
	ParameterTypes: []DeclaredType{TypeValue},
	ResultType:     TypeValue,
	Evaluate: func(_ *QueryContext, args []FuncArg) FuncResult {
		v := args[0].Value
		if v == nil {
			return valueResult(nil)
		}
		switch {
		case jsonvalue.IsString(*v):
			n := numberValue(jsonvalue.UnicodeLength(v.Str()))
			return valueResult(&n)
		case jsonvalue.IsArray(*v), jsonvalue.IsObject(*v):
			n := numberValue(jsonvalue.Len(*v))
			return valueResult(&n)
		default:
			return valueResult(nil)
		}
	},
}

var intrinsicCount = &FunctionExtension{
	Name:           "count",
	ParameterTypes: []DeclaredType{TypeNodes},
	ResultType:     TypeValue,
	Evaluate: func(_ *QueryContext, args []FuncArg) FuncResult {
		n := numberValue(len(args[0].Nodes))
		return valueResult(&n)
	},
}

var intrinsicValue = &FunctionExtension{
	Name:           "value",
	ParameterTypes: []DeclaredType{TypeNodes},
	ResultType:     TypeValue,
	Evaluate: func(_ *QueryContext, args []FuncArg) FuncResult {
		nodes := args[0].Nodes
		if len(nodes) != 1 {
			return valueResult(nil)
		}
		v := nodes[0]
		return valueResult(&v)
	},
}

var intrinsicMatch = &FunctionExtension{
	Name:           "match",
	ParameterTypes: []DeclaredType{TypeValue, TypeValue},
	ResultType:     TypeLogical,
	Evaluate: func(_ *QueryContext, args []FuncArg) FuncResult {
		subject, pattern, ok := stringArgs(args)
		if !ok {
			return logicalResult(false)
		}
		re, err := iregexp.Compile(pattern)
		if err != nil {
			return logicalResult(false)
		}
		return logicalResult(re.MatchString(subject))
	},
}

var intrinsicSearch = &FunctionExtension{
	Name:           "search",
	ParameterTypes: []DeclaredType{TypeValue, TypeValue},
	ResultType:     TypeLogical,
	Evaluate: func(_ *QueryContext, args []FuncArg) FuncResult {
		subject, pattern, ok := stringArgs(args)
		if !ok {
			return logicalResult(false)
		}
		re, err := iregexp.Compile(pattern)
		if err != nil {
			return logicalResult(false)
		}
		return logicalResult(re.SearchString(subject))
	},
}

// stringArgs extracts the two string operands match()/search() need,
// reporting ok=false (=> false per spec) if either argument is Nothing or
// not a JSON string.
func stringArgs(args []FuncArg) (subject, pattern string, ok bool) {
	sv, pv := args[0].Value, args[1].Value
	if sv == nil || pv == nil || !jsonvalue.IsString(*sv) || !jsonvalue.IsString(*pv) {
		return "", "", false
	}
	return sv.Str(), pv.Str(), true
}

// IntrinsicFunctions returns a fresh map of the five function extensions
// RFC 9535 requires to always be available: length, count, match, search,
// value.
func IntrinsicFunctions() map[string]*FunctionExtension {
	return map[string]*FunctionExtension{
		intrinsicLength.Name: intrinsicLength,
		intrinsicCount.Name:  intrinsicCount,
		intrinsicMatch.Name:  intrinsicMatch,
		intrinsicSearch.Name: intrinsicSearch,
		intrinsicValue.Name:  intrinsicValue,
	}
}

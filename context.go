package jsonpath

import (
	"github.com/jacoelho/jsonpath/internal/jsonvalue"
	"github.com/jacoelho/jsonpath/internal/stack"
)

// QueryScope distinguishes the position the parser is currently parsing a
// test-expression in: the body of a filter (Expression), one argument of a
// function call (Argument), or neither.
type QueryScope uint8

const (
	ScopeNone QueryScope = iota
	ScopeExpression
	ScopeArgument
)

// QueryContext carries the state an evaluation (and the parser's type
// checker) needs across recursive calls: the registered function
// extensions and the value currently bound to '$'. After construction,
// queryArgument is pushed and popped around nested '$' sub-queries and
// queryScope around each filter body and Logical function argument the
// parser reads — never mutated any other way — so a single QueryContext
// must not be shared across concurrent evaluations.
type QueryContext struct {
	FunctionExtensions map[string]*FunctionExtension
	QueryArgument      jsonvalue.Value

	queryScope QueryScope

	rootFrames  *stack.Stack[jsonvalue.Value]
	scopeFrames *stack.Stack[QueryScope]
}

// Option configures a QueryContext at construction.
type Option func(*QueryContext)

// WithFunctionExtensions layers additional function extensions over the
// intrinsics, merged by name. Accepts either []*FunctionExtension or
// map[string]*FunctionExtension.
func WithFunctionExtensions(extensions any) Option {
	return func(ctx *QueryContext) {
		switch v := extensions.(type) {
		case []*FunctionExtension:
			for _, ext := range v {
				ctx.FunctionExtensions[ext.Name] = ext
			}
		case map[string]*FunctionExtension:
			for name, ext := range v {
				ctx.FunctionExtensions[name] = ext
			}
		}
	}
}

// WithQueryArgument overrides the root used for embedded '$' sub-queries.
// Without this option the evaluation root itself is used.
func WithQueryArgument(root jsonvalue.Value) Option {
	return func(ctx *QueryContext) {
		ctx.QueryArgument = root
	}
}

// CreateQueryContext builds a fresh QueryContext rooted at root, seeded
// with the five intrinsic function extensions and layered with opts.
func CreateQueryContext(root jsonvalue.Value, opts ...Option) *QueryContext {
	ctx := &QueryContext{
		FunctionExtensions: IntrinsicFunctions(),
		QueryArgument:      root,
		rootFrames:         stack.New[jsonvalue.Value](),
		scopeFrames:        stack.New[QueryScope](),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// CoerceQueryContext adapts an optional, possibly partially-built
// QueryContext for use: a nil ctx yields a fresh CreateQueryContext
// result; a non-nil ctx has its registry/frame stacks defaulted if unset
// and root rebound to root, then has opts applied.
func CoerceQueryContext(ctx *QueryContext, root jsonvalue.Value, opts ...Option) *QueryContext {
	if ctx == nil {
		return CreateQueryContext(root, opts...)
	}
	if ctx.FunctionExtensions == nil {
		ctx.FunctionExtensions = IntrinsicFunctions()
	}
	if ctx.rootFrames == nil {
		ctx.rootFrames = stack.New[jsonvalue.Value]()
	}
	if ctx.scopeFrames == nil {
		ctx.scopeFrames = stack.New[QueryScope]()
	}
	ctx.QueryArgument = root
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// pushRoot rebinds '$' to root for the duration of the caller's scope; the
// caller must defer ctx.popRoot().
func (ctx *QueryContext) pushRoot(root jsonvalue.Value) {
	ctx.rootFrames.Push(ctx.QueryArgument)
	ctx.QueryArgument = root
}

// popRoot restores the '$' binding saved by the matching pushRoot.
func (ctx *QueryContext) popRoot() {
	prev, ok := ctx.rootFrames.Pop()
	if ok {
		ctx.QueryArgument = prev
	}
}

// pushScope enters a new parser scope; the caller must defer
// ctx.popScope().
func (ctx *QueryContext) pushScope(scope QueryScope) {
	ctx.scopeFrames.Push(ctx.queryScope)
	ctx.queryScope = scope
}

// popScope restores the parser scope saved by the matching pushScope.
func (ctx *QueryContext) popScope() {
	prev, ok := ctx.scopeFrames.Pop()
	if ok {
		ctx.queryScope = prev
	}
}

// Package jsonpath implements RFC 9535 JSONPath: parsing a query string
// into an AST, serializing an AST back to canonical syntax, and evaluating
// an AST against a JSON root to produce an ordered, duplicate-preserving
// nodelist.
//
// The package does not parse JSON itself; internal/jsonvalue supplies the
// ordered value model Decode builds from an io.Reader, and is the JSON
// primitive collaborator (child lookup, deep equality, tri-state ordering)
// the evaluator consumes.
//
//	q, err := jsonpath.ParseQuery("$.store.book[?@.price<10].title")
//	root, err := jsonvalue.Decode(r)
//	nodes, err := jsonpath.EvaluateQuery(q, root)
package jsonpath

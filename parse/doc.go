// Package parse builds IR node trees from JSON text.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
// The parser consumes the whole token stream of a single top-level
// value; the first structural violation aborts the parse.
//
// # Related Packages
//
//   - github.com/minoritea/jsonparser/ir - IR representation
//   - github.com/minoritea/jsonparser/encode - Encode IR to text
//   - github.com/minoritea/jsonparser/token - Tokenization
package parse

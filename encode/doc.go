// Package encode renders IR nodes as indented JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromNumber("30"),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.Indent(4))
//	err := encode.Encode(node, w, encode.Compact(true))
//
// # Related Packages
//
//   - github.com/minoritea/jsonparser/ir - IR representation
//   - github.com/minoritea/jsonparser/parse - Parse text to IR
package encode

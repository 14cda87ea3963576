// Package ir provides the tree representation for parsed JSON documents.
//
// # Node Structure
//
// A document is a tree of [Node] values.  The Type field selects the
// variant, and the payload fields hold the data for that variant; the
// tree works as a recursive tagged union.
//
//   - TopType: the document root, owning at most one value
//   - ObjectType: an ordered list of FieldType children
//   - FieldType: a decoded key plus at most one value
//   - ArrayType: an ordered list of values
//   - StringType: decoded text
//   - NumberType: the raw literal text, never converted to a numeric type
//   - BoolType, NullType: leaves
//
// Every non-root node holds a non-owning back-reference to its parent
// (Parent, ParentIndex), set when the child is attached.  Back-references
// are navigation aids only; the tree is owned from the root down.
//
// All child attachment funnels through [Node.AddChild], which enforces
// which variants may live under which parents.  TopType and FieldType
// reject second values, and ObjectType accepts only FieldType children.
//
// # Creating Nodes
//
// Use constructor functions to create nodes programmatically:
//
//	node := ir.FromString("hello")
//	num := ir.FromNumber("42")
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//
// # Thread Safety
//
// Node trees are not thread-safe.  Distinct trees may be used from
// distinct goroutines without synchronization.
package ir

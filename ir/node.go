package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Node is one element of a parsed document tree.  See the package
// documentation for the variant layout.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Fields holds the FieldType children of an ObjectType node.
	// Values holds array items, or the single value of a TopType or
	// FieldType node.
	Fields []*Node
	Values []*Node

	Key    string // FieldType: the decoded object key
	String string // StringType: the decoded text
	Number string // NumberType: the raw literal text
	Bool   bool

	// Separator bookkeeping, maintained by the tree builder while the
	// node is open.
	Commas   int  // ObjectType, ArrayType: separators consumed so far
	HasColon bool // FieldType: a ':' was consumed
}

// AddChild attaches c under y, enforcing variant compatibility, and
// establishes c's back-reference.  A child is attached to exactly one
// parent and never reassigned.
func (y *Node) AddChild(c *Node) error {
	switch y.Type {
	case TopType:
		if len(y.Values) > 0 {
			return ErrTopValue
		}
		if !c.Type.IsValue() {
			return fmt.Errorf("%w: %s under %s", ErrChildKind, c.Type, y.Type)
		}
		c.Parent = y
		c.ParentIndex = 0
		y.Values = append(y.Values, c)
	case ObjectType:
		if c.Type != FieldType {
			return fmt.Errorf("%w: %s under %s", ErrChildKind, c.Type, y.Type)
		}
		c.Parent = y
		c.ParentIndex = len(y.Fields)
		y.Fields = append(y.Fields, c)
	case FieldType:
		if !c.Type.IsValue() {
			return fmt.Errorf("%w: %s under %s", ErrChildKind, c.Type, y.Type)
		}
		if len(y.Values) > 0 {
			return ErrFieldValue
		}
		c.Parent = y
		c.ParentIndex = 0
		y.Values = append(y.Values, c)
	case ArrayType:
		if !c.Type.IsValue() {
			return fmt.Errorf("%w: %s under %s", ErrChildKind, c.Type, y.Type)
		}
		c.Parent = y
		c.ParentIndex = len(y.Values)
		y.Values = append(y.Values, c)
	case StringType, NumberType, BoolType, NullType:
		return fmt.Errorf("%w: %s cannot own children", ErrChildKind, y.Type)
	default:
		return fmt.Errorf("%w: type %d", errInternal, int(y.Type))
	}
	return nil
}

// Value returns the single value of a TopType or FieldType node, or nil
// if none is attached yet.
func (y *Node) Value() *Node {
	switch y.Type {
	case TopType, FieldType:
		if len(y.Values) == 0 {
			return nil
		}
		return y.Values[0]
	default:
		return nil
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromNumber builds a number node from raw literal text.  The text is
// carried verbatim; it is never parsed into a numeric type.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	for _, key := range keys {
		v := m[key]
		field := &Node{
			Parent:      res,
			ParentIndex: len(res.Fields),
			Type:        FieldType,
			Key:         key,
			HasColon:    true,
		}
		v.Parent = field
		v.ParentIndex = 0
		field.Values = []*Node{v}
		res.Fields = append(res.Fields, field)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the given field order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		field := &Node{
			Parent:      res,
			ParentIndex: i,
			Type:        FieldType,
			Key:         kv.Key,
			HasColon:    true,
		}
		kv.Val.Parent = field
		kv.Val.ParentIndex = 0
		field.Values = []*Node{kv.Val}
		res.Fields[i] = field
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// Get returns the value of the named field of an object node, or nil.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for _, f := range y.Fields {
		if f.Key == field {
			return f.Value()
		}
	}
	return nil
}

// ToMap collapses an object node into a key → value map, dropping
// field order.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for _, f := range y.Fields {
		res[f.Key] = f.Value()
	}
	return res
}

// Visit walks the tree, calling f before and after each node's
// children.  Returning dive == false from the pre call skips the
// children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range y.children() {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) children() []*Node {
	if y.Type == ObjectType {
		return y.Fields
	}
	return y.Values
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Key = y.Key
	dst.String = y.String
	dst.Number = y.Number
	dst.Bool = y.Bool
	dst.Commas = y.Commas
	dst.HasColon = y.HasColon
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dstI := &Node{}
			f.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			dst.Fields[i] = dstI
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dstI := &Node{}
			v.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			dst.Values[i] = dstI
		}
	}
	return dst
}

package ir

type Type int

const (
	TopType Type = iota
	ObjectType
	FieldType
	ArrayType
	StringType
	NumberType
	BoolType
	NullType
)

func (t Type) String() string {
	switch t {
	case TopType:
		return "top"
	case ObjectType:
		return "object"
	case FieldType:
		return "field"
	case ArrayType:
		return "array"
	case StringType:
		return "string"
	case NumberType:
		return "number"
	case BoolType:
		return "bool"
	case NullType:
		return "null"
	default:
		return "<unknown>"
	}
}

// Types returns all node types.
func Types() []Type {
	return []Type{
		TopType,
		ObjectType,
		FieldType,
		ArrayType,
		StringType,
		NumberType,
		BoolType,
		NullType,
	}
}

// IsValue reports whether the type can stand as a JSON value, as
// opposed to the bookkeeping TopType and FieldType variants.
func (t Type) IsValue() bool {
	switch t {
	case TopType, FieldType:
		return false
	default:
		return true
	}
}

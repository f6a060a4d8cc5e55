// Package literal reads the structured block embedded in VeeCAD library
// files into a language-neutral tree of Values.
package literal

// Kind identifies the variant held by a Value
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of the nested structure. Only the fields matching Kind
// are meaningful.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
	Items  []Value // Array elements in order
	Fields []Field // Object members in source order
}

// Field is one member of an Object
type Field struct {
	Key   string
	Value Value
}

// Get returns the member stored under key. When a key repeats, the last
// occurrence wins.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != Object {
		return Value{}, false
	}
	for i := len(v.Fields) - 1; i >= 0; i-- {
		if v.Fields[i].Key == key {
			return v.Fields[i].Value, true
		}
	}
	return Value{}, false
}

// AsString returns the string payload if v is a String
func (v Value) AsString() (string, bool) {
	if v.Kind != String {
		return "", false
	}
	return v.Str, true
}

// Walk calls fn for every Object member at any depth, parents before
// children. Array elements are descended into but not reported.
func (v Value) Walk(fn func(key string, value Value)) {
	switch v.Kind {
	case Object:
		for _, f := range v.Fields {
			fn(f.Key, f.Value)
			f.Value.Walk(fn)
		}
	case Array:
		for _, item := range v.Items {
			item.Walk(fn)
		}
	}
}

// CollectStrings returns every string value stored under a member named
// field, regardless of nesting depth, in traversal order.
func (v Value) CollectStrings(field string) []string {
	var out []string
	v.Walk(func(key string, value Value) {
		if key != field {
			return
		}
		if s, ok := value.AsString(); ok {
			out = append(out, s)
		}
	})
	return out
}

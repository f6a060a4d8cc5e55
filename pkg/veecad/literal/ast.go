package literal

// document is the parse tree for one structured block.
// Example: {"Outlines": [{"Name": "DIP8"}]}
type document struct {
	Root *node `@@`
}

// node is any value in the block
type node struct {
	Object *objectNode `  @@`
	Array  *arrayNode  `| @@`
	String *string     `| @String`
	Number *float64    `| @Number`
	True   bool        `| @"true"`
	False  bool        `| @"false"`
	Null   bool        `| @"null"`
}

// objectNode is a brace-delimited list of members
type objectNode struct {
	Members []*memberNode `LBrace ( @@ ( Comma @@ )* )? RBrace`
}

type memberNode struct {
	Key   string `@String Colon`
	Value *node  `@@`
}

// arrayNode is a bracket-delimited list of values
type arrayNode struct {
	Items []*node `LBracket ( @@ ( Comma @@ )* )? RBracket`
}

// value converts the parse tree into a Value.
func (n *node) value() Value {
	switch {
	case n == nil:
		return Value{Kind: Null}
	case n.Object != nil:
		fields := make([]Field, 0, len(n.Object.Members))
		for _, m := range n.Object.Members {
			fields = append(fields, Field{Key: m.Key, Value: m.Value.value()})
		}
		return Value{Kind: Object, Fields: fields}
	case n.Array != nil:
		items := make([]Value, 0, len(n.Array.Items))
		for _, item := range n.Array.Items {
			items = append(items, item.value())
		}
		return Value{Kind: Array, Items: items}
	case n.String != nil:
		return Value{Kind: String, Str: *n.String}
	case n.Number != nil:
		return Value{Kind: Number, Num: *n.Number}
	case n.True:
		return Value{Kind: Bool, Bool: true}
	case n.False:
		return Value{Kind: Bool, Bool: false}
	default:
		return Value{Kind: Null}
	}
}

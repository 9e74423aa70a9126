// Package schema describes the shape of structured generation output. The same
// node tree is rendered for every transport, so prompt composition and the
// generation client never pass ad hoc nested maps around.
package schema

type Kind int

const (
	KindObject Kind = iota + 1
	KindArray
	KindString
	KindEnum
	KindNumber
	KindInteger
	KindNullable
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString, KindEnum:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindNullable:
		return "nullable"
	default:
		return "unknown"
	}
}

// Node is one tagged variant of the schema tree. Only the fields relevant to
// Kind are populated.
type Node struct {
	Kind        Kind
	Description string
	Fields      []Field  // KindObject, in declaration order
	Items       *Node    // KindArray
	Enum        []string // KindEnum
	Inner       *Node    // KindNullable
}

type Field struct {
	Name     string
	Node     *Node
	Required bool
}

func Object(fields ...Field) *Node { return &Node{Kind: KindObject, Fields: fields} }
func Array(items *Node) *Node      { return &Node{Kind: KindArray, Items: items} }
func String() *Node                { return &Node{Kind: KindString} }
func Number() *Node                { return &Node{Kind: KindNumber} }
func Integer() *Node               { return &Node{Kind: KindInteger} }

func StringEnum(values ...string) *Node {
	return &Node{Kind: KindEnum, Enum: append([]string(nil), values...)}
}

// Nullable wraps inner so the value may also be null.
func Nullable(inner *Node) *Node { return &Node{Kind: KindNullable, Inner: inner} }

func Required(name string, n *Node) Field { return Field{Name: name, Node: n, Required: true} }
func Optional(name string, n *Node) Field { return Field{Name: name, Node: n} }

// Describe sets the description and returns n for chaining.
func (n *Node) Describe(desc string) *Node {
	n.Description = desc
	return n
}

// Unwrap strips any nullable wrappers and reports whether one was present.
func (n *Node) Unwrap() (*Node, bool) {
	nullable := false
	for n != nil && n.Kind == KindNullable {
		nullable = true
		n = n.Inner
	}
	return n, nullable
}

func (n *Node) RequiredNames() []string {
	var out []string
	for _, f := range n.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

func (n *Node) FieldNames() []string {
	out := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		out = append(out, f.Name)
	}
	return out
}

// JSONSchema renders the tree as a JSON Schema document.
func (n *Node) JSONSchema() map[string]any {
	inner, nullable := n.Unwrap()
	if inner == nil {
		return map[string]any{"type": "null"}
	}

	out := map[string]any{}
	typ := inner.Kind.String()
	if nullable {
		out["type"] = []any{typ, "null"}
	} else {
		out["type"] = typ
	}
	if inner.Description != "" {
		out["description"] = inner.Description
	} else if n.Description != "" {
		out["description"] = n.Description
	}

	switch inner.Kind {
	case KindObject:
		props := make(map[string]any, len(inner.Fields))
		for _, f := range inner.Fields {
			props[f.Name] = f.Node.JSONSchema()
		}
		out["properties"] = props
		if req := inner.RequiredNames(); len(req) > 0 {
			out["required"] = req
		}
	case KindArray:
		if inner.Items != nil {
			out["items"] = inner.Items.JSONSchema()
		}
	case KindEnum:
		vals := make([]any, 0, len(inner.Enum)+1)
		for _, v := range inner.Enum {
			vals = append(vals, v)
		}
		if nullable {
			vals = append(vals, nil)
		}
		out["enum"] = vals
	}
	return out
}

// Package schema builds component trees from declarative descriptions.
//
// A description is a tree of Nodes: a type name, an optional id, a property
// map, bound event names and ordered children. Documents can be written as
// JSON (comments allowed), YAML or CBOR:
//
//	{
//	  "version": "1.0.0",
//	  "root": {
//	    "type": "VStack",
//	    "props": {"spacing": 8, "padding": 12},
//	    "children": [
//	      {"type": "Label", "props": {"text": "Hello"}},
//	      {"type": "Button", "id": "ok", "props": {"label": "OK"}, "events": ["on_click"]}
//	    ]
//	  }
//	}
//
// Build turns a tree into components through a Registry. Type names the
// registry does not know become a visible placeholder label and a
// Diagnostic; building never fails.
package schema

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Node describes one component.
type Node struct {
	// Type is the registered type name, such as "VStack" or "Button".
	// Decoders also accept it under the key "type_name".
	Type     string         `json:"type" yaml:"type" cbor:"type"`
	ID       string         `json:"id,omitempty" yaml:"id,omitempty" cbor:"id,omitempty"`
	Props    map[string]any `json:"props,omitempty" yaml:"props,omitempty" cbor:"props,omitempty"`
	Events   []string       `json:"events,omitempty" yaml:"events,omitempty" cbor:"events,omitempty"`
	Children []*Node        `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
}

// NewNode returns a Node of the given type.
func NewNode(typeName string) *Node {
	return &Node{Type: typeName}
}

// WithID sets the id and returns n.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithProp sets a property and returns n.
func (n *Node) WithProp(key string, value any) *Node {
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props[key] = value
	return n
}

// WithEvent binds an event name and returns n.
func (n *Node) WithEvent(event string) *Node {
	n.Events = append(n.Events, event)
	return n
}

// WithChildren appends children and returns n.
func (n *Node) WithChildren(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}

// wireNode is the decoded form of a Node, accepting both type keys.
type wireNode struct {
	Type     string         `json:"type" yaml:"type" cbor:"type"`
	TypeName string         `json:"type_name" yaml:"type_name" cbor:"type_name"`
	ID       string         `json:"id" yaml:"id" cbor:"id"`
	Props    map[string]any `json:"props" yaml:"props" cbor:"props"`
	Events   []string       `json:"events" yaml:"events" cbor:"events"`
	Children []*Node        `json:"children" yaml:"children" cbor:"children"`
}

func (w *wireNode) node() Node {
	typeName := w.Type
	if typeName == "" {
		typeName = w.TypeName
	}
	return Node{
		Type:     typeName,
		ID:       w.ID,
		Props:    w.Props,
		Events:   w.Events,
		Children: w.Children,
	}
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = w.node()
	return nil
}

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var w wireNode
	if err := value.Decode(&w); err != nil {
		return err
	}
	*n = w.node()
	return nil
}

func (n *Node) UnmarshalCBOR(data []byte) error {
	var w wireNode
	if err := cborDecMode.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = w.node()
	return nil
}

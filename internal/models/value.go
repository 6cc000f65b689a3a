package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// Value is a tagged variant for frontmatter property values. It preserves
// the YAML scalar type through a read/modify/write cycle, so a boolean set
// by one call reads back as a boolean, not a string.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	List  []Value
	Map   map[string]Value
}

// UnmarshalYAML decodes any scalar, sequence, or mapping node into the
// matching variant. Unknown scalar tags fall back to the string form.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			*v = Value{Kind: KindNull}
		case "!!int":
			n, err := strconv.ParseInt(node.Value, 10, 64)
			if err != nil {
				return fmt.Errorf("parse int %q: %w", node.Value, err)
			}
			*v = Value{Kind: KindInt, Int: n}
		case "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return fmt.Errorf("parse float %q: %w", node.Value, err)
			}
			*v = Value{Kind: KindFloat, Float: f}
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return fmt.Errorf("parse bool %q: %w", node.Value, err)
			}
			*v = Value{Kind: KindBool, Bool: b}
		default:
			*v = Value{Kind: KindString, Str: node.Value}
		}
	case yaml.SequenceNode:
		list := make([]Value, len(node.Content))
		for i, c := range node.Content {
			if err := c.Decode(&list[i]); err != nil {
				return err
			}
		}
		*v = Value{Kind: KindList, List: list}
	case yaml.MappingNode:
		m := make(map[string]Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var elem Value
			if err := node.Content[i+1].Decode(&elem); err != nil {
				return err
			}
			m[node.Content[i].Value] = elem
		}
		*v = Value{Kind: KindMap, Map: m}
	case yaml.AliasNode:
		return node.Alias.Decode(v)
	default:
		return fmt.Errorf("unsupported YAML node kind %d", node.Kind)
	}
	return nil
}

// MarshalYAML emits the native representation of the variant.
func (v Value) MarshalYAML() (any, error) {
	return v.native(), nil
}

// MarshalJSON emits the native representation of the variant.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

func (v Value) native() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindList:
		list := make([]any, len(v.List))
		for i, e := range v.List {
			list[i] = e.native()
		}
		return list
	case KindMap:
		m := make(map[string]any, len(v.Map))
		for k, e := range v.Map {
			m[k] = e.native()
		}
		return m
	default:
		return nil
	}
}

// String renders the scalar form of the value, matching how frontmatter
// tag entries are stringified.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return ""
	default:
		return fmt.Sprintf("%v", v.native())
	}
}

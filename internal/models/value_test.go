package models

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValueUnmarshalScalars(t *testing.T) {
	var m map[string]Value
	src := "s: hello\nn: 42\nf: 2.5\nb: true\nz: null\n"
	if err := yaml.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["s"].Kind != KindString || m["s"].Str != "hello" {
		t.Errorf("s = %+v", m["s"])
	}
	if m["n"].Kind != KindInt || m["n"].Int != 42 {
		t.Errorf("n = %+v", m["n"])
	}
	if m["f"].Kind != KindFloat || m["f"].Float != 2.5 {
		t.Errorf("f = %+v", m["f"])
	}
	if m["b"].Kind != KindBool || !m["b"].Bool {
		t.Errorf("b = %+v", m["b"])
	}
	if m["z"].Kind != KindNull {
		t.Errorf("z = %+v", m["z"])
	}
}

func TestValueUnmarshalListAndMap(t *testing.T) {
	var m map[string]Value
	src := "tags:\n  - a\n  - b\nnested:\n  inner: 1\n"
	if err := yaml.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tags := m["tags"]
	if tags.Kind != KindList || len(tags.List) != 2 || tags.List[0].Str != "a" {
		t.Errorf("tags = %+v", tags)
	}
	nested := m["nested"]
	if nested.Kind != KindMap || nested.Map["inner"].Int != 1 {
		t.Errorf("nested = %+v", nested)
	}
}

func TestValueYAMLRoundTrip(t *testing.T) {
	src := "b: true\nlist:\n  - 1\n  - 2\nn: 7\n"
	var m map[string]Value
	if err := yaml.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]Value
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("reunmarshal: %v", err)
	}
	if back["b"].Kind != KindBool || !back["b"].Bool {
		t.Errorf("b = %+v, bool lost its type", back["b"])
	}
	if back["n"].Kind != KindInt || back["n"].Int != 7 {
		t.Errorf("n = %+v", back["n"])
	}
	if back["list"].Kind != KindList || back["list"].List[1].Int != 2 {
		t.Errorf("list = %+v", back["list"])
	}
}

func TestValueMarshalJSON(t *testing.T) {
	v := Value{Kind: KindList, List: []Value{
		{Kind: KindString, Str: "a"},
		{Kind: KindInt, Int: 3},
		{Kind: KindBool, Bool: false},
	}}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["a",3,false]` {
		t.Errorf("json = %s", out)
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Value{Kind: KindString, Str: "x"}, "x"},
		{Value{Kind: KindInt, Int: 10}, "10"},
		{Value{Kind: KindBool, Bool: true}, "true"},
		{Value{Kind: KindNull}, ""},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

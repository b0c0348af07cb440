package fields

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]Params{
		"":                        {},
		"-":                       {Ignore: true},
		"optional":                {Optional: true},
		"omitzero":                {OmitZero: true},
		"explicit,tag:5":          {Explicit: true, HasTag: true, Number: 5, Class: 2},
		"application,tag:3":       {HasTag: true, Number: 3, Class: 1},
		"private,tag:1":           {HasTag: true, Number: 1, Class: 3},
		"set":                     {Set: true},
		"identifier:printable":    {Identifier: "printable"},
		"nullable":                {Nullable: true},
	}
	for tag, want := range tests {
		t.Run(tag, func(t *testing.T) {
			if got := Parse(tag); got != want {
				t.Errorf("Parse(%q) = %+v, want %+v", tag, got, want)
			}
		})
	}
}

func TestIsExtensible(t *testing.T) {
	type notExtensible struct{}
	if IsExtensible(reflect.TypeOf(notExtensible{})) {
		t.Error("IsExtensible() = true for an unrelated empty struct")
	}
	type Extensible struct{}
	if !IsExtensible(reflect.TypeOf(Extensible{})) {
		t.Error("IsExtensible() = false for a type named Extensible with no fields")
	}
}

func TestFieldsFlattensAnonymousStructs(t *testing.T) {
	type inner struct {
		B int
	}
	type outer struct {
		A int
		inner
	}
	v := reflect.ValueOf(outer{A: 1, inner: inner{B: 2}})
	var names []string
	for fv := range Fields(v) {
		names = append(names, fv.Type().Name())
	}
	if len(names) != 2 {
		t.Fatalf("Fields() yielded %d fields, want 2", len(names))
	}
}

func TestFieldsSkipsIgnoredAndUnexported(t *testing.T) {
	type s struct {
		A       int
		B       int `der:"-"`
		ignored int
	}
	v := reflect.ValueOf(s{A: 1, B: 2, ignored: 3})
	count := 0
	for range Fields(v) {
		count++
	}
	if count != 1 {
		t.Errorf("Fields() yielded %d fields, want 1", count)
	}
}

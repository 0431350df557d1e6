package ast

import "testing"

func TestTypeStringForms(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		want string
	}{
		{"none", &NoneType{}, ""},
		{"unreachable", &UnreachableType{}, "!"},
		{"named", &NamedType{Path: []string{"std", "Int"}}, "std::Int"},
		{"named-generic", &NamedType{Path: []string{"Deque"}, GenericsArgs: []Type{&NamedType{Path: []string{"Int"}}}}, "Deque::<Int>"},
		{"tuple", &TupleType{Items: []Type{&NamedType{Path: []string{"X"}}, &NamedType{Path: []string{"Y"}}}}, "(X, Y)"},
		{"array", &ArrayType{Item: &NamedType{Path: []string{"X"}}}, "[X]"},
		{"function", &FunctionType{Arguments: []Type{&NamedType{Path: []string{"X"}}}, Result: &NamedType{Path: []string{"Y"}}}, "(X)->Y"},
		{"struct", &AnonymousStructType{Members: []AnonymousStructMember{{Name: "a", Type: &NamedType{Path: []string{"X"}}}}}, "#{a: X}"},
		{"or", &OrType{Items: []Type{&NamedType{Path: []string{"X"}}, &NamedType{Path: []string{"Y"}}}}, "(X | Y)"},
	}
	for _, c := range cases {
		if got := c.t.String(); got != c.want {
			t.Errorf("%s: String() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestPatternStringForms(t *testing.T) {
	varPat := &VariablePattern{Name: "x"}
	if got := varPat.String(); got != "x" {
		t.Errorf("variable pattern = %q, want %q", got, "x")
	}

	tupPat := &TuplePattern{Items: []Pattern{&VariablePattern{Name: "a"}, &VariablePattern{Name: "b"}}}
	if got := tupPat.String(); got != "(a, b)" {
		t.Errorf("tuple pattern = %q, want %q", got, "(a, b)")
	}

	named := &StructPattern{
		Name:    StructName{Named: &NamedType{Path: []string{"Point"}}},
		Members: []StructPatternMember{{Name: "x", Pattern: &VariablePattern{Name: "x"}}},
	}
	if got := named.String(); got != "Point { x: x }" {
		t.Errorf("named struct pattern = %q, want %q", got, "Point { x: x }")
	}

	anon := &StructPattern{Members: []StructPatternMember{{Name: "x", Pattern: &VariablePattern{Name: "x"}}}}
	if got := anon.String(); got != "#{x: x}" {
		t.Errorf("anonymous struct pattern = %q, want %q", got, "#{x: x}")
	}
}

func TestImportPathStrings(t *testing.T) {
	single := &SinglePath{Segments: []string{"std", "io"}}
	if got := single.String(); got != "std::io" {
		t.Errorf("single path = %q, want %q", got, "std::io")
	}
	list := &PathList{Items: []ImportPath{single, &SinglePath{Segments: []string{"std", "array"}}}}
	if got := list.String(); got != "std::io, std::array" {
		t.Errorf("path list = %q, want %q", got, "std::io, std::array")
	}
}

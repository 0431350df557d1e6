// Package ast defines the surface-syntax nodes the semantic analysis core
// consumes from the parser: types, patterns, and the shape of a top-level
// item sequence. It intentionally does not model expressions or statement
// bodies beyond what the core inspects (import directives) -- the parser,
// name resolver, and HIR lowering pass own everything else.
package ast

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/orizon-hir/internal/position"
)

// Node is the base interface for all surface syntax nodes the core touches.
type Node interface {
	GetSpan() position.Span
	String() string
}

// Type represents all surface type nodes.
type Type interface {
	Node
	typeNode() // Marker method to distinguish types
}

// Pattern represents all surface pattern nodes (used by if-let bindings).
type Pattern interface {
	Node
	patternNode() // Marker method to distinguish patterns
}

// ===== Types =====

// NoneType is the absent type annotation; it converts to the empty tuple.
type NoneType struct {
	Span position.Span
}

func (t *NoneType) GetSpan() position.Span { return t.Span }
func (t *NoneType) String() string         { return "" }
func (t *NoneType) typeNode()              {}

// UnreachableType is the surface spelling of the bottom type ("!").
type UnreachableType struct {
	Span position.Span
}

func (t *UnreachableType) GetSpan() position.Span { return t.Span }
func (t *UnreachableType) String() string         { return "!" }
func (t *UnreachableType) typeNode()              {}

// NamedType is a nominal type reference, e.g. `std::collections::Deque<T>`.
type NamedType struct {
	Span         position.Span
	Path         []string
	GenericsArgs []Type
}

func (t *NamedType) GetSpan() position.Span { return t.Span }
func (t *NamedType) String() string {
	if len(t.GenericsArgs) == 0 {
		return strings.Join(t.Path, "::")
	}
	args := make([]string, len(t.GenericsArgs))
	for i, a := range t.GenericsArgs {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s::<%s>", strings.Join(t.Path, "::"), strings.Join(args, ", "))
}
func (t *NamedType) typeNode() {}

// TupleType is an ordered fixed-length heterogeneous sequence type.
type TupleType struct {
	Span  position.Span
	Items []Type
}

func (t *TupleType) GetSpan() position.Span { return t.Span }
func (t *TupleType) String() string {
	items := make([]string, len(t.Items))
	for i, it := range t.Items {
		items[i] = it.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(items, ", "))
}
func (t *TupleType) typeNode() {}

// ArrayType is a homogeneous variable-length sequence type.
type ArrayType struct {
	Span position.Span
	Item Type
}

func (t *ArrayType) GetSpan() position.Span { return t.Span }
func (t *ArrayType) String() string         { return fmt.Sprintf("[%s]", t.Item.String()) }
func (t *ArrayType) typeNode()              {}

// FunctionType is a callable's signature.
type FunctionType struct {
	Span      position.Span
	Arguments []Type
	Result    Type
}

func (t *FunctionType) GetSpan() position.Span { return t.Span }
func (t *FunctionType) String() string {
	args := make([]string, len(t.Arguments))
	for i, a := range t.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("(%s)->%s", strings.Join(args, ", "), t.Result.String())
}
func (t *FunctionType) typeNode() {}

// AnonymousStructMember is one `name: Type` entry of a surface struct shape.
// Members are kept in parse order; duplicate names are a conversion error,
// not a parse error.
type AnonymousStructMember struct {
	Name string
	Type Type
}

// AnonymousStructType is a structural record type.
type AnonymousStructType struct {
	Span    position.Span
	Members []AnonymousStructMember
}

func (t *AnonymousStructType) GetSpan() position.Span { return t.Span }
func (t *AnonymousStructType) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = fmt.Sprintf("%s: %s", m.Name, m.Type.String())
	}
	return fmt.Sprintf("#{%s}", strings.Join(parts, ", "))
}
func (t *AnonymousStructType) typeNode() {}

// OrType is a union of alternative types.
type OrType struct {
	Span  position.Span
	Items []Type
}

func (t *OrType) GetSpan() position.Span { return t.Span }
func (t *OrType) String() string {
	items := make([]string, len(t.Items))
	for i, it := range t.Items {
		items[i] = it.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(items, " | "))
}
func (t *OrType) typeNode() {}

// ===== Patterns =====

// VariablePattern binds the scrutinee to a fresh name without constraining
// its shape; it converts to HIRType Infer.
type VariablePattern struct {
	Span position.Span
	Name string
}

func (p *VariablePattern) GetSpan() position.Span { return p.Span }
func (p *VariablePattern) String() string         { return p.Name }
func (p *VariablePattern) patternNode()            {}

// TuplePattern destructures a tuple positionally.
type TuplePattern struct {
	Span  position.Span
	Items []Pattern
}

func (p *TuplePattern) GetSpan() position.Span { return p.Span }
func (p *TuplePattern) String() string {
	items := make([]string, len(p.Items))
	for i, it := range p.Items {
		items[i] = it.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(items, ", "))
}
func (p *TuplePattern) patternNode() {}

// StructPatternMember is one `name: pattern` entry of a struct pattern.
type StructPatternMember struct {
	Name    string
	Pattern Pattern
}

// StructName identifies which struct shape a StructPattern matches: a named
// struct definition, or none (an anonymous structural match).
type StructName struct {
	Named *NamedType // nil for an anonymous struct pattern
}

// StructPattern destructures a struct by field name, either against a named
// struct type or structurally (anonymous).
type StructPattern struct {
	Span    position.Span
	Name    StructName
	Members []StructPatternMember
}

func (p *StructPattern) GetSpan() position.Span { return p.Span }
func (p *StructPattern) String() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = fmt.Sprintf("%s: %s", m.Name, m.Pattern.String())
	}
	if p.Name.Named != nil {
		return fmt.Sprintf("%s { %s }", p.Name.Named.String(), strings.Join(parts, ", "))
	}
	return fmt.Sprintf("#{%s}", strings.Join(parts, ", "))
}
func (p *StructPattern) patternNode() {}

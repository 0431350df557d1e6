// Package hir defines the High-level Intermediate Representation for the
// semantic analysis core: the HIRType lattice and the flat, single-assignment
// statement/expression model produced by HIR lowering.
//
// HIRType is a closed recursive sum type. Composite variants are modeled as
// structs holding slices/maps of child HIRType values; there is no shared
// mutable state, so callers may freely share an HIRType value across
// goroutines as long as they do not mutate a cloned copy concurrently with
// reads of the original (see Normalize).
package hir

import (
	"fmt"
	"sort"
	"strings"
)

// HIRType is the base interface satisfied by every member of the type
// lattice. The marker method keeps the set closed to this package.
type HIRType interface {
	fmt.Stringer
	hirTypeNode()
}

// Infer is the type placeholder: it is compatible with every other type in
// both directions of IsA.
type Infer struct{}

func (Infer) hirTypeNode()  {}
func (Infer) String() string { return "$Infer" }

// Unreachable is the bottom type: code producing it does not return normally.
type Unreachable struct{}

func (Unreachable) hirTypeNode()  {}
func (Unreachable) String() string { return "!" }

// GenericsTypeArgument is a De Bruijn-style reference to the i-th generic
// parameter of the enclosing scope.
type GenericsTypeArgument struct {
	Index int
}

func (GenericsTypeArgument) hirTypeNode() {}
func (g GenericsTypeArgument) String() string { return fmt.Sprintf("$T%d", g.Index) }

// Named is a nominal type with an ordered path and generic arguments.
type Named struct {
	Path string // "::"-joined path components, kept pre-joined for cheap compare
	Args []HIRType
}

// NewNamed builds a Named type from separate path components.
func NewNamed(path []string, args []HIRType) Named {
	return Named{Path: strings.Join(path, "::"), Args: args}
}

func (Named) hirTypeNode() {}
func (n Named) String() string {
	if len(n.Args) == 0 {
		return n.Path
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s::<%s>", n.Path, strings.Join(parts, ", "))
}

// Tuple is an ordered, fixed-length, heterogeneous sequence. Width-subtyped:
// a longer tuple is a subtype of a shorter tuple with a compatible prefix.
type Tuple struct {
	Items []HIRType
}

func (Tuple) hirTypeNode() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// Array is a homogeneous variable-length sequence.
type Array struct {
	Elem HIRType
}

func (Array) hirTypeNode() {}
func (a Array) String() string { return fmt.Sprintf("[%s]", a.Elem.String()) }

// Function is a callable type. Arguments are contravariant, result covariant
// under IsA.
type Function struct {
	Args   []HIRType
	Result HIRType
}

func (Function) hirTypeNode() {}
func (f Function) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(%s)->%s", strings.Join(parts, ", "), f.Result.String())
}

// AnonymousStruct is a structural record keyed by field name. Members are
// stored unordered; every traversal whose output depends on order (String,
// Compare) sorts the keys first.
type AnonymousStruct struct {
	Members map[string]HIRType
}

func (AnonymousStruct) hirTypeNode() {}
func (s AnonymousStruct) String() string {
	keys := sortedKeys(s.Members)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, s.Members[k].String())
	}
	return fmt.Sprintf("#{%s}", strings.Join(parts, ", "))
}

func sortedKeys(m map[string]HIRType) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Or is a union of alternative types. A normalized Or has no nested Or, no
// duplicates, components sorted by the lattice's stable order, and (when it
// has two or more components) no Unreachable component.
type Or struct {
	Items []HIRType
}

func (Or) hirTypeNode() {}
func (o Or) String() string {
	parts := make([]string, len(o.Items))
	for i, it := range o.Items {
		parts[i] = it.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " | "))
}

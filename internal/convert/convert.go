// Package convert lowers surface syntax types and patterns to the HIRType
// lattice (internal/hir). Both conversions are pure and total except for the
// single explicit failure mode the core exposes: an anonymous-struct shape
// that repeats a member name, surfaced as errors.DuplicatedMember.
package convert

import (
	"github.com/orizon-lang/orizon-hir/internal/ast"
	"github.com/orizon-lang/orizon-hir/internal/errors"
	"github.com/orizon-lang/orizon-hir/internal/hir"
)

// Type lowers a surface type node to an HIRType. A nil or *ast.NoneType
// input converts to the empty tuple, matching the surface grammar's use of
// an absent annotation to mean "no value".
func Type(t ast.Type) (hir.HIRType, error) {
	switch v := t.(type) {
	case nil:
		return hir.Tuple{}, nil
	case *ast.NoneType:
		return hir.Tuple{}, nil
	case *ast.UnreachableType:
		return hir.Unreachable{}, nil
	case *ast.NamedType:
		args := make([]hir.HIRType, len(v.GenericsArgs))
		for i, a := range v.GenericsArgs {
			r, err := Type(a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return hir.NewNamed(v.Path, args), nil
	case *ast.TupleType:
		items := make([]hir.HIRType, len(v.Items))
		for i, it := range v.Items {
			r, err := Type(it)
			if err != nil {
				return nil, err
			}
			items[i] = r
		}
		return hir.Tuple{Items: items}, nil
	case *ast.ArrayType:
		elem, err := Type(v.Item)
		if err != nil {
			return nil, err
		}
		return hir.Array{Elem: elem}, nil
	case *ast.FunctionType:
		args := make([]hir.HIRType, len(v.Arguments))
		for i, a := range v.Arguments {
			r, err := Type(a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		res, err := Type(v.Result)
		if err != nil {
			return nil, err
		}
		return hir.Function{Args: args, Result: res}, nil
	case *ast.AnonymousStructType:
		members, err := structMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return hir.AnonymousStruct{Members: members}, nil
	case *ast.OrType:
		items := make([]hir.HIRType, len(v.Items))
		for i, it := range v.Items {
			r, err := Type(it)
			if err != nil {
				return nil, err
			}
			items[i] = r
		}
		return hir.Or{Items: items}, nil
	default:
		return hir.Infer{}, nil
	}
}

// Pattern lowers a surface if-let pattern to the HIRType it constrains the
// scrutinee to. A variable pattern imposes no constraint and converts to
// Infer; composite patterns recurse and carry the same DuplicatedMember
// failure mode as Type.
func Pattern(p ast.Pattern) (hir.HIRType, error) {
	switch v := p.(type) {
	case *ast.VariablePattern:
		return hir.Infer{}, nil
	case *ast.TuplePattern:
		items := make([]hir.HIRType, len(v.Items))
		for i, it := range v.Items {
			r, err := Pattern(it)
			if err != nil {
				return nil, err
			}
			items[i] = r
		}
		return hir.Tuple{Items: items}, nil
	case *ast.StructPattern:
		if v.Name.Named != nil {
			t, err := Type(v.Name.Named)
			if err != nil {
				return nil, err
			}
			return t, nil
		}
		members, err := patternStructMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return hir.AnonymousStruct{Members: members}, nil
	default:
		return hir.Infer{}, nil
	}
}

func structMembers(members []ast.AnonymousStructMember) (map[string]hir.HIRType, error) {
	out := make(map[string]hir.HIRType, len(members))
	for _, m := range members {
		if _, dup := out[m.Name]; dup {
			return nil, errors.DuplicatedMember(m.Name)
		}
		t, err := Type(m.Type)
		if err != nil {
			return nil, err
		}
		out[m.Name] = t
	}
	return out, nil
}

func patternStructMembers(members []ast.StructPatternMember) (map[string]hir.HIRType, error) {
	out := make(map[string]hir.HIRType, len(members))
	for _, m := range members {
		if _, dup := out[m.Name]; dup {
			return nil, errors.DuplicatedMember(m.Name)
		}
		t, err := Pattern(m.Pattern)
		if err != nil {
			return nil, err
		}
		out[m.Name] = t
	}
	return out, nil
}

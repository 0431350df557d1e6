package main

import (
	"github.com/orizon-lang/orizon-hir/internal/hir"
	"github.com/orizon-lang/orizon-hir/internal/position"
)

func intType() hir.HIRType  { return hir.NewNamed([]string{"Int"}, nil) }
func boolType() hir.HIRType { return hir.NewNamed([]string{"Bool"}, nil) }

func intrinsic(name string, args []hir.HIRType, result hir.HIRType) hir.Variable[hir.Resolved] {
	return hir.NamedVariable[hir.Resolved](
		position.Span{},
		nil,
		hir.Resolved{ID: name, Type: hir.Function{Args: args, Result: result}},
	)
}

func u(id int) hir.Variable[hir.Resolved] { return hir.UnnamedVariable[hir.Resolved](id) }

// sieveFixture is a miniature sieve-of-Eratosthenes-shaped program: a while
// loop (desugared to Loop + leading "if !cond { break; }") that marks
// composite entries of a boolean array using the _gt/_not/_mul/_set_item
// intrinsics.
func sieveFixture() []hir.Statement {
	notFn := intrinsic("_not", []hir.HIRType{boolType()}, boolType())
	gtFn := intrinsic("_gt", []hir.HIRType{intType(), intType()}, boolType())
	mulFn := intrinsic("_mul", []hir.HIRType{intType(), intType()}, intType())
	setItemFn := intrinsic("_set_item", []hir.HIRType{hir.Array{Elem: boolType()}, intType(), boolType()}, hir.Tuple{})

	loopBody := []hir.Statement{
		hir.Binding[hir.Resolved]{VariableID: 2, VariableType: boolType(), Expression: hir.CallFunctionExpr[hir.Resolved]{
			Function: gtFn, Arguments: []hir.Variable[hir.Resolved]{u(1), u(0)},
		}},
		hir.Binding[hir.Resolved]{VariableID: 3, VariableType: boolType(), Expression: hir.CallFunctionExpr[hir.Resolved]{
			Function: notFn, Arguments: []hir.Variable[hir.Resolved]{u(2)},
		}},
		hir.Binding[hir.Resolved]{VariableID: 4, VariableType: hir.Tuple{}, Expression: hir.IfExpr[hir.Resolved]{
			Condition: u(3),
			Then:      hir.Block[hir.Resolved]{Statements: []hir.Statement{hir.BreakStatement{}}, Result: u(0)},
			Other:     hir.Block[hir.Resolved]{Result: u(0)},
		}},
		hir.Binding[hir.Resolved]{VariableID: 5, VariableType: intType(), Expression: hir.CallFunctionExpr[hir.Resolved]{
			Function: mulFn, Arguments: []hir.Variable[hir.Resolved]{u(1), u(1)},
		}},
		hir.Binding[hir.Resolved]{VariableID: 6, VariableType: hir.Tuple{}, Expression: hir.CallFunctionExpr[hir.Resolved]{
			Function: setItemFn, Arguments: []hir.Variable[hir.Resolved]{u(0), u(5), u(3)},
		}},
	}

	return []hir.Statement{
		hir.Binding[hir.Resolved]{VariableID: 1, VariableType: intType(), Expression: hir.ImmediateExpr{Value: hir.Immediate{Text: "2"}}},
		hir.Binding[hir.Resolved]{VariableID: 7, VariableType: hir.Tuple{}, Expression: hir.LoopExpr{Body: loopBody}},
		hir.ReturnStatement[hir.Resolved]{Value: u(0)},
	}
}

// bfsFixture is a miniature graph-BFS-shaped program: an iterator loop
// (desugared `for neighbor in _iterator(queue)`) using `if let
// #{value: neighbor}` to unpack the next element, breaking when the
// iterator is exhausted.
func bfsFixture() []hir.Statement {
	iterFn := intrinsic("_iterator", []hir.HIRType{hir.Array{Elem: intType()}}, intType())
	nextFn := intrinsic("_next", []hir.HIRType{intType()}, hir.Or{Items: []hir.HIRType{
		hir.AnonymousStruct{Members: map[string]hir.HIRType{"value": intType()}},
		hir.Tuple{},
	}})
	getItemFn := intrinsic("_get_item", []hir.HIRType{hir.Array{Elem: boolType()}, intType()}, boolType())

	loopBody := []hir.Statement{
		hir.Binding[hir.Resolved]{VariableID: 3, VariableType: intType(), Expression: hir.CallFunctionExpr[hir.Resolved]{
			Function: nextFn, Arguments: []hir.Variable[hir.Resolved]{u(2)},
		}},
		hir.Binding[hir.Resolved]{VariableID: 6, VariableType: hir.Tuple{}, Expression: hir.IfLetExpr[hir.Resolved]{
			ConditionBindingID: 4,
			PatternType:        hir.AnonymousStruct{Members: map[string]hir.HIRType{"value": hir.Infer{}}},
			Condition:          u(3),
			Then: hir.Block[hir.Resolved]{Statements: []hir.Statement{
				hir.Binding[hir.Resolved]{VariableID: 5, VariableType: boolType(), Expression: hir.CallFunctionExpr[hir.Resolved]{
					Function: getItemFn, Arguments: []hir.Variable[hir.Resolved]{u(1), u(4)},
				}},
			}, Result: u(5)},
			Other: hir.Block[hir.Resolved]{Statements: []hir.Statement{hir.BreakStatement{}}, Result: u(0)},
		}},
	}

	return []hir.Statement{
		hir.Binding[hir.Resolved]{VariableID: 2, VariableType: intType(), Expression: hir.CallFunctionExpr[hir.Resolved]{
			Function: iterFn, Arguments: []hir.Variable[hir.Resolved]{u(0)},
		}},
		hir.Binding[hir.Resolved]{VariableID: 7, VariableType: hir.Tuple{}, Expression: hir.LoopExpr{Body: loopBody}},
		hir.ReturnStatement[hir.Resolved]{Value: u(1)},
	}
}

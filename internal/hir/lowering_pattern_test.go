package hir

import (
	"strings"
	"testing"
)

// TestWhileDesugarsToLoopWithLeadingBreak pins the vocabulary HIR lowering
// (an external collaborator) is expected to use for `while cond { body }`:
// a Loop whose first statements call the `_not` intrinsic on the condition
// and break when it holds. The core only owns the shapes and the printer;
// this checks the printer renders that shape with the spec's spellings.
func TestWhileDesugarsToLoopWithLeadingBreak(t *testing.T) {
	notFn := resolved("_not", Function{Args: []HIRType{namedX()}, Result: namedX()})
	guard := Binding[Resolved]{
		VariableID:   1,
		VariableType: namedX(),
		Expression: CallFunctionExpr[Resolved]{
			Function:  notFn,
			Arguments: []Variable[Resolved]{UnnamedVariable[Resolved](0)},
		},
	}
	ifBreak := Binding[Resolved]{
		VariableID:   2,
		VariableType: namedX(),
		Expression: IfExpr[Resolved]{
			Condition: UnnamedVariable[Resolved](1),
			Then:      Block[Resolved]{Statements: []Statement{BreakStatement{}}, Result: UnnamedVariable[Resolved](0)},
			Other:     Block[Resolved]{Result: UnnamedVariable[Resolved](0)},
		},
	}
	loop := LoopExpr{Body: []Statement{guard, ifBreak}}
	got := ExpressionString[Resolved](loop, vs)

	for _, want := range []string{"loop {", "_not: (X)->X($0)", "if $1 {", "break;", "} else {"} {
		if !strings.Contains(got, want) {
			t.Errorf("while-loop lowering shape missing %q, got:\n%s", want, got)
		}
	}
}

// TestForDesugarsToIteratorLoop pins the `for x in e` vocabulary: a loop
// body that calls `_next` on the iterator and pattern-matches the result
// with `if let #{value: x}`, breaking in the else branch when exhausted.
func TestForDesugarsToIteratorLoop(t *testing.T) {
	nextFn := resolved("_next", Function{Args: []HIRType{namedX()}, Result: Or{Items: []HIRType{
		AnonymousStruct{Members: map[string]HIRType{"value": namedX()}},
		Tuple{},
	}}})
	step := Binding[Resolved]{
		VariableID:   3,
		VariableType: namedX(),
		Expression: CallFunctionExpr[Resolved]{
			Function:  nextFn,
			Arguments: []Variable[Resolved]{UnnamedVariable[Resolved](2)},
		},
	}
	match := Binding[Resolved]{
		VariableID:   5,
		VariableType: namedX(),
		Expression: IfLetExpr[Resolved]{
			ConditionBindingID: 4,
			PatternType:        AnonymousStruct{Members: map[string]HIRType{"value": Infer{}}},
			Condition:          UnnamedVariable[Resolved](3),
			Then:               Block[Resolved]{Result: UnnamedVariable[Resolved](4)},
			Other:              Block[Resolved]{Statements: []Statement{BreakStatement{}}, Result: UnnamedVariable[Resolved](0)},
		},
	}
	loop := LoopExpr{Body: []Statement{step, match}}
	got := ExpressionString[Resolved](loop, vs)

	for _, want := range []string{
		"loop {",
		"_next: (X)->(#{value: X} | ())($2)",
		"if let $4: #{value: $Infer} = $3 {",
		"break;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("for-loop lowering shape missing %q, got:\n%s", want, got)
		}
	}
}

// TestIteratorCallsUseGetItemSetItemIntrinsics pins the `_get_item` /
// `_set_item` / `_iterator` labels the spec assigns to operator-desugared
// intrinsic call targets, alongside `_add`, `_gt`, `_mul`.
func TestIteratorCallsUseGetItemSetItemIntrinsics(t *testing.T) {
	names := []string{"_add", "_gt", "_not", "_mul", "_get_item", "_set_item", "_iterator", "_next"}
	for _, name := range names {
		f := resolved(name, Function{Args: []HIRType{namedX()}, Result: namedX()})
		call := CallFunctionExpr[Resolved]{Function: f, Arguments: []Variable[Resolved]{UnnamedVariable[Resolved](0)}}
		got := ExpressionString[Resolved](call, vs)
		want := name + ": (X)->X($0)"
		if got != want {
			t.Errorf("intrinsic call %s rendered as %q, want %q", name, got, want)
		}
	}
}

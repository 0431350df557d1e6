// Package toplevel implements the single pass that partitions a parsed
// top-level item sequence into free-floating statements, struct
// definitions, and function definitions, attaching to each definition the
// set of imports that appeared textually before it.
package toplevel

import "github.com/orizon-lang/orizon-hir/internal/ast"

// WithImports pairs a definition with the import paths visible at its
// point in the source: the accumulated snapshot of every import seen so
// far in the top-level sequence, regardless of lexical nesting.
type WithImports[T any] struct {
	Imports []ast.ImportPath
	Item    T
}

// Split is the result of partitioning a top-level sequence: statements in
// source order, and struct/function definitions each paired with their
// visible import snapshot.
type Split struct {
	Statements []ast.StatementItem
	Structs    []WithImports[*ast.StructDefinition]
	Functions  []WithImports[*ast.FunctionDefinition]
}

// SplitTopLevel walks items once, in order. A plain statement is appended
// to Statements; if it is an Import, its path also extends the running
// import accumulator. A struct or function definition is emitted with a
// clone of the accumulator as it stands at that point -- later imports do
// not retroactively become visible to earlier definitions, and the
// accumulator itself never resets.
func SplitTopLevel(items []ast.TopLevelStatement) Split {
	var out Split
	var imports []ast.ImportPath

	for _, item := range items {
		switch v := item.(type) {
		case *ast.TopLevelPlainStatement:
			out.Statements = append(out.Statements, v.Item)
			if imp, ok := v.Item.(*ast.Import); ok {
				imports = append(imports, imp.Path)
			}
		case *ast.TopLevelStructDefinition:
			out.Structs = append(out.Structs, WithImports[*ast.StructDefinition]{
				Imports: cloneImports(imports),
				Item:    v.Def,
			})
		case *ast.TopLevelFunctionDefinition:
			out.Functions = append(out.Functions, WithImports[*ast.FunctionDefinition]{
				Imports: cloneImports(imports),
				Item:    v.Def,
			})
		}
	}

	return out
}

func cloneImports(imports []ast.ImportPath) []ast.ImportPath {
	if len(imports) == 0 {
		return nil
	}
	out := make([]ast.ImportPath, len(imports))
	copy(out, imports)
	return out
}

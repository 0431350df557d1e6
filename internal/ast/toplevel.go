package ast

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/orizon-hir/internal/position"
)

// ImportPath is the surface form of an `import` directive. A single
// directive may expand to several paths via grouping, e.g.
// `import std::{io::println, array};`.
type ImportPath interface {
	Node
	importPathNode()
}

// SinglePath is one dotted/`::`-separated import path.
type SinglePath struct {
	Span     position.Span
	Segments []string
}

func (p *SinglePath) GetSpan() position.Span { return p.Span }
func (p *SinglePath) String() string         { return strings.Join(p.Segments, "::") }
func (p *SinglePath) importPathNode()        {}

// PathList groups several import paths under one directive, or is used by
// the top-level splitter to snapshot the accumulated import set visible at
// a definition site.
type PathList struct {
	Span  position.Span
	Items []ImportPath
}

func (p *PathList) GetSpan() position.Span { return p.Span }
func (p *PathList) String() string {
	items := make([]string, len(p.Items))
	for i, it := range p.Items {
		items[i] = it.String()
	}
	return strings.Join(items, ", ")
}
func (p *PathList) importPathNode() {}

// StatementItem is the closed set of top-level statement shapes the splitter
// inspects. Everything other than Import is opaque to the semantic core;
// its contents are lowered by the HIR lowering pass.
type StatementItem interface {
	Node
	statementItemNode()
}

// Import is a top-level `import ...;` directive.
type Import struct {
	Span position.Span
	Path ImportPath
}

func (s *Import) GetSpan() position.Span { return s.Span }
func (s *Import) String() string         { return fmt.Sprintf("import %s;", s.Path.String()) }
func (s *Import) statementItemNode()     {}

// OtherStatement wraps any non-import top-level statement. The core does not
// look inside it; HIR lowering (an external collaborator) does.
type OtherStatement struct {
	Span position.Span
	Text string // best-effort source rendering, for diagnostics only
}

func (s *OtherStatement) GetSpan() position.Span { return s.Span }
func (s *OtherStatement) String() string         { return s.Text }
func (s *OtherStatement) statementItemNode()     {}

// Parameter is a function parameter's surface declaration.
type Parameter struct {
	Span position.Span
	Name string
	Type Type
}

// StructDefinition is a top-level `struct` declaration.
type StructDefinition struct {
	Span    position.Span
	Name    string
	Members []AnonymousStructMember
}

func (d *StructDefinition) GetSpan() position.Span { return d.Span }
func (d *StructDefinition) String() string {
	parts := make([]string, len(d.Members))
	for i, m := range d.Members {
		parts[i] = fmt.Sprintf("%s: %s", m.Name, m.Type.String())
	}
	return fmt.Sprintf("struct %s { %s }", d.Name, strings.Join(parts, ", "))
}

// FunctionDefinition is a top-level `func` declaration. Body is opaque
// surface statement items; HIR lowering interprets them.
type FunctionDefinition struct {
	Span       position.Span
	Name       string
	Parameters []Parameter
	ReturnType Type
	Body       []StatementItem
}

func (d *FunctionDefinition) GetSpan() position.Span { return d.Span }
func (d *FunctionDefinition) String() string {
	params := make([]string, len(d.Parameters))
	for i, p := range d.Parameters {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type.String())
	}
	ret := ""
	if d.ReturnType != nil {
		ret = " " + d.ReturnType.String()
	}
	return fmt.Sprintf("func %s(%s)%s { ... }", d.Name, strings.Join(params, ", "), ret)
}

// TopLevelStatement is one element of the parser's top-level sequence: a
// plain statement, a struct definition, or a function definition, each
// tagged with its source position so downstream passes can report errors.
type TopLevelStatement interface {
	Node
	topLevelStatementNode()
}

// TopLevelPlainStatement wraps a StatementItem appearing at top level.
type TopLevelPlainStatement struct {
	Span position.Span
	Item StatementItem
}

func (s *TopLevelPlainStatement) GetSpan() position.Span { return s.Span }
func (s *TopLevelPlainStatement) String() string         { return s.Item.String() }
func (s *TopLevelPlainStatement) topLevelStatementNode()  {}

// TopLevelStructDefinition wraps a struct definition appearing at top level.
type TopLevelStructDefinition struct {
	Span position.Span
	Def  *StructDefinition
}

func (s *TopLevelStructDefinition) GetSpan() position.Span { return s.Span }
func (s *TopLevelStructDefinition) String() string         { return s.Def.String() }
func (s *TopLevelStructDefinition) topLevelStatementNode()  {}

// TopLevelFunctionDefinition wraps a function definition appearing at top level.
type TopLevelFunctionDefinition struct {
	Span position.Span
	Def  *FunctionDefinition
}

func (s *TopLevelFunctionDefinition) GetSpan() position.Span { return s.Span }
func (s *TopLevelFunctionDefinition) String() string         { return s.Def.String() }
func (s *TopLevelFunctionDefinition) topLevelStatementNode()  {}

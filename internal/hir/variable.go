package hir

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/orizon-hir/internal/position"
)

// Variable[R] names a value produced earlier in the same statement sequence.
// An Unnamed variable refers to a prior binding by its numeric id; a Named
// variable is a surface-syntax reference that still carries its source span,
// any explicit generic arguments, and a reference payload whose shape tracks
// how far through resolution the surrounding HIRStatement/HIRExpression tree
// has progressed: SearchPaths right after lowering, ResolvedItems once name
// resolution has narrowed the candidates, and finally Resolved once exactly
// one candidate and its type remain.
type Variable[R any] struct {
	Span      position.Span
	Generics  []HIRType
	Ref       R
	unnamed   bool
	unnamedID int
}

// NamedVariable builds a Named variable with the given reference payload.
func NamedVariable[R any](span position.Span, generics []HIRType, ref R) Variable[R] {
	return Variable[R]{Span: span, Generics: generics, Ref: ref}
}

// UnnamedVariable builds a variable referring back to binding id.
func UnnamedVariable[R any](id int) Variable[R] {
	return Variable[R]{unnamed: true, unnamedID: id}
}

// IsUnnamed reports whether v refers to a prior binding by id.
func (v Variable[R]) IsUnnamed() bool { return v.unnamed }

// UnnamedID returns the referenced binding id; valid only when IsUnnamed.
func (v Variable[R]) UnnamedID() int { return v.unnamedID }

// SearchPaths is the reference payload immediately after HIR lowering: the
// set of import-qualified paths a name could resolve to, not yet narrowed by
// the name resolver.
type SearchPaths struct {
	Paths [][]string
}

// ResolvedCandidate is one surviving interpretation of a name after the
// resolver has matched it against visible items.
type ResolvedCandidate struct {
	Path []string
	ID   string
	Type HIRType
}

// ResolvedItems is the reference payload once the name resolver has narrowed
// SearchPaths down to zero or more concrete candidates.
type ResolvedItems struct {
	Candidates []ResolvedCandidate
}

// Resolved is the terminal reference payload: exactly one item identity and
// its type, the form the type checker consumes.
type Resolved struct {
	ID   string
	Type HIRType
}

func ordinal(n int) string {
	if (n/10)%10 == 1 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// VariableString renders v the way the pretty printer spells it at each
// resolution stage: unnamed variables always print as "$<id>"; a Named
// SearchPaths variable prints its sole candidate path, or "$either(...)" of
// every candidate when more than one remains; a Named ResolvedItems variable
// does the same over "id: type" candidates; a Named Resolved variable prints
// its single "id: type" pair directly.
func VariableString[R any](v Variable[R]) string {
	if v.unnamed {
		return fmt.Sprintf("$%d", v.unnamedID)
	}
	switch ref := any(v.Ref).(type) {
	case SearchPaths:
		if len(ref.Paths) == 1 {
			return strings.Join(ref.Paths[0], "::")
		}
		parts := make([]string, len(ref.Paths))
		for i, p := range ref.Paths {
			parts[i] = strings.Join(p, "::")
		}
		return fmt.Sprintf("$either(%s)", strings.Join(parts, ", "))
	case ResolvedItems:
		if len(ref.Candidates) == 1 {
			c := ref.Candidates[0]
			return fmt.Sprintf("%s: %s", c.ID, c.Type.String())
		}
		parts := make([]string, len(ref.Candidates))
		for i, c := range ref.Candidates {
			parts[i] = fmt.Sprintf("%s: %s", c.ID, c.Type.String())
		}
		return fmt.Sprintf("$either(%s)", strings.Join(parts, ", "))
	case Resolved:
		return fmt.Sprintf("%s: %s", ref.ID, ref.Type.String())
	default:
		return fmt.Sprintf("<%v>", ref)
	}
}

package hir

import "sort"

// rank gives each HIRType variant a stable position in the lattice's total
// order, matching declaration order: Infer, Unreachable, GenericsTypeArgument,
// Named, Tuple, Array, Function, AnonymousStruct, Or.
func rank(t HIRType) int {
	switch t.(type) {
	case Infer:
		return 0
	case Unreachable:
		return 1
	case GenericsTypeArgument:
		return 2
	case Named:
		return 3
	case Tuple:
		return 4
	case Array:
		return 5
	case Function:
		return 6
	case AnonymousStruct:
		return 7
	case Or:
		return 8
	default:
		return 9
	}
}

// Compare imposes a total, deterministic order over HIRType values. It is
// used to sort and deduplicate the components of a normalized Or.
func Compare(a, b HIRType) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch av := a.(type) {
	case Infer, Unreachable:
		return 0
	case GenericsTypeArgument:
		bv := b.(GenericsTypeArgument)
		return av.Index - bv.Index
	case Named:
		bv := b.(Named)
		if av.Path != bv.Path {
			if av.Path < bv.Path {
				return -1
			}
			return 1
		}
		return compareSlices(av.Args, bv.Args)
	case Tuple:
		bv := b.(Tuple)
		return compareSlices(av.Items, bv.Items)
	case Array:
		bv := b.(Array)
		return Compare(av.Elem, bv.Elem)
	case Function:
		bv := b.(Function)
		if c := compareSlices(av.Args, bv.Args); c != 0 {
			return c
		}
		return Compare(av.Result, bv.Result)
	case AnonymousStruct:
		bv := b.(AnonymousStruct)
		ak, bk := sortedKeys(av.Members), sortedKeys(bv.Members)
		for i := 0; i < len(ak) && i < len(bk); i++ {
			if ak[i] != bk[i] {
				if ak[i] < bk[i] {
					return -1
				}
				return 1
			}
			if c := Compare(av.Members[ak[i]], bv.Members[bk[i]]); c != 0 {
				return c
			}
		}
		return len(ak) - len(bk)
	case Or:
		bv := b.(Or)
		return compareSlices(av.Items, bv.Items)
	default:
		return 0
	}
}

func compareSlices(a, b []HIRType) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// Equals reports structural equality of two HIRType values.
func Equals(a, b HIRType) bool { return Compare(a, b) == 0 }

// IsA reports whether self is assignable to rhs under the lattice's subtyping
// rules: Infer unifies with anything, Unreachable is a subtype of everything
// (but not a supertype of anything but itself), tuples are width-subtyped
// (a longer tuple is a subtype of a shorter one), function arguments are
// contravariant, struct members are checked for the subset rhs requires, and
// Or distributes (all branches on the left, any branch on the right). Arrays
// compare their element types with IsA itself; PossibilityAssignableTo uses
// the looser PossibilityAssignableTo on array elements instead.
func IsA(self, rhs HIRType) bool {
	if _, ok := self.(Infer); ok {
		return true
	}
	if _, ok := rhs.(Infer); ok {
		return true
	}
	if _, ok := self.(Unreachable); ok {
		return true
	}
	if _, ok := rhs.(Unreachable); ok {
		return false
	}
	if sOr, ok := self.(Or); ok {
		for _, t := range sOr.Items {
			if !IsA(t, rhs) {
				return false
			}
		}
		return true
	}
	if rOr, ok := rhs.(Or); ok {
		for _, t := range rOr.Items {
			if IsA(self, t) {
				return true
			}
		}
		return false
	}
	switch s := self.(type) {
	case GenericsTypeArgument:
		r, ok := rhs.(GenericsTypeArgument)
		return ok && r.Index == s.Index
	case Named:
		r, ok := rhs.(Named)
		if !ok || s.Path != r.Path || len(s.Args) != len(r.Args) {
			return false
		}
		for i := range s.Args {
			if !IsA(s.Args[i], r.Args[i]) {
				return false
			}
		}
		return true
	case Tuple:
		r, ok := rhs.(Tuple)
		if !ok || len(s.Items) < len(r.Items) {
			return false
		}
		for i := range r.Items {
			if !IsA(s.Items[i], r.Items[i]) {
				return false
			}
		}
		return true
	case Array:
		r, ok := rhs.(Array)
		return ok && IsA(s.Elem, r.Elem)
	case Function:
		r, ok := rhs.(Function)
		if !ok || len(s.Args) != len(r.Args) {
			return false
		}
		for i := range s.Args {
			if !IsA(r.Args[i], s.Args[i]) { // contravariant
				return false
			}
		}
		return IsA(s.Result, r.Result)
	case AnonymousStruct:
		r, ok := rhs.(AnonymousStruct)
		if !ok {
			return false
		}
		for k, v2 := range r.Members {
			v1, present := s.Members[k]
			if !present || !IsA(v1, v2) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Normalize returns the canonical form of t: recursively normalized
// children, and for Or, flattened nested unions, sorted and deduplicated
// components, Unreachable dropped whenever another alternative remains, and
// collapse to the sole remaining component.
//
// There is no Go idiom for mutating a sum type stored behind an interface
// value in place, so normalize is expressed as this pure function instead of
// the mutating method the algebra is traditionally described with.
// NormalizeInPlace below adapts it for callers holding a *HIRType slot.
func Normalize(t HIRType) HIRType {
	switch v := t.(type) {
	case Tuple:
		items := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			items[i] = Normalize(it)
		}
		return Tuple{Items: items}
	case Array:
		return Array{Elem: Normalize(v.Elem)}
	case Function:
		args := make([]HIRType, len(v.Args))
		for i, a := range v.Args {
			args[i] = Normalize(a)
		}
		return Function{Args: args, Result: Normalize(v.Result)}
	case AnonymousStruct:
		members := make(map[string]HIRType, len(v.Members))
		for k, mt := range v.Members {
			members[k] = Normalize(mt)
		}
		return AnonymousStruct{Members: members}
	case Or:
		var flat []HIRType
		for _, it := range v.Items {
			n := Normalize(it)
			if nested, ok := n.(Or); ok {
				flat = append(flat, nested.Items...)
			} else {
				flat = append(flat, n)
			}
		}
		sort.SliceStable(flat, func(i, j int) bool { return Compare(flat[i], flat[j]) < 0 })
		flat = dedup(flat)
		if len(flat) > 1 {
			flat = retainNotUnreachable(flat)
		}
		if len(flat) == 1 {
			return flat[0]
		}
		return Or{Items: flat}
	default:
		return t
	}
}

// NormalizeInPlace writes the normalized form of *t back into *t.
func NormalizeInPlace(t *HIRType) { *t = Normalize(*t) }

func dedup(items []HIRType) []HIRType {
	out := items[:0:0]
	for i, it := range items {
		if i == 0 || !Equals(it, items[i-1]) {
			out = append(out, it)
		}
	}
	return out
}

func retainNotUnreachable(items []HIRType) []HIRType {
	out := items[:0:0]
	for _, it := range items {
		if _, ok := it.(Unreachable); !ok {
			out = append(out, it)
		}
	}
	return out
}

// ApplyGenericsTypeArgument substitutes each GenericsTypeArgument(i) with
// typeArguments[i]. It reports ok=false if an out-of-range index is
// referenced anywhere in the type.
func ApplyGenericsTypeArgument(t HIRType, typeArguments []HIRType) (HIRType, bool) {
	switch v := t.(type) {
	case Infer, Unreachable:
		return t, true
	case GenericsTypeArgument:
		if v.Index < 0 || v.Index >= len(typeArguments) {
			return nil, false
		}
		return typeArguments[v.Index], true
	case Named:
		args := make([]HIRType, len(v.Args))
		for i, a := range v.Args {
			r, ok := ApplyGenericsTypeArgument(a, typeArguments)
			if !ok {
				return nil, false
			}
			args[i] = r
		}
		return Named{Path: v.Path, Args: args}, true
	case Tuple:
		items := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			r, ok := ApplyGenericsTypeArgument(it, typeArguments)
			if !ok {
				return nil, false
			}
			items[i] = r
		}
		return Tuple{Items: items}, true
	case Array:
		r, ok := ApplyGenericsTypeArgument(v.Elem, typeArguments)
		if !ok {
			return nil, false
		}
		return Array{Elem: r}, true
	case Function:
		args := make([]HIRType, len(v.Args))
		for i, a := range v.Args {
			r, ok := ApplyGenericsTypeArgument(a, typeArguments)
			if !ok {
				return nil, false
			}
			args[i] = r
		}
		res, ok := ApplyGenericsTypeArgument(v.Result, typeArguments)
		if !ok {
			return nil, false
		}
		return Function{Args: args, Result: res}, true
	case AnonymousStruct:
		members := make(map[string]HIRType, len(v.Members))
		for k, mt := range v.Members {
			r, ok := ApplyGenericsTypeArgument(mt, typeArguments)
			if !ok {
				return nil, false
			}
			members[k] = r
		}
		return AnonymousStruct{Members: members}, true
	case Or:
		items := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			r, ok := ApplyGenericsTypeArgument(it, typeArguments)
			if !ok {
				return nil, false
			}
			items[i] = r
		}
		return Or{Items: items}, true
	default:
		return nil, false
	}
}

// MemberType projects the type of field name out of t. Infer projects to
// Infer; an Or projects to the Or of each branch's projection, failing if any
// branch lacks the member.
func MemberType(t HIRType, name string) (HIRType, bool) {
	switch v := t.(type) {
	case Infer:
		return Infer{}, true
	case AnonymousStruct:
		mt, ok := v.Members[name]
		return mt, ok
	case Or:
		result := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			mt, ok := MemberType(it, name)
			if !ok {
				return nil, false
			}
			result[i] = mt
		}
		return Or{Items: result}, true
	default:
		return nil, false
	}
}

// TupleItemType projects the type of positional index n out of t, with the
// same Infer/Or handling as MemberType.
func TupleItemType(t HIRType, n int) (HIRType, bool) {
	switch v := t.(type) {
	case Infer:
		return Infer{}, true
	case Tuple:
		if n < 0 || n >= len(v.Items) {
			return nil, false
		}
		return v.Items[n], true
	case Or:
		result := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			it2, ok := TupleItemType(it, n)
			if !ok {
				return nil, false
			}
			result[i] = it2
		}
		return Or{Items: result}, true
	default:
		return nil, false
	}
}

// HasMember reports whether t guarantees a field named name (Infer always
// does; an Or does only if every branch does).
func HasMember(t HIRType, name string) bool {
	switch v := t.(type) {
	case Infer:
		return true
	case AnonymousStruct:
		_, ok := v.Members[name]
		return ok
	case Or:
		for _, it := range v.Items {
			if !HasMember(it, name) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// HasTupleItem reports whether t guarantees a tuple slot at index n.
func HasTupleItem(t HIRType, n int) bool {
	switch v := t.(type) {
	case Infer:
		return true
	case Tuple:
		return n >= 0 && n < len(v.Items)
	case Or:
		for _, it := range v.Items {
			if !HasTupleItem(it, n) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IntersectTo narrows self against rhs, used during inference to propagate
// information discovered about a value at one use site back onto types
// inferred at another. Identical types intersect to themselves; Infer yields
// the other side; composite shapes intersect member-wise; an Or self
// intersects each of its own branches against rhs. A Tuple, Array or
// AnonymousStruct self intersected against an Or keeps only the rhs branches
// of the same shape for which IsA(branch, self) holds (for arrays, IsA on the
// element types), and collects the per-slot
// intersections into an Or at each tuple position, array element or member.
// Any other self against an Or is returned unchanged.
func IntersectTo(self, rhs HIRType) HIRType {
	if Equals(self, rhs) {
		return self
	}
	if _, ok := self.(Infer); ok {
		return rhs
	}
	if _, ok := rhs.(Infer); ok {
		return self
	}
	if s, ok := self.(Tuple); ok {
		if r, ok := rhs.(Tuple); ok && len(s.Items) <= len(r.Items) {
			items := make([]HIRType, len(s.Items))
			for i := range s.Items {
				items[i] = IntersectTo(s.Items[i], r.Items[i])
			}
			return Tuple{Items: items}
		}
	}
	if s, ok := self.(Array); ok {
		if r, ok := rhs.(Array); ok {
			return Array{Elem: IntersectTo(s.Elem, r.Elem)}
		}
	}
	if s, ok := self.(AnonymousStruct); ok {
		if r, ok := rhs.(AnonymousStruct); ok {
			result := make(map[string]HIRType, len(s.Members))
			for k, v1 := range s.Members {
				v2, present := r.Members[k]
				if !present {
					return s
				}
				result[k] = IntersectTo(v1, v2)
			}
			return AnonymousStruct{Members: result}
		}
	}
	if s, ok := self.(Or); ok {
		items := make([]HIRType, len(s.Items))
		for i, it := range s.Items {
			items[i] = IntersectTo(it, rhs)
		}
		return Or{Items: items}
	}
	if r, ok := rhs.(Or); ok {
		switch s := self.(type) {
		case Tuple:
			acc := make([][]HIRType, len(s.Items))
			for _, ty := range r.Items {
				t2, ok := ty.(Tuple)
				if !ok || !IsA(t2, s) {
					continue
				}
				for i := range s.Items {
					acc[i] = append(acc[i], IntersectTo(s.Items[i], t2.Items[i]))
				}
			}
			items := make([]HIRType, len(acc))
			for i, a := range acc {
				items[i] = Or{Items: a}
			}
			return Tuple{Items: items}
		case Array:
			var alts []HIRType
			for _, ty := range r.Items {
				a2, ok := ty.(Array)
				if !ok || !IsA(a2.Elem, s.Elem) {
					continue
				}
				alts = append(alts, IntersectTo(s.Elem, a2.Elem))
			}
			return Array{Elem: Normalize(Or{Items: alts})}
		case AnonymousStruct:
			acc := make(map[string][]HIRType)
			for _, ty := range r.Items {
				s2, ok := ty.(AnonymousStruct)
				if !ok || !IsA(s2, s) {
					continue
				}
				for k, v1 := range s.Members {
					acc[k] = append(acc[k], IntersectTo(v1, s2.Members[k]))
				}
			}
			members := make(map[string]HIRType, len(acc))
			for k, a := range acc {
				members[k] = Normalize(Or{Items: a})
			}
			return AnonymousStruct{Members: members}
		}
	}
	return self
}

// PossibilityAssignableTo is a lenient, symmetric pre-inference compatibility
// check: it asks whether self and target could conceivably describe the same
// value, not whether one is strictly a subtype of the other. Infer and
// GenericsTypeArgument are always compatible with anything; composite shapes
// recurse member-wise (array elements with this same lenient check, not with
// IsA); Or is compatible if any branch on either side is.
func PossibilityAssignableTo(self, target HIRType) bool {
	if Equals(self, target) {
		return true
	}
	if _, ok := self.(Infer); ok {
		return true
	}
	if _, ok := target.(Infer); ok {
		return true
	}
	if _, ok := self.(GenericsTypeArgument); ok {
		return true
	}
	if _, ok := target.(GenericsTypeArgument); ok {
		return true
	}
	if s, ok := self.(Tuple); ok {
		if t, ok := target.(Tuple); ok {
			n := len(s.Items)
			if len(t.Items) < n {
				n = len(t.Items)
			}
			for i := 0; i < n; i++ {
				if !PossibilityAssignableTo(s.Items[i], t.Items[i]) {
					return false
				}
			}
			return true
		}
	}
	if s, ok := self.(Array); ok {
		if t, ok := target.(Array); ok {
			return PossibilityAssignableTo(s.Elem, t.Elem)
		}
	}
	if s, ok := self.(AnonymousStruct); ok {
		if t, ok := target.(AnonymousStruct); ok {
			for k, v2 := range t.Members {
				if v1, present := s.Members[k]; present && !PossibilityAssignableTo(v1, v2) {
					return false
				}
			}
			return true
		}
	}
	if s, ok := self.(Or); ok {
		for _, it := range s.Items {
			if PossibilityAssignableTo(it, target) {
				return true
			}
		}
		return false
	}
	if t, ok := target.(Or); ok {
		for _, it := range t.Items {
			if PossibilityAssignableTo(self, it) {
				return true
			}
		}
		return false
	}
	return false
}

// InferTemporary materializes a concrete type to stand in for t at a binding
// site that was never constrained: Infer becomes the empty tuple (the unit
// type), and every other shape keeps its structure while recursing into its
// own Infer-bearing children.
func InferTemporary(t HIRType) HIRType {
	switch v := t.(type) {
	case Infer:
		return Tuple{Items: nil}
	case Unreachable, GenericsTypeArgument, Named:
		return t
	case Tuple:
		items := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			items[i] = InferTemporary(it)
		}
		return Tuple{Items: items}
	case Array:
		return Array{Elem: InferTemporary(v.Elem)}
	case Function:
		args := make([]HIRType, len(v.Args))
		for i, a := range v.Args {
			args[i] = InferTemporary(a)
		}
		return Function{Args: args, Result: InferTemporary(v.Result)}
	case AnonymousStruct:
		members := make(map[string]HIRType, len(v.Members))
		for k, mt := range v.Members {
			members[k] = InferTemporary(mt)
		}
		return AnonymousStruct{Members: members}
	case Or:
		items := make([]HIRType, len(v.Items))
		for i, it := range v.Items {
			items[i] = InferTemporary(it)
		}
		return Or{Items: items}
	default:
		return t
	}
}

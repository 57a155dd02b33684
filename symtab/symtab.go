// Package symtab is the parser's symbol table: a persistent, scoped
// record of which identifiers are currently typedef names versus enum
// constants versus ordinary (non-type) names, kept precise enough to
// resolve the classic "is T an identifier or a type?" ambiguity while
// backtracking.
//
// It is named Table rather than Context to avoid colliding with
// stdlib context.Context, which the rest of this module uses for
// cancellation in the same way the teacher's pkg/pdo package does.
package symtab

// Namespace is one lexical scope's worth of name classifications. All
// three sets are immutable treaps; adding a name never mutates an
// existing Namespace value, it produces a new one.
type Namespace struct {
	typedefNames  *treapNode
	enumConstants *treapNode
	ordinaryNames *treapNode // names explicitly declared non-type in THIS scope, shadowing an outer typedef
}

// Table is a stack of Namespace scopes. The stack itself is kept as a
// slice that is always capacity-capped to its length on every
// structural change (Push/Pop/the Add* methods), so a previously taken
// Snapshot's backing array is never mutated by a later Push — the
// slice-header copy in Snapshot/Restore is then genuinely O(1).
type Table struct {
	frames []*Namespace
}

// New returns a Table with a single global scope pre-seeded with the
// builtin typedef names every C23 translation unit starts with
// (§3 Invariants: __builtin_va_list, __uint128_t, _Float16, _Float128,
// _Bool), plus __int128_t.
func New() *Table {
	global := &Namespace{}
	for _, name := range builtinTypedefNames {
		global.typedefNames = treapInsert(global.typedefNames, name)
	}
	return &Table{frames: []*Namespace{global}}
}

var builtinTypedefNames = []string{
	"__builtin_va_list",
	"__uint128_t",
	"__int128_t",
	"_Float16",
	"_Float128",
	"_Bool",
}

// Push opens a new, initially empty scope (entering a block, a
// parameter list, a struct body).
func (t *Table) Push() {
	n := len(t.frames)
	t.frames = append(t.frames[:n:n], &Namespace{})
}

// Pop closes the innermost scope. Popping the global scope panics: a
// well-formed parser never unbalances Push/Pop.
func (t *Table) Pop() {
	n := len(t.frames)
	if n <= 1 {
		panic("symtab: Pop of the global scope")
	}
	t.frames = t.frames[:n-1 : n-1]
}

// Depth reports the number of scopes currently open, including the
// global scope (always >= 1).
func (t *Table) Depth() int { return len(t.frames) }

func (t *Table) top() *Namespace { return t.frames[len(t.frames)-1] }

// withTop replaces the innermost scope with next, preserving every
// outer scope and never touching a snapshotted backing array.
func (t *Table) withTop(next *Namespace) {
	n := len(t.frames)
	t.frames = append(t.frames[:n-1:n-1], next)
}

// AddTypedefName records name as a typedef name visible from this
// point in the innermost scope onward.
func (t *Table) AddTypedefName(name string) {
	top := t.top()
	t.withTop(&Namespace{
		typedefNames:  treapInsert(top.typedefNames, name),
		enumConstants: top.enumConstants,
		ordinaryNames: top.ordinaryNames,
	})
}

// AddEnumConstant records name as an enum constant visible from this
// point in the innermost scope onward.
func (t *Table) AddEnumConstant(name string) {
	top := t.top()
	t.withTop(&Namespace{
		typedefNames:  top.typedefNames,
		enumConstants: treapInsert(top.enumConstants, name),
		ordinaryNames: top.ordinaryNames,
	})
}

// AddOrdinaryName records name as a declared variable, function, or
// parameter in the innermost scope, shadowing any outer typedef name
// of the same spelling for the remainder of this scope (the classic
// "typedef int T; void f(int T)" rule).
func (t *Table) AddOrdinaryName(name string) {
	top := t.top()
	t.withTop(&Namespace{
		typedefNames:  top.typedefNames,
		enumConstants: top.enumConstants,
		ordinaryNames: treapInsert(top.ordinaryNames, name),
	})
}

// IsTypedefName reports whether name currently names a type, searching
// from the innermost scope outward and stopping at the first scope
// that declares name in any of the three sets.
func (t *Table) IsTypedefName(name string) bool {
	for i := len(t.frames) - 1; i >= 0; i-- {
		ns := t.frames[i]
		if treapContains(ns.ordinaryNames, name) {
			return false
		}
		if treapContains(ns.typedefNames, name) {
			return true
		}
		if treapContains(ns.enumConstants, name) {
			return false
		}
	}
	return false
}

// IsEnumConstant reports whether name currently names an enum
// constant, with the same innermost-first shadowing rule.
func (t *Table) IsEnumConstant(name string) bool {
	for i := len(t.frames) - 1; i >= 0; i-- {
		ns := t.frames[i]
		if treapContains(ns.ordinaryNames, name) {
			return false
		}
		if treapContains(ns.enumConstants, name) {
			return true
		}
		if treapContains(ns.typedefNames, name) {
			return false
		}
	}
	return false
}

// IsOrdinaryName reports whether name is currently declared as a
// non-type (variable, function, or parameter) name, searching
// innermost scope outward. Used to tell a genuinely unknown
// identifier apart from one already known to be a value, which
// resolves some type/expression ambiguities unambiguously without
// guessing.
func (t *Table) IsOrdinaryName(name string) bool {
	for i := len(t.frames) - 1; i >= 0; i-- {
		ns := t.frames[i]
		if treapContains(ns.ordinaryNames, name) {
			return true
		}
		if treapContains(ns.typedefNames, name) || treapContains(ns.enumConstants, name) {
			return false
		}
	}
	return false
}

// Snapshot is an O(1) handle on the table's current state, cheap
// enough to take before every speculative parse attempt.
type Snapshot struct {
	frames []*Namespace
}

// Snapshot captures the current stack of scopes. The returned value
// shares structure with t and costs only a slice-header copy.
func (t *Table) Snapshot() Snapshot {
	return Snapshot{frames: t.frames}
}

// Restore rewinds the table to a previously taken Snapshot, discarding
// any scopes pushed or names added since. Also O(1): a slice-header
// assignment.
func (t *Table) Restore(s Snapshot) {
	t.frames = s.frames
}

// typedefNamesVisible returns every typedef name visible at the current
// scope, innermost-shadowing already resolved; the order is not sorted.
// Intended for debugging and tests only.
func (t *Table) typedefNamesVisible() []string {
	seen := make(map[string]bool)
	var out []string
	for i := len(t.frames) - 1; i >= 0; i-- {
		ns := t.frames[i]
		treapEach(ns.ordinaryNames, func(k string) { seen[k] = true })
		treapEach(ns.typedefNames, func(k string) {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		})
	}
	return out
}

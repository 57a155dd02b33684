package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_BuiltinNamespaceSeeded(t *testing.T) {
	tbl := New()
	for _, name := range builtinTypedefNames {
		assert.True(t, tbl.IsTypedefName(name), name)
	}
	assert.False(t, tbl.IsTypedefName("not_a_builtin"))
}

func TestTable_AddAndLookupTypedefName(t *testing.T) {
	tbl := New()
	assert.False(t, tbl.IsTypedefName("Widget"))
	tbl.AddTypedefName("Widget")
	assert.True(t, tbl.IsTypedefName("Widget"))
	assert.False(t, tbl.IsEnumConstant("Widget"))
}

func TestTable_EnumConstantIsNotATypedefName(t *testing.T) {
	tbl := New()
	tbl.AddEnumConstant("RED")
	assert.True(t, tbl.IsEnumConstant("RED"))
	assert.False(t, tbl.IsTypedefName("RED"))
}

func TestTable_NestedScopeSeesOuterTypedef(t *testing.T) {
	tbl := New()
	tbl.AddTypedefName("Widget")
	tbl.Push()
	assert.True(t, tbl.IsTypedefName("Widget"), "inner scope should see outer typedef")
	tbl.Pop()
	assert.True(t, tbl.IsTypedefName("Widget"))
}

func TestTable_InnerOrdinaryNameShadowsOuterTypedef(t *testing.T) {
	tbl := New()
	tbl.AddTypedefName("Widget")
	tbl.Push()
	tbl.AddOrdinaryName("Widget") // e.g. "void f(int Widget)"
	assert.False(t, tbl.IsTypedefName("Widget"), "parameter named Widget shadows the typedef in this scope")
	tbl.Pop()
	assert.True(t, tbl.IsTypedefName("Widget"), "outer typedef unaffected by the inner shadow")
}

func TestTable_PopDiscardsInnerDeclarations(t *testing.T) {
	tbl := New()
	tbl.Push()
	tbl.AddTypedefName("Local")
	require.True(t, tbl.IsTypedefName("Local"))
	tbl.Pop()
	assert.False(t, tbl.IsTypedefName("Local"))
}

func TestTable_SnapshotRestoreRewindsSpeculativeParse(t *testing.T) {
	tbl := New()
	tbl.AddTypedefName("Outer")

	snap := tbl.Snapshot()

	tbl.Push()
	tbl.AddTypedefName("Speculative")
	require.True(t, tbl.IsTypedefName("Speculative"))
	require.Equal(t, 2, tbl.Depth())

	tbl.Restore(snap)

	assert.False(t, tbl.IsTypedefName("Speculative"), "speculative declaration must not survive a restore")
	assert.True(t, tbl.IsTypedefName("Outer"))
	assert.Equal(t, 1, tbl.Depth())
}

func TestTable_RestoreDoesNotCorruptOtherBranchAfterFreshPush(t *testing.T) {
	tbl := New()
	snap := tbl.Snapshot()

	tbl.Push()
	tbl.AddTypedefName("BranchA")
	tbl.Restore(snap)

	tbl.Push()
	tbl.AddTypedefName("BranchB")

	assert.True(t, tbl.IsTypedefName("BranchB"))
	assert.False(t, tbl.IsTypedefName("BranchA"), "abandoned branch's declarations must not leak into a sibling branch")
}

func TestTable_MultipleSnapshotsAreIndependent(t *testing.T) {
	tbl := New()
	tbl.AddTypedefName("A")
	s1 := tbl.Snapshot()

	tbl.AddTypedefName("B")
	s2 := tbl.Snapshot()

	tbl.AddTypedefName("C")

	tbl.Restore(s2)
	assert.True(t, tbl.IsTypedefName("B"))
	assert.False(t, tbl.IsTypedefName("C"))

	tbl.Restore(s1)
	assert.False(t, tbl.IsTypedefName("B"))
	assert.True(t, tbl.IsTypedefName("A"))
}

func TestTreap_InsertIsImmutable(t *testing.T) {
	var root *treapNode
	root2 := treapInsert(root, "a")
	root3 := treapInsert(root2, "b")

	assert.False(t, treapContains(root, "a"))
	assert.True(t, treapContains(root2, "a"))
	assert.False(t, treapContains(root2, "b"))
	assert.True(t, treapContains(root3, "a"))
	assert.True(t, treapContains(root3, "b"))
}

func TestTreap_InsertDuplicateReturnsSameRoot(t *testing.T) {
	root := treapInsert(nil, "a")
	root2 := treapInsert(root, "a")
	assert.Same(t, root, root2)
}

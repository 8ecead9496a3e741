package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	assert.Equal(t, "test", n.Name())
	assert.Equal(t, ClassNode, n.GetClass())
	assert.NotZero(t, n.InstanceID())
	assert.Nil(t, n.GetParent(), "new node should have no parent")
	assert.False(t, n.IsInsideTree(), "new node should not be inside a tree")
	assert.Equal(t, ProcessModeInherit, n.ProcessMode())
}

func TestUniqueInstanceIDs(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		id := NewNode("n").InstanceID()
		require.False(t, seen[id], "duplicate InstanceID %d", id)
		seen[id] = true
	}
}

func TestDerivedClassIdentity(t *testing.T) {
	s := NewSprite2D("s")
	assert.Equal(t, ClassSprite2D, s.GetClass())
	for _, c := range []string{ClassObject, ClassNode, ClassCanvasItem, ClassNode2D, ClassSprite2D} {
		assert.True(t, s.IsClass(c), "IsClass(%q)", c)
	}
	assert.False(t, s.IsClass(ClassControl))
	// The embedded base parts report the most-derived class too.
	assert.Equal(t, ClassSprite2D, s.AsNode().GetClass())
	assert.Same(t, s, s.AsObject().Self(), "Self should return the most-derived value")
}

// --- Meta ---

func TestMeta(t *testing.T) {
	n := NewNode("n")
	n.SetMeta("b", 2)
	n.SetMeta("a", "one")
	assert.True(t, n.HasMeta("a"))
	assert.Equal(t, 2, n.GetMeta("b"))
	assert.Equal(t, []string{"a", "b"}, n.GetMetaList())

	n.SetMeta("a", nil)
	assert.False(t, n.HasMeta("a"), "SetMeta(nil) should remove the entry")
	n.RemoveMeta("b")
	assert.Nil(t, n.GetMeta("b"))
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode2D("child")
	parent.AddChild(child)

	assert.Same(t, parent, child.GetParent())
	require.Equal(t, 1, parent.GetChildCount())
	assert.Same(t, child, parent.GetChild(0))
	assert.Equal(t, 0, child.GetIndex())
}

func TestAddChildStoresMostDerived(t *testing.T) {
	parent := NewNode("parent")
	s := NewSprite2D("s")
	parent.AddChild(s.AsNode())

	assert.IsType(t, &Sprite2D{}, parent.GetChild(0))
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")
	p1.AddChild(child)
	p2.AddChild(child)

	assert.Equal(t, 0, p1.GetChildCount())
	assert.Same(t, p2, child.GetParent())
}

func TestAddChildPanics(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	assert.Panics(t, func() { grandchild.AddChild(parent) }, "cycle")
	assert.Panics(t, func() { parent.AddChild(parent) }, "self")
	assert.PanicsWithValue(t, "engine: cannot add nil child", func() { parent.AddChild(nil) })
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChild(a)

	require.Equal(t, 1, parent.GetChildCount())
	assert.Same(t, b, parent.GetChild(0))
	assert.Nil(t, a.GetParent())
	assert.False(t, a.IsFreed(), "RemoveChild should not free the child")
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")
	p1.AddChild(child)

	assert.Panics(t, func() { p2.RemoveChild(child) })
}

func TestMoveChild(t *testing.T) {
	parent := NewNode("parent")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.MoveChild(a, 2)
	assert.Equal(t, []string{"b", "c", "a"}, names(parent.GetChildren()))
	parent.MoveChild(a, 0)
	assert.Equal(t, []string{"a", "b", "c"}, names(parent.GetChildren()))
	parent.MoveChild(b, 1)
	assert.Equal(t, []string{"a", "b", "c"}, names(parent.GetChildren()))

	assert.Panics(t, func() { parent.MoveChild(a, 3) })
}

func TestGetChildNegativeIndex(t *testing.T) {
	parent := NewNode("parent")
	parent.AddChild(NewNode("a"))
	parent.AddChild(NewNode("b"))
	assert.Equal(t, "b", parent.GetChild(-1).AsNode().Name())
	assert.Panics(t, func() { parent.GetChild(2) })
}

func TestGetChildrenIsCopy(t *testing.T) {
	parent := NewNode("parent")
	parent.AddChild(NewNode("a"))
	kids := parent.GetChildren()
	kids[0] = nil
	assert.NotNil(t, parent.GetChild(0), "GetChildren should return a copy")
}

func TestGetNodePaths(t *testing.T) {
	root := NewNode("top")
	a := NewNode("a")
	b := NewNode2D("b")
	c := NewSprite2D("c")
	root.AddChild(a)
	a.AddChild(b)
	b.AddChild(c)

	tests := []struct {
		from *Node
		path string
		want NodeInstance
	}{
		{root, "a", a},
		{root, "a/b/c", c},
		{c.AsNode(), "..", b},
		{c.AsNode(), "../..", a},
		{b.AsNode(), "./c", c},
		{b.AsNode(), "../b/c", c},
		{root, "missing", nil},
		{root, "a/missing/c", nil},
		{root, "", nil},
		{root, "..", nil},
	}
	for _, tt := range tests {
		got := tt.from.GetNode(tt.path)
		if tt.want == nil {
			assert.Nil(t, got, "%s.GetNode(%q)", tt.from.Name(), tt.path)
			continue
		}
		assert.Same(t, tt.want, got, "%s.GetNode(%q)", tt.from.Name(), tt.path)
	}
}

func TestGetNodeAbsolute(t *testing.T) {
	tree := NewSceneTree()
	a := NewNode("a")
	b := NewNode("b")
	tree.Root().AddChild(a)
	a.AddChild(b)

	assert.Same(t, a, b.GetNode("/root/a"))
	assert.Nil(t, a.GetNode("/other/a"))
	assert.Nil(t, NewNode("d").GetNode("/root"), "absolute path outside a tree")
}

func TestFindChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("alpha")
	b := NewNode("beta")
	deep := NewNode("enemy_1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(deep)

	assert.Same(t, b, root.FindChild("beta"))
	assert.Same(t, deep, root.FindChild("enemy_*"))
	assert.Nil(t, root.FindChild("gamma"))
}

func TestGetPath(t *testing.T) {
	top := NewNode("top")
	child := NewNode("child")
	top.AddChild(child)
	assert.Equal(t, "top/child", child.GetPath())

	tree := NewSceneTree()
	tree.Root().AddChild(top)
	assert.Equal(t, "/root/top/child", child.GetPath())
}

func TestIsAncestorOf(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	a.AddChild(b)
	b.AddChild(c)

	assert.True(t, a.IsAncestorOf(c))
	assert.False(t, c.IsAncestorOf(a))
	assert.False(t, a.IsAncestorOf(a), "a node is not its own ancestor")
	assert.False(t, a.IsAncestorOf(nil))
}

func TestSetNameEmitsRenamed(t *testing.T) {
	n := NewNode("old")
	count := 0
	n.Connect(SignalRenamed, func(...any) { count++ })
	n.SetName("new")
	n.SetName("new")
	assert.Equal(t, 1, count)
}

// --- Groups ---

func TestGroups(t *testing.T) {
	n := NewNode("n")
	n.AddToGroup("enemies")
	n.AddToGroup("enemies")
	n.AddToGroup("flying")
	assert.Equal(t, []string{"enemies", "flying"}, n.GetGroups())

	n.RemoveFromGroup("enemies")
	assert.False(t, n.IsInGroup("enemies"))
	assert.True(t, n.IsInGroup("flying"))
}

// --- Signals ---

func TestSignals(t *testing.T) {
	n := NewNode("n")
	var calls []string
	id1 := n.Connect("hit", func(args ...any) { calls = append(calls, "first") })
	id2 := n.Connect("hit", func(args ...any) { calls = append(calls, args[0].(string)) })
	require.NotEqual(t, id1, id2, "connection ids should differ")

	n.EmitSignal("hit", "second")
	assert.Equal(t, []string{"first", "second"}, calls)

	assert.True(t, n.Disconnect("hit", id1), "live connection")
	assert.False(t, n.Disconnect("hit", id1), "second disconnect")
	assert.False(t, n.IsConnected("hit", id1))
	assert.True(t, n.IsConnected("hit", id2))

	calls = nil
	n.EmitSignal("hit", "again")
	assert.Equal(t, []string{"again"}, calls)
}

func TestSignalDisconnectDuringEmit(t *testing.T) {
	n := NewNode("n")
	count := 0
	var id int
	id = n.Connect("s", func(...any) {
		count++
		n.Disconnect("s", id)
	})
	n.Connect("s", func(...any) { count++ })

	n.EmitSignal("s")
	n.EmitSignal("s")
	assert.Equal(t, 3, count)
}

func TestConnectNilPanics(t *testing.T) {
	n := NewNode("n")
	assert.Panics(t, func() { n.Connect("s", nil) })
}

// --- Deletion ---

func TestFree(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.AddToGroup("g")
	child.SetMeta("k", 1)

	child.Free()

	assert.True(t, child.IsFreed())
	assert.True(t, grandchild.IsFreed(), "Free should free descendants")
	assert.Equal(t, 0, parent.GetChildCount())
	assert.Equal(t, 0, child.GetChildCount())
	assert.False(t, child.IsInGroup("g"))
	assert.False(t, child.HasMeta("k"))
	assert.NotPanics(t, child.Free)
}

func TestQueueFreeOutsideTree(t *testing.T) {
	n := NewNode("n")
	n.QueueFree()
	assert.True(t, n.IsFreed(), "QueueFree outside a tree should free immediately")
	assert.False(t, n.IsQueuedForDeletion())
}

func names(nodes []NodeInstance) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.AsNode().Name()
	}
	return out
}

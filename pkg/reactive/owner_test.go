package reactive

import "testing"

func TestOwnerHierarchy(t *testing.T) {
	t.Run("child registration", func(t *testing.T) {
		root := NewOwner(nil)
		child := NewOwner(root)

		if child.Parent() != root {
			t.Errorf("Parent() = %v, want root", child.Parent())
		}
		if root.Parent() != nil {
			t.Error("root Parent() should be nil")
		}
	})

	t.Run("unique ids", func(t *testing.T) {
		a := NewOwner(nil)
		b := NewOwner(nil)
		if a.ID() == b.ID() {
			t.Errorf("two owners share ID %d", a.ID())
		}
	})

	t.Run("Child helper", func(t *testing.T) {
		root := NewOwner(nil)
		child := root.Child()
		if child.Parent() != root {
			t.Error("Child() did not parent to root")
		}
	})
}

func TestOwnerDispose(t *testing.T) {
	t.Run("cleanups run in reverse order", func(t *testing.T) {
		o := NewOwner(nil)
		var order []int
		o.OnCleanup(func() { order = append(order, 1) })
		o.OnCleanup(func() { order = append(order, 2) })
		o.OnCleanup(func() { order = append(order, 3) })

		o.Dispose()

		if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
			t.Errorf("cleanup order = %v, want [3 2 1]", order)
		}
	})

	t.Run("children disposed before own cleanups", func(t *testing.T) {
		root := NewOwner(nil)
		child := NewOwner(root)

		var order []string
		child.OnCleanup(func() { order = append(order, "child") })
		root.OnCleanup(func() { order = append(order, "root") })

		root.Dispose()

		if len(order) != 2 || order[0] != "child" || order[1] != "root" {
			t.Errorf("dispose order = %v, want [child root]", order)
		}
		if !child.IsDisposed() {
			t.Error("child not disposed")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		o := NewOwner(nil)
		count := 0
		o.OnCleanup(func() { count++ })

		o.Dispose()
		o.Dispose()

		if count != 1 {
			t.Errorf("cleanup ran %d times, want 1", count)
		}
	})

	t.Run("OnCleanup after dispose runs immediately", func(t *testing.T) {
		o := NewOwner(nil)
		o.Dispose()

		ran := false
		o.OnCleanup(func() { ran = true })

		if !ran {
			t.Error("cleanup registered after dispose did not run immediately")
		}
	})

	t.Run("disposed child detaches from parent", func(t *testing.T) {
		root := NewOwner(nil)
		child := NewOwner(root)
		child.Dispose()

		count := 0
		// Disposing the root must not re-dispose the detached child.
		child.OnCleanup(func() { count++ }) // runs immediately (already disposed)
		root.Dispose()

		if count != 1 {
			t.Errorf("cleanup ran %d times, want 1", count)
		}
	})
}

package reactive

import "testing"

func TestSignal(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		s := NewSignal(1)
		if s.Get() != 1 {
			t.Errorf("Get() = %v, want 1", s.Get())
		}
		s.Set(5)
		if s.Get() != 5 {
			t.Errorf("Get() = %v, want 5", s.Get())
		}
	})

	t.Run("update", func(t *testing.T) {
		s := NewSignal(10)
		s.Update(func(n int) int { return n + 1 })
		if s.Get() != 11 {
			t.Errorf("Get() = %v, want 11", s.Get())
		}
	})

	t.Run("subscribers notified", func(t *testing.T) {
		s := NewSignal(false)
		var seen []bool
		s.Subscribe(func(v bool) { seen = append(seen, v) })

		s.Set(true)
		s.Set(false)

		if len(seen) != 2 || seen[0] != true || seen[1] != false {
			t.Errorf("seen = %v, want [true false]", seen)
		}
	})

	t.Run("unsubscribe", func(t *testing.T) {
		s := NewSignal(0)
		count := 0
		cancel := s.Subscribe(func(int) { count++ })

		s.Set(1)
		cancel()
		cancel() // second call is a no-op
		s.Set(2)

		if count != 1 {
			t.Errorf("subscriber ran %d times, want 1", count)
		}
	})

	t.Run("subscriber may read the signal", func(t *testing.T) {
		s := NewSignal(0)
		var read int
		s.Subscribe(func(int) { read = s.Get() })
		s.Set(7)
		if read != 7 {
			t.Errorf("read = %v, want 7", read)
		}
	})
}

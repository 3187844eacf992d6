package stack

import "testing"

func TestStackPushAndPop(t *testing.T) {
	s := New[int]()

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Size() != 3 {
		t.Errorf("Push() stack size = %d, want 3", s.Size())
	}
	if s.IsEmpty() {
		t.Error("Push() stack should not be empty")
	}

	// LIFO order
	for _, want := range []int{3, 2, 1} {
		val, ok := s.Pop()
		if !ok || val != want {
			t.Errorf("Pop() = %d, %t, want %d, true", val, ok, want)
		}
	}

	val, ok := s.Pop()
	if ok || val != 0 {
		t.Errorf("Pop() from empty stack = %d, %t, want 0, false", val, ok)
	}
	if !s.IsEmpty() {
		t.Error("stack should be empty after popping all elements")
	}
}

func TestStackPeekDoesNotMutate(t *testing.T) {
	s := New[string]()

	if val, ok := s.Peek(); ok || val != "" {
		t.Errorf("Peek() on empty stack = %q, %t, want \"\", false", val, ok)
	}

	s.Push("first")
	s.Push("second")

	val, ok := s.Peek()
	if !ok || val != "second" {
		t.Errorf("Peek() = %q, %t, want \"second\", true", val, ok)
	}
	if s.Size() != 2 {
		t.Errorf("Peek() changed stack size to %d, want 2", s.Size())
	}
}

func TestStackNestedSaveRestore(t *testing.T) {
	s := New[int]()
	s.Push(1)

	s.Push(2) // simulate entering a nested scope
	if top, _ := s.Peek(); top != 2 {
		t.Fatalf("nested scope top = %d, want 2", top)
	}
	s.Pop() // restore on exit

	if top, _ := s.Peek(); top != 1 {
		t.Fatalf("after restore top = %d, want 1", top)
	}
}

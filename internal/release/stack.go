// Package release records how to destroy native objects as they are created so that a
// failure partway through construction can unwind everything built so far.
package release

// Stack holds release funcs and runs them in reverse push order
type Stack struct {
	funcs []func()
}

// Push records a release func for an object that was just created
func (s *Stack) Push(release func()) {
	s.funcs = append(s.funcs, release)
}

// Len returns the number of pending release funcs
func (s *Stack) Len() int {
	return len(s.funcs)
}

// Release runs every pending func, most recent first, and empties the stack. It is safe to
// call on an empty stack.
func (s *Stack) Release() {
	for i := len(s.funcs) - 1; i >= 0; i-- {
		s.funcs[i]()
		s.funcs[i] = nil
	}
	s.funcs = s.funcs[:0]
}

// Disarm forgets every pending func without running it. Construction calls this once
// ownership of the created objects has passed to their long-lived owner.
func (s *Stack) Disarm() {
	s.funcs = nil
}

package nav

import "slices"

// Stack is the app-level route stack. The bottom entry is the root and is never popped.
type Stack struct {
	routes []ScreenID
}

// NewStack returns a stack rooted at root.
func NewStack(root ScreenID) *Stack {
	return &Stack{routes: []ScreenID{root}}
}

// Current returns the top route.
func (s *Stack) Current() ScreenID {
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int {
	return len(s.routes)
}

// Push makes id the current route.
func (s *Stack) Push(id ScreenID) {
	s.routes = append(s.routes, id)
}

// Pop removes the current route unless it is the root.
// It reports whether a route was removed.
func (s *Stack) Pop() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Replace swaps the current route for id.
func (s *Stack) Replace(id ScreenID) {
	s.routes[len(s.routes)-1] = id
}

// Reset clears the stack down to a new root.
func (s *Stack) Reset(root ScreenID) {
	s.routes = []ScreenID{root}
}

// Routes returns the stack bottom to top.
func (s *Stack) Routes() []ScreenID {
	return slices.Clone(s.routes)
}

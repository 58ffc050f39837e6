package lexer

// Initial is the name of the state at the bottom of every state stack
const Initial = "INITIAL"

// stateStack is a non-empty stack of state names
type stateStack []string

func newStateStack() stateStack {
	return stateStack{Initial}
}

func (s stateStack) top() string {
	return s[len(s)-1]
}

func (s *stateStack) push(name string) {
	*s = append(*s, name)
}

// pop removes and returns the top state. the bottom state is never removed,
// popping a single element stack returns that element
func (s *stateStack) pop() string {
	st := *s
	if len(st) == 1 {
		return st[0]
	}
	top := st[len(st)-1]
	*s = st[:len(st)-1]
	return top
}

func (s stateStack) reset() stateStack {
	return append(s[:0], Initial)
}

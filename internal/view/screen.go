package view

// Screen binds the logical display targets a page provides. Setting a bound
// target replaces its prior fragment entirely, so re-rendering never
// accumulates content; setting an unbound target is a no-op, matching the
// soft behavior of a missing display container.
type Screen struct {
	fragments map[string]string
}

func NewScreen(targets ...string) *Screen {
	s := &Screen{fragments: make(map[string]string, len(targets))}
	for _, t := range targets {
		s.fragments[t] = ""
	}
	return s
}

func (s *Screen) Set(target, fragment string) {
	if _, ok := s.fragments[target]; !ok {
		return
	}
	s.fragments[target] = fragment
}

func (s *Screen) Fragment(target string) string {
	return s.fragments[target]
}

// Fragments returns a copy of all bound targets and their current content.
func (s *Screen) Fragments() map[string]string {
	out := make(map[string]string, len(s.fragments))
	for k, v := range s.fragments {
		out[k] = v
	}
	return out
}

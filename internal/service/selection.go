package service

// Selection tracks which search result is open for detail viewing.
// The zero value is Closed.
type Selection struct {
	id string
}

// Select opens id, or closes the selection if id is already open.
// It reports whether the selection is open afterwards.
func (s *Selection) Select(id string) bool {
	if id == "" || id == s.id {
		s.id = ""
		return false
	}
	s.id = id
	return true
}

// Close clears the selection
func (s *Selection) Close() {
	s.id = ""
}

// Active returns the open identifier
func (s *Selection) Active() (string, bool) {
	return s.id, s.id != ""
}

// IsOpen reports whether any identifier is open
func (s *Selection) IsOpen() bool {
	return s.id != ""
}

package dataset

// StringSlot is a plain nullable string attribute
type StringSlot struct {
	value *string
}

// Get returns the value and whether one is set
func (s *StringSlot) Get() (string, bool) {
	if s.value == nil {
		return "", false
	}
	return *s.value, true
}

// Set stores v, a nil v unsets the slot
func (s *StringSlot) Set(v *string) {
	if v == nil {
		s.value = nil
		return
	}
	val := *v
	s.value = &val
}

// SetString stores v
func (s *StringSlot) SetString(v string) {
	s.value = &v
}

// Clear unsets the slot
func (s *StringSlot) Clear() {
	s.value = nil
}

// String returns the value or an empty string when unset
func (s StringSlot) String() string {
	v, _ := s.Get()
	return v
}

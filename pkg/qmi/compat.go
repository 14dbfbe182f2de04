package qmi

// Refs returns pointers to copies of every element of s.
func Refs[T any](s []T) []*T {
	if s == nil {
		return nil
	}
	out := make([]*T, len(s))
	for i := range s {
		v := s[i]
		out[i] = &v
	}
	return out
}

// Deref copies the elements behind s. Nil elements are rejected.
func Deref[T any](s []*T) ([]T, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]T, len(s))
	for i, p := range s {
		if p == nil {
			return nil, newError(KindInvalidArgument, "element %d is nil", i)
		}
		out[i] = *p
	}
	return out, nil
}

package version

// DefaultCompatFloor is the first release that shipped the compat views.
var DefaultCompatFloor = Version{Major: 1, Minor: 32}

// Gate filters the generated surface. A zero Limit emits everything.
type Gate struct {
	Limit       Version
	CompatFloor Version
}

func DefaultGate() Gate {
	return Gate{CompatFloor: DefaultCompatFloor}
}

// Visible reports whether something introduced at since is emitted.
func (g Gate) Visible(since Version) bool {
	if g.Limit.IsZero() {
		return true
	}
	return !since.After(g.Limit)
}

// CompatSince is the version a compat view of something introduced at since
// becomes available.
func (g Gate) CompatSince(since Version) Version {
	return Max(since, g.CompatFloor)
}

// CompatVisible reports whether the compat view of something introduced at since
// is emitted.
func (g Gate) CompatVisible(since Version) bool {
	return g.Visible(g.CompatSince(since))
}

package entities

// Version is a tracked game release with its two-letter column label.
type Version struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// AvailableMark is the matrix cell value for an obtainable species.
const AvailableMark = "〇"

// TrackedVersions is the closed list of versions shown in the availability
// matrix, in column order.
var TrackedVersions = []Version{
	{Key: "firered", Label: "FR"},
	{Key: "leafgreen", Label: "LG"},
	{Key: "ruby", Label: "R"},
	{Key: "sapphire", Label: "S"},
	{Key: "emerald", Label: "E"},
}

// TrackedVersionGroups are the version groups whose move data is kept.
var TrackedVersionGroups = []string{"firered-leafgreen", "ruby-sapphire", "emerald"}

// VersionLabels returns the column labels in order.
func VersionLabels() []string {
	labels := make([]string, len(TrackedVersions))
	for i, v := range TrackedVersions {
		labels[i] = v.Label
	}
	return labels
}

// VersionByKey finds a tracked version by its upstream key.
func VersionByKey(key string) (Version, bool) {
	for _, v := range TrackedVersions {
		if v.Key == key {
			return v, true
		}
	}
	return Version{}, false
}

// VersionByLabel finds a tracked version by its column label.
func VersionByLabel(label string) (Version, bool) {
	for _, v := range TrackedVersions {
		if v.Label == label {
			return v, true
		}
	}
	return Version{}, false
}

// IsTrackedVersionGroup reports whether name is one of TrackedVersionGroups.
func IsTrackedVersionGroup(name string) bool {
	for _, g := range TrackedVersionGroups {
		if g == name {
			return true
		}
	}
	return false
}

// VersionSet is the set of tracked version keys a species appears in.
type VersionSet map[string]struct{}

// Add inserts key if it is a tracked version and reports whether it did.
func (s VersionSet) Add(key string) bool {
	if _, ok := VersionByKey(key); !ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Has reports whether key is present.
func (s VersionSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the present keys in column order.
func (s VersionSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, v := range TrackedVersions {
		if s.Has(v.Key) {
			keys = append(keys, v.Key)
		}
	}
	return keys
}

// Matrix maps every column label to AvailableMark or "".
func (s VersionSet) Matrix() map[string]string {
	m := make(map[string]string, len(TrackedVersions))
	for _, v := range TrackedVersions {
		if s.Has(v.Key) {
			m[v.Label] = AvailableMark
		} else {
			m[v.Label] = ""
		}
	}
	return m
}

// AnyLabel reports whether any of the given versions is present.
func (s VersionSet) AnyLabel(versions []Version) bool {
	for _, v := range versions {
		if s.Has(v.Key) {
			return true
		}
	}
	return false
}

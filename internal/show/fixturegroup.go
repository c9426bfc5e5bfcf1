package show

// FixtureGroup is an ordered, duplicate-tolerant list of fixture ids
// (§3.5). Ordering is significant: resolution iterates fixtures in
// list order.
type FixtureGroup struct {
	ID        FixtureGroupId
	Name      string
	Fixtures  []FixtureId
}

// NewFixtureGroup constructs an empty, named fixture group.
func NewFixtureGroup(id FixtureGroupId, name string) *FixtureGroup {
	return &FixtureGroup{ID: id, Name: name}
}

// Add appends a fixture id to the end of the group.
func (g *FixtureGroup) Add(fid FixtureId) {
	g.Fixtures = append(g.Fixtures, fid)
}

// ReplaceAt overwrites the entry at index, failing with
// IndexOutOfBounds if index is out of range.
func (g *FixtureGroup) ReplaceAt(index int, fid FixtureId) error {
	if index < 0 || index >= len(g.Fixtures) {
		return IndexOutOfBoundsError(len(g.Fixtures), index)
	}
	g.Fixtures[index] = fid
	return nil
}

// Remove deletes the first occurrence of fid, no-op if absent.
func (g *FixtureGroup) Remove(fid FixtureId) {
	for i, f := range g.Fixtures {
		if f == fid {
			g.Fixtures = append(g.Fixtures[:i], g.Fixtures[i+1:]...)
			return
		}
	}
}

// RemoveAt deletes the entry at index, failing with IndexOutOfBounds
// if index is out of range.
func (g *FixtureGroup) RemoveAt(index int) error {
	if index < 0 || index >= len(g.Fixtures) {
		return IndexOutOfBoundsError(len(g.Fixtures), index)
	}
	g.Fixtures = append(g.Fixtures[:index], g.Fixtures[index+1:]...)
	return nil
}

// Clear empties the fixture list.
func (g *FixtureGroup) Clear() {
	g.Fixtures = nil
}

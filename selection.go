package pasteboard

// Selection tracks at most one selected object by id. Ids survive reordering,
// so raise and lower never move the selection to a different object.
type Selection struct {
	id string
}

// Set selects id.
func (sel *Selection) Set(id string) { sel.id = id }

// Clear drops the selection.
func (sel *Selection) Clear() { sel.id = "" }

// ID returns the selected id and whether there is one.
func (sel *Selection) ID() (string, bool) {
	return sel.id, sel.id != ""
}

// Is reports whether id is selected.
func (sel *Selection) Is(id string) bool {
	return id != "" && sel.id == id
}

// RaiseSelected raises the selected object. It reports whether the scene
// changed.
func (sel *Selection) RaiseSelected(s *Scene) bool {
	id, ok := sel.ID()
	return ok && s.Raise(id)
}

// LowerSelected lowers the selected object.
func (sel *Selection) LowerSelected(s *Scene) bool {
	id, ok := sel.ID()
	return ok && s.Lower(id)
}

// DeleteSelected removes the selected object and clears the selection.
func (sel *Selection) DeleteSelected(s *Scene) bool {
	id, ok := sel.ID()
	if !ok {
		return false
	}
	sel.Clear()
	return s.Delete(id)
}

package todo

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Day         *string
	Month       *string
	Year        *string
	Completed   *bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Day == nil &&
		p.Month == nil && p.Year == nil && p.Completed == nil
}

// Apply merges the non-nil fields into t and normalizes the result.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Day != nil {
		t.Day = *p.Day
	}
	if p.Month != nil {
		t.Month = *p.Month
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	t.Normalize()
}

package picker

// DataSource mediates between a Picker and the application's data model.
// Both methods are required. They must be side-effect-free from the
// picker's perspective: the picker may call TitleForRow any number of
// times for the same row while it is visible.
//
// The picker holds a non-owning reference to its data source. Clear the
// reference (SetDataSource(nil)) before destroying the data source.
type DataSource interface {
	// NumberOfRows returns the number of rows in the component.
	NumberOfRows(p *Picker) int

	// TitleForRow returns the string to display for the given row.
	// Rows are numbered top-to-bottom (vertical) or left-to-right
	// (horizontal), starting at zero.
	TitleForRow(p *Picker, row int) string
}

// Delegate receives selection notifications from a Picker.
// Exactly one DidSelectRow call is made per effective change to the
// selected row; sub-row jitter during dragging never notifies.
//
// The picker holds a non-owning reference to its delegate.
type Delegate interface {
	// DidSelectRow is called after the selected row changed, either from
	// a settled gesture or from SelectRow. For animated selections the
	// call is deferred until the settle animation completes.
	DidSelectRow(p *Picker, row int)
}

// Deselector is an optional extension of Delegate. When the delegate
// implements it, DidDeselectRow is called for the previously selected row
// immediately before DidSelectRow for the new one, and when a reload
// leaves the picker with no selection.
type Deselector interface {
	DidDeselectRow(p *Picker, row int)
}

// StaticSource is a DataSource backed by a fixed slice of titles.
// Mutate the slice and call ReloadComponent to change the rows.
type StaticSource []string

// NumberOfRows implements DataSource.
func (s StaticSource) NumberOfRows(*Picker) int { return len(s) }

// TitleForRow implements DataSource.
func (s StaticSource) TitleForRow(_ *Picker, row int) string {
	if row < 0 || row >= len(s) {
		return ""
	}
	return s[row]
}

// sourceCache caches the data source's row count between reloads.
//
// The count is fetched lazily on first access and held until invalidate.
// Row titles are intentionally not cached: they may be generated
// dynamically, and the picker only asks for the handful of visible rows
// per draw.
type sourceCache struct {
	count int
	valid bool
}

// rowCount returns the cached row count, fetching it from the data source
// if the cache was invalidated. A nil or misbehaving (negative count) data
// source reads as empty.
func (c *sourceCache) rowCount(p *Picker) int {
	if !c.valid {
		c.count = 0
		if p.dataSource != nil {
			if n := p.dataSource.NumberOfRows(p); n > 0 {
				c.count = n
			}
		}
		c.valid = true
	}
	return c.count
}

// invalidate clears the cached count so the next access re-fetches it.
func (c *sourceCache) invalidate() {
	c.valid = false
}

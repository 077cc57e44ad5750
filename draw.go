package picker

// Renderer consumes a finalized DrawList and pushes it to the GPU.
// The backend/opengl package provides an OpenGL 4.1 implementation.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Draw emits the picker's geometry for the current frame into dl.
// fontTexture is the renderer's font atlas (Renderer.FontTextureID).
//
// The selection band sits at the center of the frame; the row whose
// offset matches the current scroll offset is centered in it. Rows are
// laid out along the swipe axis and clipped to the frame, so only the
// visible window of rows is emitted and only those rows have their
// titles fetched from the data source.
func (p *Picker) Draw(dl *DrawList, fontTexture uint32) {
	f := p.frame
	if f.W <= 0 || f.H <= 0 {
		return
	}

	dl.SetTexture(0)
	dl.AddRect(f.X, f.Y, f.W, f.H, p.style.BackgroundColor)

	dl.PushClipRect(f.X, f.Y, f.X+f.W, f.Y+f.H)
	defer dl.PopClipRect()

	count := p.cache.rowCount(p)
	if count > 0 {
		p.drawRows(dl, fontTexture, count)
	}

	band := p.indicatorRect()
	dl.SetTexture(0)
	dl.AddRectOutline(band.X, band.Y, band.W, band.H, p.style.IndicatorColor, p.style.IndicatorThickness)
}

// indicatorRect returns the selection band rectangle, one row extent tall
// (or wide) and centered in the frame along the swipe axis.
func (p *Picker) indicatorRect() Rect {
	f := p.frame
	if p.orientation == OrientationHorizontal {
		return Rect{X: f.X + (f.W-p.rowExtent)/2, Y: f.Y, W: p.rowExtent, H: f.H}
	}
	return Rect{X: f.X, Y: f.Y + (f.H-p.rowExtent)/2, W: f.W, H: p.rowExtent}
}

func (p *Picker) drawRows(dl *DrawList, fontTexture uint32, count int) {
	f := p.frame
	extent := p.rowExtent

	span := f.H
	if p.orientation == OrientationHorizontal {
		span = f.W
	}

	// Row i's cell starts at bandStart + i*extent - offset along the axis.
	// Solve for the rows whose cells intersect the frame.
	bandStart := (span - extent) / 2
	first := int(floorf((p.engine.offset - bandStart - extent) / extent))
	last := first + int(span/extent) + 2

	centered := nearestRow(p.engine.offset, extent, 0)

	dl.SetTexture(fontTexture)
	for i := first; i <= last; i++ {
		row := i
		if p.looping {
			row = wrapIndex(i, count)
		} else if i < 0 || i >= count {
			continue
		}

		axisPos := bandStart + float32(i)*extent - p.engine.offset
		var cell Rect
		if p.orientation == OrientationHorizontal {
			cell = Rect{X: f.X + axisPos, Y: f.Y, W: extent, H: f.H}
		} else {
			cell = Rect{X: f.X, Y: f.Y + axisPos, W: f.W, H: extent}
		}

		color := p.style.RowTextColor
		switch {
		case i == centered && !p.engine.idle():
			color = p.style.SelectedTextColor
		case row == p.selectedRow && p.engine.idle():
			color = p.style.SelectedTextColor
		case absf32(axisPos-bandStart) > extent:
			color = p.style.DimmedTextColor
		}

		title := ""
		if p.dataSource != nil {
			title = p.dataSource.TitleForRow(p, row)
		}
		if title == "" {
			continue
		}

		cw := p.style.CharWidth * p.style.FontScale
		ch := p.style.CharHeight * p.style.FontScale
		textW := float32(len(title)) * cw
		tx := cell.X + (cell.W-textW)/2
		ty := cell.Y + (cell.H-ch)/2
		dl.AddText(tx, ty, title, color, p.style.FontScale, p.style.CharWidth, p.style.CharHeight)
	}
}

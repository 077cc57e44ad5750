package picker

// Style defines the visual appearance of the picker.
type Style struct {
	// Colors
	BackgroundColor   uint32
	RowTextColor      uint32
	DimmedTextColor   uint32 // Rows outside the selection band
	SelectedTextColor uint32
	IndicatorColor    uint32 // Selection band outline

	// Sizing
	IndicatorThickness float32
	FontScale          float32
	CharWidth          float32
	CharHeight         float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		BackgroundColor:   RGBA(20, 20, 20, 230),
		RowTextColor:      ColorLightGray,
		DimmedTextColor:   ColorGray,
		SelectedTextColor: ColorWhite,
		IndicatorColor:    RGBA(50, 100, 150, 255),

		IndicatorThickness: 1,
		FontScale:          1.0,
		CharWidth:          8,
		CharHeight:         8,
	}
}

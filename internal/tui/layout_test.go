package tui

import "testing"

func TestCalculatePaneDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"standard", 80, 24},
		{"wide", 200, 50},
		{"minimum", MinTerminalWidth, MinTerminalHeight},
		{"odd width", 83, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := CalculatePaneDimensions(tt.width, tt.height)

			total := dims.PickerWidth + dims.InlineWidth + dims.MiniWidth
			if total != tt.width {
				t.Errorf("pane widths sum to %d, want %d", total, tt.width)
			}
			if dims.PaneHeight+dims.StatusHeight != tt.height {
				t.Errorf("pane height %d + status %d, want %d",
					dims.PaneHeight, dims.StatusHeight, tt.height)
			}
		})
	}
}

func TestCalculatePaneDimensionsDegenerate(t *testing.T) {
	dims := CalculatePaneDimensions(0, 0)
	if dims.PickerWidth < 0 || dims.InlineWidth < 0 || dims.MiniWidth < 0 {
		t.Errorf("negative pane width: %+v", dims)
	}
	if dims.PaneHeight < 0 {
		t.Errorf("negative pane height: %d", dims.PaneHeight)
	}
}

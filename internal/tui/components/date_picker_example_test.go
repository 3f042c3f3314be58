package components_test

import (
	"fmt"
	"time"

	"github.com/rustpress-net/almanac/internal/calendar"
	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/rustpress-net/almanac/internal/tui/components"
)

// ExampleDatePicker demonstrates the open/close lifecycle.
func ExampleDatePicker() {
	dp := components.NewDatePicker(calendar.Options{})
	dp.SetViewport(80, 24)

	fmt.Println("Open:", dp.IsOpen())

	// Opening returns a command that repositions the popover once its
	// rendered size is known.
	dp.Open()
	fmt.Println("Open:", dp.IsOpen())

	dp.Close()
	fmt.Println("Open:", dp.IsOpen())

	// Output:
	// Open: false
	// Open: true
	// Open: false
}

// ExampleDatePicker_value demonstrates the controlled value.
func ExampleDatePicker_value() {
	var selected *time.Time
	dp := components.NewDatePicker(calendar.Options{
		Format:   "MMMM d, yyyy",
		OnChange: func(value *time.Time) { selected = value },
	})

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	dp.SetValue(&date)

	fmt.Println(datemath.Format(*dp.Value(), "MMMM d, yyyy", nil))

	dp.Clear()
	fmt.Println("Value after clear:", dp.Value())
	fmt.Println("Callback saw:", selected)

	// Output:
	// March 5, 2024
	// Value after clear: <nil>
	// Callback saw: <nil>
}

package reservation

import "fmt"

// Slots returns the bookable time grid: half-hour marks for hours 11
// through 22, zero-padded HH:MM. The grid is fixed and regenerated per
// call, never persisted.
func Slots() []string {
	slots := make([]string, 0, 24)
	for hour := 11; hour <= 22; hour++ {
		for min := 0; min < 60; min += 30 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, min))
		}
	}
	return slots
}

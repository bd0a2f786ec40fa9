package domain

// Day is the per-date record of which campaign, if any, occupies each
// location. A missing row means all five locations are free; once created
// a row is only mutated, never deleted. Slots holds entries only for
// occupied locations.
type Day struct {
	Date  Date
	Slots map[Location]int64
}

package domain

// Location is one of the five fixed advertising slots available per
// calendar day. The set is closed; it is never extended at runtime.
type Location string

const (
	Location1 Location = "LOCATION_1"
	Location2 Location = "LOCATION_2"
	Location3 Location = "LOCATION_3"
	Location4 Location = "LOCATION_4"
	Location5 Location = "LOCATION_5"
)

// Locations lists all slots in display order.
func Locations() []Location {
	return []Location{Location1, Location2, Location3, Location4, Location5}
}

// ParseLocation validates a raw location string against the closed set.
// Unknown values return ErrUnknownLocation.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case Location1, Location2, Location3, Location4, Location5:
		return Location(s), nil
	default:
		return "", ErrUnknownLocation
	}
}

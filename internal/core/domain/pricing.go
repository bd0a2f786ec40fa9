package domain

// PricePerDayPerLocation is the flat price of one location for one day,
// in integer currency units. No per-location variation, no bulk discount.
const PricePerDayPerLocation int64 = 50

// Cost returns the price of booking one location for numDays days.
func Cost(numDays int) int64 {
	return PricePerDayPerLocation * int64(numDays)
}

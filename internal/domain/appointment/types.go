package appointment

type AvailabilityInput struct {
	ServiceID uint
	Date      string // YYYY-MM-DD
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

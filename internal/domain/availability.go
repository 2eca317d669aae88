package domain

type Availability struct {
	Capacity       int `json:"capacity"`
	ConfirmedCount int `json:"confirmed_count"`
	FreeSpots      int `json:"free_spots"`
}

// NewAvailability never reports negative free spots, even if the confirmed
// count somehow exceeds capacity.
func NewAvailability(capacity, confirmed int) Availability {
	free := capacity - confirmed
	if free < 0 {
		free = 0
	}
	return Availability{
		Capacity:       capacity,
		ConfirmedCount: confirmed,
		FreeSpots:      free,
	}
}

func (a Availability) IsFull() bool {
	return a.ConfirmedCount >= a.Capacity
}

package resident

// Resident is a unit occupant who may file complaints. Residents are created
// at seed/import time with externally assigned ids and are immutable here.
type Resident struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Email string `json:"email"`
}

package model

// Snapshot is the full persisted state: three ordered collections serialized
// as one JSON document. It is re-read from disk on every store operation and
// written back in full after every mutation.
type Snapshot struct {
	Patients     []Patient     `json:"patients"`
	Appointments []Appointment `json:"appointments"`
	Checkups     []Checkup     `json:"checkups"`
}

// EmptySnapshot returns a snapshot with all three collections present and
// empty, matching the on-disk shape written on first start.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Patients:     []Patient{},
		Appointments: []Appointment{},
		Checkups:     []Checkup{},
	}
}

// Package record persists the PyVengers collection as a single JSON file.
package record

// Record is one stored PyVenger. Field order here is the key order on disk.
type Record struct {
	Name       string `json:"name"`
	Superpower string `json:"superpower"`
	Mission    string `json:"mission"`
}

// New builds a Record from its three fields.
func New(name, superpower, mission string) Record {
	return Record{Name: name, Superpower: superpower, Mission: mission}
}

// Package models defines the core data structures of the device inventory.
// It includes the input document types and the derived report summaries.
package models

type Inventory struct {
	Company     string     `json:"company"`
	LastUpdated string     `json:"last_updated"`
	Locations   []Location `json:"locations"`
}

type Location struct {
	Site    string   `json:"site"`
	City    string   `json:"city"`
	Contact string   `json:"contact"`
	Devices []Device `json:"devices"`
}

// Device is one network element as it appears in the source document. The
// records are loosely typed on purpose: any field may be missing or carry an
// unexpected shape, and the accessors in device.go apply the defaults.
type Device map[string]any

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusWarning = "warning"

	TypeSwitch  = "switch"
	TypeUnknown = "unknown"
)

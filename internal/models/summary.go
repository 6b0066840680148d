// Package models defines the core data structures of the device inventory.
// It includes the input document types and the derived report summaries.
package models

// Summary holds every aggregate derived from one flattened device list.
// All fields are recomputed on each run; none of them feed back into the
// source records.
type Summary struct {
	TotalDevices    int
	Offline         []Device
	Warning         []Device
	LowUptime       []Device
	ByType          map[string]int
	VLANs           []int
	Ports           PortUsage
	SitePorts       map[string]*SitePortUsage
	HighUtilization []SwitchUtilization
	SiteStatus      map[string]*SiteSummary
}

// PortUsage is the port total across all switch devices.
type PortUsage struct {
	Used  int
	Total int
}

// SitePortUsage is the port total for the switch devices of one site.
type SitePortUsage struct {
	Switches int
	Used     int
	Total    int
}

// SwitchUtilization pairs a switch device with its computed port usage.
type SwitchUtilization struct {
	Device Device
	Used   int
	Total  int
	Pct    float64
}

// SiteSummary counts the devices of one site. ByStatus grows a counter for
// every distinct status string encountered, not just the well-known three.
type SiteSummary struct {
	Total    int
	ByStatus map[string]int
}

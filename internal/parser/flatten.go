// Package parser turns the raw inventory document into a flat device list.
// It handles JSON decoding and the per-location enrichment of each record.
package parser

import (
	"maps"

	"github.com/netrapport/core/internal/models"
)

// FlattenDevices collapses the location hierarchy into one device list in
// document order, annotating each record with its site, city and contact
// under the _site/_city/_contact keys. The source records are copied, never
// mutated.
func FlattenDevices(inv *models.Inventory) []models.Device {
	var devices []models.Device
	for _, loc := range inv.Locations {
		for _, src := range loc.Devices {
			dev := make(models.Device, len(src)+3)
			maps.Copy(dev, src)
			dev["_site"] = loc.Site
			dev["_city"] = loc.City
			dev["_contact"] = loc.Contact
			devices = append(devices, dev)
		}
	}
	return devices
}

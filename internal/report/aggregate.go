// Package report computes the aggregates of the operational report and
// renders them as fixed-width text.
package report

import (
	"cmp"
	"slices"

	"github.com/netrapport/core/internal/models"
)

const (
	LowUptimeDays   = 30
	HighPortUtilPct = 80.0
)

// Percent is the port utilization of used out of total ports. A total of
// zero yields 0.0 rather than an error.
func Percent(used, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(used) / float64(total) * 100.0
}

func FilterByStatus(devices []models.Device, status string) []models.Device {
	var matched []models.Device
	for _, d := range devices {
		if d.Status() == status {
			matched = append(matched, d)
		}
	}
	return matched
}

// LowUptime returns the devices whose uptime is strictly below threshold,
// sorted ascending by uptime. Ties keep document order.
func LowUptime(devices []models.Device, threshold int) []models.Device {
	var matched []models.Device
	for _, d := range devices {
		if d.UptimeDays() < threshold {
			matched = append(matched, d)
		}
	}
	slices.SortStableFunc(matched, func(a, b models.Device) int {
		return cmp.Compare(a.UptimeDays(), b.UptimeDays())
	})
	return matched
}

func CountByType(devices []models.Device) map[string]int {
	counts := make(map[string]int)
	for _, d := range devices {
		counts[d.Type()]++
	}
	return counts
}

// UniqueVLANs is the union of every device's VLAN ids, deduplicated and
// sorted ascending.
func UniqueVLANs(devices []models.Device) []int {
	seen := make(map[int]struct{})
	for _, d := range devices {
		for _, v := range d.VLANs() {
			seen[v] = struct{}{}
		}
	}
	vlans := make([]int, 0, len(seen))
	for v := range seen {
		vlans = append(vlans, v)
	}
	slices.Sort(vlans)
	return vlans
}

func SwitchDevices(devices []models.Device) []models.Device {
	var switches []models.Device
	for _, d := range devices {
		if d.IsSwitch() {
			switches = append(switches, d)
		}
	}
	return switches
}

func PortTotals(devices []models.Device) models.PortUsage {
	var usage models.PortUsage
	for _, d := range SwitchDevices(devices) {
		used, total := d.PortCounts()
		usage.Used += used
		usage.Total += total
	}
	return usage
}

func PortUsageBySite(devices []models.Device) map[string]*models.SitePortUsage {
	sites := make(map[string]*models.SitePortUsage)
	for _, d := range SwitchDevices(devices) {
		su := sites[d.Site()]
		if su == nil {
			su = &models.SitePortUsage{}
			sites[d.Site()] = su
		}
		used, total := d.PortCounts()
		su.Switches++
		su.Used += used
		su.Total += total
	}
	return sites
}

// HighUtilization returns the switch devices whose individual port usage
// strictly exceeds minPct, sorted descending by percentage. Ties keep
// document order.
func HighUtilization(devices []models.Device, minPct float64) []models.SwitchUtilization {
	var high []models.SwitchUtilization
	for _, d := range SwitchDevices(devices) {
		used, total := d.PortCounts()
		pct := Percent(used, total)
		if pct > minPct {
			high = append(high, models.SwitchUtilization{Device: d, Used: used, Total: total, Pct: pct})
		}
	}
	slices.SortStableFunc(high, func(a, b models.SwitchUtilization) int {
		return cmp.Compare(b.Pct, a.Pct)
	})
	return high
}

func StatusBySite(devices []models.Device) map[string]*models.SiteSummary {
	sites := make(map[string]*models.SiteSummary)
	for _, d := range devices {
		ss := sites[d.Site()]
		if ss == nil {
			ss = &models.SiteSummary{ByStatus: make(map[string]int)}
			sites[d.Site()] = ss
		}
		ss.Total++
		ss.ByStatus[d.Status()]++
	}
	return sites
}

// BuildSummary runs every aggregate over the flattened device list. Each
// aggregate is an independent pass; none of them mutates the input.
func BuildSummary(devices []models.Device) *models.Summary {
	return &models.Summary{
		TotalDevices:    len(devices),
		Offline:         FilterByStatus(devices, models.StatusOffline),
		Warning:         FilterByStatus(devices, models.StatusWarning),
		LowUptime:       LowUptime(devices, LowUptimeDays),
		ByType:          CountByType(devices),
		VLANs:           UniqueVLANs(devices),
		Ports:           PortTotals(devices),
		SitePorts:       PortUsageBySite(devices),
		HighUtilization: HighUtilization(devices, HighPortUtilPct),
		SiteStatus:      StatusBySite(devices),
	}
}

// Package report computes the aggregates of the operational report and
// renders them as fixed-width text.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/netrapport/core/internal/models"
)

const lineWidth = 80

var (
	heavyRule = strings.Repeat("=", lineWidth)
	lightRule = strings.Repeat("-", lineWidth)

	deviceTableWidths = []int{16, 15, 13, 18, 10}
)

// Render produces the report as a list of lines. The caller joins them
// with newlines; no trailing newline is implied.
func Render(inv *models.Inventory, s *models.Summary, now time.Time) []string {
	var lines []string
	lines = append(lines, renderHeader(inv, now)...)
	lines = append(lines, renderExecutiveSummary(s)...)
	lines = append(lines, renderDeviceTable("ENHETER MED STATUS: OFFLINE", s.Offline)...)
	lines = append(lines, renderDeviceTable("ENHETER MED STATUS: WARNING", s.Warning)...)
	lines = append(lines, renderLowUptime(s.LowUptime)...)
	lines = append(lines, renderTypeCounts(s.ByType, s.TotalDevices)...)
	lines = append(lines, renderPortUsage(s.Ports, s.SitePorts)...)
	lines = append(lines, renderHighUtilization(s.HighUtilization)...)
	lines = append(lines, renderVLANs(s.VLANs)...)
	lines = append(lines, renderSiteStatus(s.SiteStatus)...)
	lines = append(lines, heavyRule, "RAPPORT SLUT", heavyRule)
	return lines
}

func renderHeader(inv *models.Inventory, now time.Time) []string {
	company := inv.Company
	if company == "" {
		company = "Unknown"
	}
	return []string{
		heavyRule,
		center("NÄTVERKSRAPPORT - "+company, lineWidth),
		heavyRule,
		"Rapportdatum: " + now.Format("2006-01-02 15:04"),
		"Datauppdatering: " + inv.LastUpdated,
		"",
	}
}

func renderExecutiveSummary(s *models.Summary) []string {
	return []string{
		"EXECUTIVE SUMMARY",
		lightRule,
		fmt.Sprintf("KRITISKT: %d enheter offline", len(s.Offline)),
		fmt.Sprintf("VARNING:  %d enheter med warning-status", len(s.Warning)),
		fmt.Sprintf("OBS:     %d enheter med låg uptime (<%d dagar)", len(s.LowUptime), LowUptimeDays),
		fmt.Sprintf("OBS:     %d switchar över %.0f%% portanvändning", len(s.HighUtilization), HighPortUtilPct),
		"",
	}
}

func renderDeviceTable(title string, devices []models.Device) []string {
	lines := []string{title, lightRule}
	if len(devices) == 0 {
		return append(lines, "Inga.", "")
	}
	dashes := make([]string, len(deviceTableWidths))
	for i, w := range deviceTableWidths {
		dashes[i] = strings.Repeat("-", w)
	}
	lines = append(lines,
		formatRow([]string{"Hostname", "IP", "Typ", "Site", "Uptime"}, deviceTableWidths),
		formatRow(dashes, deviceTableWidths),
	)
	for _, d := range devices {
		lines = append(lines, formatRow([]string{
			d.Hostname(),
			d.IPAddress(),
			d.Type(),
			d.Site(),
			fmt.Sprintf("%d d", d.UptimeDays()),
		}, deviceTableWidths))
	}
	return append(lines, "")
}

func renderLowUptime(devices []models.Device) []string {
	lines := []string{
		fmt.Sprintf("ENHETER MED LÅG UPTIME (<%d dagar)", LowUptimeDays),
		lightRule,
	}
	if len(devices) == 0 {
		lines = append(lines, "Inga.")
	}
	for _, d := range devices {
		lines = append(lines, fmt.Sprintf("%s %4d dagar  %s  %s",
			padRight(d.Hostname(), 16), d.UptimeDays(), padLeft(d.Status(), 7), d.Site()))
	}
	return append(lines, "")
}

func renderTypeCounts(byType map[string]int, total int) []string {
	lines := []string{"STATISTIK PER ENHETSTYP", lightRule}
	for _, t := range sortedKeys(byType) {
		lines = append(lines, fmt.Sprintf("%s: %3d st", padRight(t, 15), byType[t]))
	}
	return append(lines,
		strings.Repeat("-", 40),
		fmt.Sprintf("%s: %3d enheter", padRight("TOTALT", 15), total),
		"",
	)
}

func renderPortUsage(ports models.PortUsage, sites map[string]*models.SitePortUsage) []string {
	lines := []string{
		"PORTANVÄNDNING – SWITCHAR",
		lightRule,
		fmt.Sprintf("Totalt: %d/%d portar används (%.1f%%)", ports.Used, ports.Total, Percent(ports.Used, ports.Total)),
		"",
		"Per site:",
	}
	for _, site := range sortedKeys(sites) {
		su := sites[site]
		lines = append(lines, fmt.Sprintf("  %s  switchar: %2d  %3d/%-3d  %5.1f%%",
			padRight(site, 18), su.Switches, su.Used, su.Total, Percent(su.Used, su.Total)))
	}
	return append(lines, "")
}

func renderHighUtilization(high []models.SwitchUtilization) []string {
	lines := []string{
		fmt.Sprintf("SWITCHAR ÖVER %.0f%% PORTANVÄNDNING", HighPortUtilPct),
		lightRule,
	}
	if len(high) == 0 {
		lines = append(lines, "Inga.")
	}
	for _, su := range high {
		lines = append(lines, fmt.Sprintf("%s %2d/%-2d  %5.1f%%  %s",
			padRight(su.Device.Hostname(), 16), su.Used, su.Total, su.Pct, su.Device.Site()))
	}
	return append(lines, "")
}

func renderVLANs(vlans []int) []string {
	ids := make([]string, len(vlans))
	for i, v := range vlans {
		ids[i] = strconv.Itoa(v)
	}
	return []string{
		"VLAN-ÖVERSIKT",
		lightRule,
		fmt.Sprintf("Totalt antal unika VLAN: %d", len(vlans)),
		"VLANs: " + strings.Join(ids, ", "),
		"",
	}
}

func renderSiteStatus(sites map[string]*models.SiteSummary) []string {
	lines := []string{"STATISTIK PER SITE", lightRule}
	for _, site := range sortedKeys(sites) {
		ss := sites[site]
		lines = append(lines, fmt.Sprintf("%s: %d (online: %d, offline: %d, warning: %d)",
			site, ss.Total,
			ss.ByStatus[models.StatusOnline],
			ss.ByStatus[models.StatusOffline],
			ss.ByStatus[models.StatusWarning]))
	}
	return append(lines, "")
}

func formatRow(cols []string, widths []int) string {
	padded := make([]string, len(cols))
	for i, c := range cols {
		padded[i] = padRight(c, widths[i])
	}
	return strings.Join(padded, "  ")
}

// sortedKeys returns the map's keys in ascending order. It stands in for
// slices.Sorted(maps.Keys(m)), which needs a newer Go than this build targets.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// The fmt verbs pad by byte count, which misaligns columns holding
// multi-byte characters. These helpers pad by rune count instead.

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

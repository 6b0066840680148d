// Package models defines the core data structures of the device inventory.
// It includes the input document types and the derived report summaries.
package models

import (
	"strconv"
	"strings"
)

func (d Device) Hostname() string {
	return stringValue(d["hostname"])
}

func (d Device) IPAddress() string {
	return stringValue(d["ip_address"])
}

// Type returns the device type, or "unknown" when the field is absent.
func (d Device) Type() string {
	if s, ok := d["type"].(string); ok {
		return s
	}
	return TypeUnknown
}

// Status returns the device status, or "online" when the field is absent.
func (d Device) Status() string {
	if s, ok := d["status"].(string); ok {
		return s
	}
	return StatusOnline
}

func (d Device) UptimeDays() int {
	n, ok := toInt(d["uptime_days"])
	if !ok {
		return 0
	}
	return n
}

// VLANs returns the device's VLAN ids coerced to integers. Entries that
// cannot be coerced contribute nothing, as does a missing or malformed field.
func (d Device) VLANs() []int {
	raw, ok := d["vlans"].([]any)
	if !ok {
		return nil
	}
	vlans := make([]int, 0, len(raw))
	for _, v := range raw {
		if n, ok := toInt(v); ok {
			vlans = append(vlans, n)
		}
	}
	return vlans
}

// IsSwitch reports whether the device takes part in port computations:
// its type must be "switch" and its ports field must be a JSON object.
func (d Device) IsSwitch() bool {
	if d.Type() != TypeSwitch {
		return false
	}
	_, ok := d.ports()
	return ok
}

// PortCounts returns the used and total port counts, each defaulting to 0
// when missing or invalid. A device without a well-formed ports mapping
// reports 0/0.
func (d Device) PortCounts() (used, total int) {
	m, ok := d.ports()
	if !ok {
		return 0, 0
	}
	used, _ = toInt(m["used"])
	total, _ = toInt(m["total"])
	return used, total
}

func (d Device) Site() string {
	return stringValue(d["_site"])
}

func (d Device) City() string {
	return stringValue(d["_city"])
}

func (d Device) Contact() string {
	return stringValue(d["_contact"])
}

func (d Device) ports() (map[string]any, bool) {
	m, ok := d["ports"].(map[string]any)
	return m, ok
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// toInt coerces the value shapes a JSON document (or a hand-built record)
// can carry for a numeric field. Fractions truncate toward zero.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

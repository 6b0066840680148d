// Package parser turns the raw inventory document into a flat device list.
// It handles JSON decoding and the per-location enrichment of each record.
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netrapport/core/internal/models"
)

func TestFlattenDevices(t *testing.T) {
	t.Run("annotates each record with its location", func(t *testing.T) {
		inv := &models.Inventory{
			Locations: []models.Location{
				{
					Site:    "Stockholm HQ",
					City:    "Stockholm",
					Contact: "it-drift@nordictech.se",
					Devices: []models.Device{
						{"hostname": "sw-sthlm-core-01"},
					},
				},
			},
		}

		devices := FlattenDevices(inv)

		require.Len(t, devices, 1)
		assert.Equal(t, "sw-sthlm-core-01", devices[0].Hostname())
		assert.Equal(t, "Stockholm HQ", devices[0].Site())
		assert.Equal(t, "Stockholm", devices[0].City())
		assert.Equal(t, "it-drift@nordictech.se", devices[0].Contact())
	})

	t.Run("keeps document order across locations", func(t *testing.T) {
		inv := &models.Inventory{
			Locations: []models.Location{
				{Site: "Nord", Devices: []models.Device{
					{"hostname": "a"},
					{"hostname": "b"},
				}},
				{Site: "Syd", Devices: []models.Device{
					{"hostname": "c"},
				}},
			},
		}

		devices := FlattenDevices(inv)

		require.Len(t, devices, 3)
		assert.Equal(t, "a", devices[0].Hostname())
		assert.Equal(t, "b", devices[1].Hostname())
		assert.Equal(t, "c", devices[2].Hostname())
		assert.Equal(t, "Nord", devices[1].Site())
		assert.Equal(t, "Syd", devices[2].Site())
	})

	t.Run("empty inventory yields no devices", func(t *testing.T) {
		devices := FlattenDevices(&models.Inventory{})
		assert.Empty(t, devices)
	})

	t.Run("location without devices contributes nothing", func(t *testing.T) {
		inv := &models.Inventory{
			Locations: []models.Location{
				{Site: "Nord"},
				{Site: "Syd", Devices: []models.Device{{"hostname": "c"}}},
			},
		}

		devices := FlattenDevices(inv)

		require.Len(t, devices, 1)
		assert.Equal(t, "Syd", devices[0].Site())
	})

	t.Run("null device entry becomes an annotated empty record", func(t *testing.T) {
		inv := &models.Inventory{
			Locations: []models.Location{
				{Site: "Nord", Devices: []models.Device{nil}},
			},
		}

		devices := FlattenDevices(inv)

		require.Len(t, devices, 1)
		assert.Equal(t, "", devices[0].Hostname())
		assert.Equal(t, "Nord", devices[0].Site())
		assert.Equal(t, models.StatusOnline, devices[0].Status())
	})

	t.Run("source records are not mutated", func(t *testing.T) {
		src := models.Device{"hostname": "sw-01"}
		inv := &models.Inventory{
			Locations: []models.Location{
				{Site: "Nord", Devices: []models.Device{src}},
			},
		}

		FlattenDevices(inv)

		assert.Equal(t, models.Device{"hostname": "sw-01"}, src)
		assert.NotContains(t, src, "_site")
	})

	t.Run("annotation wins over colliding document keys", func(t *testing.T) {
		inv := &models.Inventory{
			Locations: []models.Location{
				{Site: "Nord", Devices: []models.Device{
					{"hostname": "sw-01", "_site": "spoofed"},
				}},
			},
		}

		devices := FlattenDevices(inv)

		assert.Equal(t, "Nord", devices[0].Site())
	})

	t.Run("duplicate hostnames are kept as separate records", func(t *testing.T) {
		inv := &models.Inventory{
			Locations: []models.Location{
				{Site: "Nord", Devices: []models.Device{{"hostname": "sw-01"}}},
				{Site: "Syd", Devices: []models.Device{{"hostname": "sw-01"}}},
			},
		}

		devices := FlattenDevices(inv)

		require.Len(t, devices, 2)
		assert.Equal(t, "Nord", devices[0].Site())
		assert.Equal(t, "Syd", devices[1].Site())
	})
}

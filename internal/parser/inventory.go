// Package parser turns the raw inventory document into a flat device list.
// It handles JSON decoding and the per-location enrichment of each record.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/netrapport/core/internal/models"
)

func ParseInventory(data []byte) (*models.Inventory, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty inventory data")
	}

	var inv models.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory: %w", err)
	}

	return &inv, nil
}

package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/ir"
	"github.com/roach88/giftcheck/internal/pkm"
)

// marshalTemplate converts a template to canonical JSON TEXT for storage.
func marshalTemplate(g gift.Gift) (string, error) {
	val, err := ir.FromStruct(g)
	if err != nil {
		return "", fmt.Errorf("marshal template: %w", err)
	}
	data, err := ir.MarshalCanonical(val)
	if err != nil {
		return "", fmt.Errorf("marshal template: %w", err)
	}
	return string(data), nil
}

// unmarshalTemplate decodes stored template JSON into the variant for
// generation. The variants' own decoders seed wildcards for any field the
// stored JSON omits.
func unmarshalTemplate(generation int, data string) (gift.Gift, error) {
	var g gift.Gift
	switch generation {
	case 3:
		g = &gift.WC3{}
	case 4:
		g = &gift.PCD{}
	case 5:
		g = &gift.PGF{}
	case 6:
		g = &gift.WC6{}
	case 7:
		g = &gift.WC7{}
	default:
		return nil, fmt.Errorf("unmarshal template: unknown generation %d", generation)
	}
	if err := json.Unmarshal([]byte(data), g); err != nil {
		return nil, fmt.Errorf("unmarshal template: %w", err)
	}
	return g, nil
}

// marshalRecord converts a record to canonical JSON TEXT for storage.
func marshalRecord(rec *pkm.Record) (string, error) {
	val, err := ir.FromStruct(rec)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	data, err := ir.MarshalCanonical(val)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(data), nil
}

// unmarshalRecord parses stored record JSON.
func unmarshalRecord(data string) (*pkm.Record, error) {
	var rec pkm.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &rec, nil
}

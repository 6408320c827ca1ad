package store

import "github.com/roach88/giftcheck/internal/pkm"

// ImportSummary describes a completed catalog import.
type ImportSummary struct {
	CatalogHash string `json:"catalog_hash"`
	Gifts       int    `json:"gifts"`
	Evolutions  int    `json:"evolutions"`
}

// MatchRun is one recorded evaluation of a record against a catalog.
type MatchRun struct {
	ID            string        `json:"id"`
	Seq           int64         `json:"seq"`
	RecordHash    string        `json:"record_hash"`
	Record        *pkm.Record   `json:"record"`
	CatalogHash   string        `json:"catalog_hash"`
	EngineVersion string        `json:"engine_version"`
	IRVersion     string        `json:"ir_version"`
	Results       []MatchResult `json:"results"`
}

// MatchResult is one gift a run yielded, in yield order.
type MatchResult struct {
	Position   int    `json:"position"`
	GiftID     string `json:"gift_id"`
	Generation int    `json:"generation"`
	CardID     int    `json:"card_id"`
	Title      string `json:"title"`
	Outcome    string `json:"outcome"` // "exact" or "deferred"
}

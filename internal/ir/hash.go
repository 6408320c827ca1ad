package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainGift    = "giftcheck/gift/v1"
	DomainRecord  = "giftcheck/record/v1"
	DomainCatalog = "giftcheck/catalog/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HashValue lifts v and hashes its canonical form under domain.
func HashValue(domain string, v any) (string, error) {
	val, err := FromStruct(v)
	if err != nil {
		return "", err
	}
	canonical, err := MarshalCanonical(val)
	if err != nil {
		return "", err
	}
	return hashWithDomain(domain, canonical), nil
}

// GiftID computes the content-addressed ID of a template. The generation
// is part of the identity because identical field values mean different
// things in different generations.
func GiftID(generation int, template any) (string, error) {
	body, err := FromStruct(template)
	if err != nil {
		return "", fmt.Errorf("GiftID: %w", err)
	}

	obj := IRObject{
		"generation": IRInt(generation),
		"template":   body,
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("GiftID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainGift, canonical), nil
}

// RecordHash computes the content hash of a creature record.
func RecordHash(rec any) (string, error) {
	h, err := HashValue(DomainRecord, rec)
	if err != nil {
		return "", fmt.Errorf("RecordHash: %w", err)
	}
	return h, nil
}

// CatalogHash identifies a whole catalog by the ordered IDs of its
// templates. Order matters: it decides match output order.
func CatalogHash(giftIDs []string) string {
	arr := make(IRArray, len(giftIDs))
	for i, id := range giftIDs {
		arr[i] = IRString(id)
	}
	// An array of strings always marshals.
	canonical, _ := MarshalCanonical(arr)
	return hashWithDomain(DomainCatalog, canonical)
}

// MustGiftID is like GiftID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustGiftID(generation int, template any) string {
	id, err := GiftID(generation, template)
	if err != nil {
		panic(err)
	}
	return id
}

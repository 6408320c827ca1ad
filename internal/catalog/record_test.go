package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/giftcheck/internal/pkm"
)

func TestLoadRecord_YAML(t *testing.T) {
	rec, err := LoadRecord(testdata("records/jirachi.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 385, rec.Species)
	assert.Equal(t, pkm.PK3, rec.Container)
	assert.Equal(t, pkm.Ruby, rec.Version)
	assert.Equal(t, "WISHMKR", rec.OTName)
	assert.Equal(t, uint32(0x12345678), rec.PID)
	assert.Equal(t, 3, rec.OriginGeneration())
	assert.True(t, rec.IsNative())
}

func TestLoadRecord_CUE(t *testing.T) {
	rec, err := LoadRecord(testdata("records/rockruff.cue"))
	require.NoError(t, err)

	assert.Equal(t, 745, rec.Species)
	assert.Equal(t, 2, rec.Form)
	assert.Equal(t, pkm.UltraSun, rec.Version)
}

func TestLoadRecord_Errors(t *testing.T) {
	_, err := LoadRecord(testdata("records/bad_container.json"))
	assertCode(t, ErrCodeInvalidRecord, err)

	_, err = LoadRecord(testdata("records/unknown_field.json"))
	assertCode(t, ErrCodeDecode, err)
	assert.Contains(t, err.Error(), "shiny")

	_, err = LoadRecord(testdata("records/missing.yaml"))
	assertCode(t, ErrCodeNotFound, err)
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     pkm.Record
		wantErr string
	}{
		{"ok", pkm.Record{Species: 1, Container: pkm.PK4, Version: pkm.Ruby}, ""},
		{"explicit generation", pkm.Record{Species: 1, Container: pkm.PK7, Generation: 7}, ""},
		{"container", pkm.Record{Species: 1, Container: "pk2", Version: pkm.Ruby}, "unknown container"},
		{"species", pkm.Record{Container: pkm.PK3, Version: pkm.Ruby}, "species"},
		{"no origin", pkm.Record{Species: 1, Container: pkm.PK3}, "origin generation"},
		{"from the future", pkm.Record{Species: 1, Container: pkm.PK3, Version: pkm.Diamond}, "cannot be stored"},
		{"unknown version", pkm.Record{Species: 1, Container: pkm.PK3, Version: 9}, "unknown version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(&tt.rec)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord([]byte("species: 151\ncontainer: pk3\nversion: E\n"), "inline.yaml")
	require.NoError(t, err)
	assert.Equal(t, 151, rec.Species)
	assert.Equal(t, pkm.Emerald, rec.Version)

	_, err = ParseRecord([]byte("species: [\n"), "inline.yaml")
	assertCode(t, ErrCodeParseFailed, err)
}

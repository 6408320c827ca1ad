package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIRValueSealed(t *testing.T) {
	var _ IRValue = IRString("")
	var _ IRValue = IRInt(0)
	var _ IRValue = IRBool(false)
	var _ IRValue = IRArray{}
	var _ IRValue = IRObject{}
}

func TestCompareKeysRFC8785(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"a", "ab", -1},
		{"", "a", -1},
		{"𐀀", "\ue000", -1},
		{"\ue000", "𐀀", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareKeysRFC8785(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestIRObjectSortedKeys(t *testing.T) {
	obj := IRObject{"tid": IRInt(1), "ball": IRInt(4), "species": IRInt(25), "TID": IRInt(2)}
	assert.Equal(t, []string{"TID", "ball", "species", "tid"}, obj.SortedKeys())
	assert.Empty(t, IRObject{}.SortedKeys())
}

func TestFromJSON(t *testing.T) {
	v, err := FromJSON([]byte(`{"species": 151, "title": "Mew", "is_egg": false, "moves": [1, 2], "contest": {"cool": 0}}`))
	require.NoError(t, err)

	assert.Equal(t, IRObject{
		"species": IRInt(151),
		"title":   IRString("Mew"),
		"is_egg":  IRBool(false),
		"moves":   IRArray{IRInt(1), IRInt(2)},
		"contest": IRObject{"cool": IRInt(0)},
	}, v)
}

func TestFromJSON_DropsNullMembers(t *testing.T) {
	v, err := FromJSON([]byte(`{"ot_name": null, "tid": -1}`))
	require.NoError(t, err)
	assert.Equal(t, IRObject{"tid": IRInt(-1)}, v)
}

func TestFromJSON_Rejects(t *testing.T) {
	tests := map[string]string{
		"float":           `{"level": 5.5}`,
		"exponent":        `{"level": 1e3}`,
		"top-level null":  `null`,
		"null in array":   `[1, null]`,
		"out of range":    `99999999999999999999`,
		"malformed input": `{"level":`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromJSON([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestFromStruct(t *testing.T) {
	type header struct {
		CardID int     `json:"card_id"`
		Name   *string `json:"name"`
	}
	v, err := FromStruct(header{CardID: 525})
	require.NoError(t, err)
	assert.Equal(t, IRObject{"card_id": IRInt(525)}, v)

	_, err = FromStruct(3.5)
	assert.Error(t, err)
}

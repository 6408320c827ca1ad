package gift

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/giftcheck/internal/pkm"
)

func TestWC3_UnmarshalSeedsWildcards(t *testing.T) {
	var wc WC3
	require.NoError(t, json.Unmarshal([]byte(`{"species": 151, "ball": 4}`), &wc))

	assert.Equal(t, AnyID3, wc.TID)
	assert.Equal(t, AnyID3, wc.SID)
	assert.Equal(t, AnyLanguage3, wc.Language)
	assert.Equal(t, AnyOTGender3, wc.OTGender)
	assert.Nil(t, wc.OTName)
	assert.True(t, wc.Versions.IsAny())
	assert.Equal(t, 151, wc.Species)
}

func TestWC3_UnmarshalExplicitValuesWin(t *testing.T) {
	var wc WC3
	require.NoError(t, json.Unmarshal([]byte(`{"tid": 0, "ot_name": "ROCKET", "versions": ["R", "S"]}`), &wc))

	assert.Equal(t, 0, wc.TID)
	require.NotNil(t, wc.OTName)
	assert.Equal(t, "ROCKET", *wc.OTName)
	assert.Equal(t, pkm.NewVersionSet(pkm.Ruby, pkm.Sapphire), wc.Versions)
}

func TestUnmarshal_RejectsUnknownFields(t *testing.T) {
	var wc6 WC6
	err := json.Unmarshal([]byte(`{"card_id": 1, "sid": 5}`), &wc6)
	require.Error(t, err, "wc6 has no secret ID field")
	assert.Contains(t, err.Error(), "sid")
}

func TestVariantDefaults(t *testing.T) {
	var pcd PCD
	require.NoError(t, json.Unmarshal([]byte(`{}`), &pcd))
	assert.Equal(t, AnyGender4, pcd.Gender)
	assert.Equal(t, GiftTypePokemon, pcd.GiftType)

	var pgf PGF
	require.NoError(t, json.Unmarshal([]byte(`{}`), &pgf))
	assert.Equal(t, AnyGender5, pgf.Gender)
	assert.Equal(t, AnyNature, pgf.Nature)
	assert.Equal(t, PIDRandom5, pgf.PIDType)

	var wc7 WC7
	require.NoError(t, json.Unmarshal([]byte(`{"moves": [33, 0, 424, 0]}`), &wc7))
	assert.Equal(t, AnyOTGender7, wc7.OTGender)
	assert.Equal(t, PIDRandom, wc7.PIDType)
	assert.Equal(t, 424, wc7.Moves[2])
}

func TestCatalog_AddAndAll(t *testing.T) {
	c := &Catalog{}
	c.Add(&WC6{Header: Header{CardID: 525, Species: 719}})
	c.Add(&WC3{Header: Header{Species: 151}})
	c.Add(&WC7{Header: Header{CardID: 1624, Species: 744}})

	require.Equal(t, 3, c.Len())

	var keys []string
	for g := range c.All() {
		keys = append(keys, Key(g))
	}
	assert.Equal(t, []string{"gen3/0000", "gen6/0525", "gen7/1624"}, keys)
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, slices.Collect(c.All()))
}

func TestCatalog_Find(t *testing.T) {
	c := &Catalog{Gen6: []*WC6{{Header: Header{CardID: 504, Species: 126}}}}

	g, ok := c.Find(6, 504)
	require.True(t, ok)
	assert.Equal(t, 126, g.Info().Species)

	_, ok = c.Find(7, 504)
	assert.False(t, ok)
}

func TestCatalog_Merge(t *testing.T) {
	a := &Catalog{Gen5: []*PGF{{Header: Header{CardID: 1}}}}
	b := &Catalog{Gen5: []*PGF{{Header: Header{CardID: 2}}}}
	a.Merge(b)
	a.Merge(nil)

	require.Len(t, a.Gen5, 2)
	assert.Equal(t, 2, a.Gen5[1].CardID)
}

func TestCatalog_MergeKeepsEmptyGeneration(t *testing.T) {
	c := &Catalog{}
	c.Merge(&Catalog{Gen4: []*PCD{}})
	c.Merge(&Catalog{Gen3: []*WC3{{Header: Header{CardID: 1}}}})

	assert.NotNil(t, c.Gen4)
	assert.Empty(t, c.Gen4)
	assert.Len(t, c.Gen3, 1)
	assert.Nil(t, c.Gen5)
}

func TestReceivable(t *testing.T) {
	games := pkm.NewVersionSet(pkm.Diamond, pkm.Pearl)

	assert.True(t, Receivable(games, pkm.Pearl))
	assert.False(t, Receivable(games, pkm.HeartGold))
	assert.True(t, Receivable(0, pkm.HeartGold), "no compatibility recorded")

	pcd := &PCD{Games: games}
	assert.True(t, pcd.CanBeReceivedBy(pkm.Diamond))
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
	"github.com/roach88/giftcheck/internal/testutil"
)

// gen4Pair returns a native Diamond record and a non-egg card it matches.
func gen4Pair(species int) (*pkm.Record, *gift.PCD) {
	rec := testutil.Record(pkm.Diamond, species)
	rec.TID, rec.SID = 12345, 54321
	rec.OTName = "ROWAN"
	rec.OTGender = pkm.GenderMale
	rec.MetLocation = 3011
	rec.MetLevel = 50
	rec.Ball = pkm.BallCherish

	pcd := testutil.PCD(species)
	pcd.TID, pcd.SID = rec.TID, rec.SID
	pcd.OTName = rec.OTName
	pcd.OTGender = rec.OTGender
	pcd.EggLocation = 11
	pcd.Level = 50
	pcd.Ball = pkm.BallCherish
	return rec, pcd
}

func rangerRecord(lang int) *pkm.Record {
	rec := testutil.Record(pkm.Diamond, SpeciesManaphy)
	rec.EggLocation = gift.LocationRanger4
	rec.Language = lang
	return rec
}

func TestGen4_RangerManaphy(t *testing.T) {
	_, manaphyCard := gen4Pair(SpeciesManaphy)
	e := New(testutil.Catalog(manaphyCard))

	got := collect(e, rangerRecord(pkm.LanguageEnglish))
	require.Len(t, got, 1)

	pcd, ok := got[0].(*gift.PCD)
	require.True(t, ok)
	assert.Equal(t, gift.GiftTypeManaphyEgg, pcd.GiftType)
	assert.Equal(t, SpeciesManaphy, pcd.Species)
	assert.True(t, pcd.IsEgg)
	assert.NotSame(t, manaphyCard, pcd)
}

func TestGen4_RangerManaphyNeverKorean(t *testing.T) {
	_, manaphyCard := gen4Pair(SpeciesManaphy)
	e := New(testutil.Catalog(manaphyCard))

	assert.Empty(t, collect(e, rangerRecord(pkm.LanguageKorean)))
}

func TestGen4_RangerManaphyFreshPerCall(t *testing.T) {
	e := New(testutil.Catalog(testutil.PCD(1)))
	rec := rangerRecord(pkm.LanguageEnglish)

	a := collect(e, rec)
	b := collect(e, rec)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0], b[0])
	assert.NotSame(t, a[0], b[0])
}

func TestIsRangerManaphy(t *testing.T) {
	tests := []struct {
		name  string
		isEgg bool
		egg   int
		met   int
		want  bool
	}{
		{"hatched ranger", false, gift.LocationRanger4, 0, true},
		{"hatched traded", false, gift.LocationTradedEgg4, 0, true},
		{"hatched elsewhere", false, 2000, 0, false},
		{"egg unmet", true, gift.LocationRanger4, 0, true},
		{"egg traded", true, gift.LocationRanger4, gift.LocationTradedEgg4, true},
		{"egg met elsewhere", true, gift.LocationRanger4, 16, false},
		{"egg from link trade", true, gift.LocationTradedEgg4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.Record(pkm.Diamond, SpeciesManaphy)
			rec.IsEgg = tt.isEgg
			rec.EggLocation = tt.egg
			rec.MetLocation = tt.met
			assert.Equal(t, tt.want, IsRangerManaphy(rec))
		})
	}

	t.Run("any species", func(t *testing.T) {
		rec := testutil.Record(pkm.Diamond, 25)
		rec.EggLocation = gift.LocationTradedEgg4
		assert.True(t, IsRangerManaphy(rec))
	})
}

// Locations alone pick the Ranger path, so a hatched link-trade egg of any
// species gets the synthesized Manaphy instead of its own card.
func TestGen4_TradedEggTakesRangerPath(t *testing.T) {
	rec, pcd := gen4Pair(175)
	rec.EggLocation = gift.LocationTradedEgg4
	e := New(testutil.Catalog(pcd))

	got := collect(e, rec)
	require.Len(t, got, 1)
	synth, ok := got[0].(*gift.PCD)
	require.True(t, ok)
	assert.Equal(t, SpeciesManaphy, synth.Species)
	assert.NotSame(t, pcd, synth)
}

func TestExplain_RangerRecord(t *testing.T) {
	_, card := gen4Pair(SpeciesManaphy)
	_, eggCard := gen4Pair(SpeciesManaphy)
	eggCard.GiftType = gift.GiftTypeManaphyEgg
	e := New(testutil.Catalog(card, eggCard))

	rec := rangerRecord(pkm.LanguageEnglish)
	assert.Equal(t, Verdict{Outcome: Rejected, Reason: ReasonRanger}, e.Explain(rec, card))
	assert.Equal(t, Verdict{Outcome: Rejected, Reason: ReasonRanger}, e.Explain(rec, eggCard))

	got := collect(e, rec)
	require.Len(t, got, 1)
	assert.Equal(t, Verdict{Outcome: Exact}, e.Explain(rec, got[0]))

	korean := rangerRecord(pkm.LanguageKorean)
	assert.Equal(t, Verdict{Outcome: Rejected, Reason: ReasonRangerKorean}, e.Explain(korean, rangerManaphy()))

	// The synthesized egg is explained before the species chain is checked.
	pichu, _ := gen4Pair(172)
	pichu.EggLocation = gift.LocationTradedEgg4
	assert.Equal(t, Verdict{Outcome: Exact}, e.Explain(pichu, rangerManaphy()))
}

func TestGen4_EggOutsideGeneration4(t *testing.T) {
	rec, pcd := gen4Pair(175)
	rec.IsEgg = true
	rec.Container = pkm.PK5
	e := New(testutil.Catalog(pcd))

	assert.Empty(t, collect(e, rec))
	assert.Equal(t, ReasonTransferredEgg, e.Explain(rec, pcd).Reason)
}

func TestGen4_NotReceivableIsDeferred(t *testing.T) {
	rec, hgss := gen4Pair(25)
	hgss.Title = "hgss only"
	hgss.Games = pkm.NewVersionSet(pkm.HeartGold, pkm.SoulSilver)
	_, anyGame := gen4Pair(25)
	anyGame.Title = "any game"

	e := New(testutil.Catalog(hgss, anyGame))
	assert.Equal(t, []gift.Gift{anyGame, hgss}, collect(e, rec))
	assert.Equal(t, Verdict{Outcome: Deferred, Reason: ReasonNotReceivable}, e.Explain(rec, hgss))
}

func TestGen4_Predicate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*pkm.Record, *gift.PCD)
		want   Reason
	}{
		{"matches", func(*pkm.Record, *gift.PCD) {}, ""},
		{"trainer id", func(_ *pkm.Record, p *gift.PCD) { p.TID++ }, ReasonTID},
		{"secret id", func(_ *pkm.Record, p *gift.PCD) { p.SID++ }, ReasonSID},
		{"name", func(_ *pkm.Record, p *gift.PCD) { p.OTName = "OTHER" }, ReasonOTName},
		{"gender has no wildcard", func(_ *pkm.Record, p *gift.PCD) { p.OTGender = gift.AnyOTGender4 }, ReasonOTGender},
		{"language", func(_ *pkm.Record, p *gift.PCD) { p.Language = pkm.LanguageFrench }, ReasonLanguage},
		{"language wildcard", func(r *pkm.Record, _ *gift.PCD) { r.Language = pkm.LanguageFrench }, ""},
		{"met location", func(r *pkm.Record, _ *gift.PCD) { r.MetLocation = 3012 }, ReasonMetLocation},
		{"met level", func(r *pkm.Record, _ *gift.PCD) { r.MetLevel = 51 }, ReasonMetLevel},
		{"form", func(r *pkm.Record, _ *gift.PCD) { r.Form = 1 }, ReasonForm},
		{"ball", func(r *pkm.Record, _ *gift.PCD) { r.Ball = pkm.BallPoke }, ReasonBall},
		{"non-shiny card", func(r *pkm.Record, p *gift.PCD) {
			p.PID = gift.PIDNonShiny4
			r.PID = uint32(r.TID^r.SID) << 16
		}, ReasonShiny},
		{"gender", func(r *pkm.Record, p *gift.PCD) { p.Gender = pkm.GenderFemale }, ReasonGender},
		{"contest floor equal", func(r *pkm.Record, p *gift.PCD) {
			p.Contest = pkm.ContestStats{Cool: 10, Sheen: 20}
			r.Contest = pkm.ContestStats{Cool: 10, Sheen: 20}
		}, ""},
		{"contest below floor", func(r *pkm.Record, p *gift.PCD) {
			p.Contest = pkm.ContestStats{Smart: 10}
			r.Contest = pkm.ContestStats{Smart: 9}
		}, ReasonContest},
	}

	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, pcd := gen4Pair(25)
			tt.mutate(rec, pcd)
			chain := e.evolutions.PreEvolutions(rec, 0)
			assert.Equal(t, tt.want, e.matchPCD(rec, pcd, chain))
		})
	}
}

func TestGen4_FormChangeableSpecies(t *testing.T) {
	rec, pcd := gen4Pair(479) // Rotom
	rec.Form = 3

	e := New(testutil.Catalog(pcd))
	assert.Equal(t, []gift.Gift{pcd}, collect(e, rec))
}

func TestGen4_Transferred(t *testing.T) {
	rec, pcd := gen4Pair(25)
	rec.Container = pkm.PK5
	rec.MetLocation = 30001
	rec.MetLevel = 60

	e := New(nil)
	assert.Equal(t, Reason(""), e.matchPCD(rec, pcd, nil))

	rec.MetLevel = 49
	assert.Equal(t, ReasonLevel, e.matchPCD(rec, pcd, nil))
}

func TestGen4_Egg(t *testing.T) {
	rec := testutil.Record(pkm.Platinum, 175)
	rec.EggLocation = 3011
	rec.Ball = pkm.BallPoke

	pcd := testutil.PCD(175)
	pcd.IsEgg = true
	pcd.EggLocation = 11
	pcd.Ball = pkm.BallPoke
	// Trainer fields are the hatcher's.
	pcd.TID = 999

	e := New(testutil.Catalog(pcd))
	assert.Equal(t, []gift.Gift{pcd}, collect(e, rec))

	rec.EggLocation = gift.LocationTradedEgg4
	assert.Equal(t, Reason(""), e.matchPCD(rec, pcd, nil))

	rec.EggLocation = 3012
	assert.Equal(t, ReasonEggLocation, e.matchPCD(rec, pcd, nil))

	rec.EggLocation = 3011
	rec.MetLevel = 1
	assert.Equal(t, ReasonMetLevel, e.matchPCD(rec, pcd, nil))
}

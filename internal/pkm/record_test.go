package pkm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainer_Format(t *testing.T) {
	assert.Equal(t, 3, XK3.Format())
	assert.Equal(t, 4, BK4.Format())
	assert.Equal(t, 7, PK7.Format())
	assert.Equal(t, 0, Container("pk9").Format())
	assert.False(t, Container("pk9").Valid())
}

func TestRecord_OriginGeneration(t *testing.T) {
	rec := &Record{Version: Diamond, Container: PK5}
	assert.Equal(t, 4, rec.OriginGeneration())
	assert.False(t, rec.IsNative(), "diamond record in pk5 was transferred")

	rec.Container = PK4
	assert.True(t, rec.IsNative())

	rec.Generation = 3
	assert.Equal(t, 3, rec.OriginGeneration(), "explicit generation wins")
}

func TestRecord_IsShiny(t *testing.T) {
	// TID ^ SID ^ high ^ low == 12: shiny only under the format 6 threshold.
	rec := &Record{TID: 0, SID: 0, PID: 0x0000000C, Container: PK5}
	assert.False(t, rec.IsShiny())

	rec.Container = PK6
	assert.True(t, rec.IsShiny())

	rec.PID = 0x12341234
	assert.True(t, rec.IsShiny(), "equal halves with zero IDs xor to 0")

	rec.TID = 0x0100
	assert.False(t, rec.IsShiny())
}

func TestRecord_TrainerPair(t *testing.T) {
	rec := &Record{TID: 0x7B49, SID: 0x79F5}
	assert.Equal(t, uint32(0x79F57B49), rec.TrainerPair())
}

func TestRecord_IsSunMoon(t *testing.T) {
	assert.True(t, (&Record{Version: Moon}).IsSunMoon())
	assert.False(t, (&Record{Version: UltraSun}).IsSunMoon())
}

func TestContestStats_Covers(t *testing.T) {
	stats := ContestStats{Cool: 10, Beauty: 10, Cute: 10, Smart: 10, Tough: 10, Sheen: 10}

	assert.True(t, stats.Covers(stats), "equal values pass")
	assert.True(t, stats.Covers(ContestStats{}))
	assert.False(t, stats.Covers(ContestStats{Sheen: 11}))
	assert.False(t, stats.Covers(ContestStats{Cool: 11}))
}

func TestCanChangeForm(t *testing.T) {
	assert.True(t, CanChangeForm(&Record{Container: PK7}, 720))
	assert.False(t, CanChangeForm(&Record{Container: PK7}, 25))

	assert.False(t, CanChangeForm(&Record{Container: PK3}, 386))
	assert.True(t, CanChangeForm(&Record{Container: PK4}, 386))
}

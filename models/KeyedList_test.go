package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedListKeysAreNeverReused(t *testing.T) {
	var l KeyedList[string]
	l, a := l.Add("a")
	l, b := l.Add("b")
	l, c := l.Add("c")
	assert.Equal(t, []int{1, 2, 3}, []int{a, b, c})

	l, ok := l.Remove(b)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, l.Keys())
	assert.Equal(t, []string{"a", "c"}, l.Values())

	l, d := l.Add("d")
	assert.Equal(t, 4, d)

	_, ok = l.Remove(b)
	assert.False(t, ok)
}

func TestKeyedListLeavesReceiverUntouched(t *testing.T) {
	var base KeyedList[int]
	base, _ = base.Add(10)
	base, _ = base.Add(20)

	updated, ok := base.Update(2, func(v int) int { return v + 1 })
	assert.True(t, ok)
	removed, _ := base.Remove(1)

	v, _ := base.Get(2)
	assert.Equal(t, 20, v)
	assert.Equal(t, 2, base.Len())
	v, _ = updated.Get(2)
	assert.Equal(t, 21, v)
	assert.Equal(t, 1, removed.Len())

	_, ok = base.Update(9, func(v int) int { return v })
	assert.False(t, ok)
}

func TestMapKeyedList(t *testing.T) {
	var l KeyedList[int]
	l, _ = l.Add(2)
	l, _ = l.Add(3)
	l, _ = l.Remove(1)

	got := MapKeyedList(l, func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, []Row[string]{{Key: 2, Value: "d"}}, got)
}

func TestSectionsFor(t *testing.T) {
	flat := SectionsFor(PropertyFlat)
	assert.Contains(t, flat, SectionFlatValuation)
	assert.NotContains(t, flat, SectionLandDetails)

	land := SectionsFor(PropertyLandAndBuildings)
	assert.Contains(t, land, SectionBuildingValuation)
	assert.Equal(t, CommonSections, SectionsFor(""))
}

func TestFormRecordWithCopies(t *testing.T) {
	r := FormRecord{SectionBasic: 1}
	next := r.With(SectionComments, "x")
	assert.Len(t, r, 1)
	assert.Len(t, next, 2)
	assert.Equal(t, FormRecord{SectionComments: "x"}, next.Only([]string{SectionComments, SectionEnquiries}))
}

func TestParseGeoLevel(t *testing.T) {
	level, ok := ParseGeoLevel("mandal")
	assert.True(t, ok)
	assert.Equal(t, LevelMandal, level)
	assert.Equal(t, "mandal", level.String())

	_, ok = ParseGeoLevel("county")
	assert.False(t, ok)
}

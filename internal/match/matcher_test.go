package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immodok/internal/domain"
)

func testObjects() []domain.ObjectRecord {
	return []domain.ObjectRecord{
		{ObjectNumber: "S1", BuildingName: "Wohnanlage Sonnenhof", Street: "Sonnenallee 12", Aliases: []string{"Sonnenhof"}},
		{ObjectNumber: "G2", BuildingName: "Gewerbepark Nord", Street: "Industriestraße 9"},
	}
}

func TestMatcher_AliasContainment(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	got := m.Match("Objekt: Sonnenhof, 3. OG", testObjects())

	require.NotNil(t, got.ObjectNumber)
	require.NotNil(t, got.MatchedLabel)
	require.NotNil(t, got.Score)
	assert.Equal(t, "S1", *got.ObjectNumber)
	assert.Equal(t, "Sonnenhof", *got.MatchedLabel)
	assert.Equal(t, 100, *got.Score)
}

func TestMatcher_AliasOrderWins(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	objects := []domain.ObjectRecord{
		{ObjectNumber: "A", BuildingName: "Haus A", Aliases: []string{"Sonnenhof"}},
		{ObjectNumber: "B", BuildingName: "Haus B", Aliases: []string{"Sonnenhof"}},
	}

	got := m.Match("Sonnenhof", objects)

	require.NotNil(t, got.ObjectNumber)
	assert.Equal(t, "A", *got.ObjectNumber)
}

func TestMatcher_FuzzyAboveThreshold(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	objects := []domain.ObjectRecord{
		{ObjectNumber: "G2", BuildingName: "Gewerbepark Nord", Street: "Industriestraße 9"},
	}

	// Token-set scoring treats the candidate's tokens as a subset of the
	// registry label, which scores 100.
	got := m.Match("Gewerbepark Nord", objects)

	require.NotNil(t, got.ObjectNumber)
	require.NotNil(t, got.Score)
	assert.Equal(t, "G2", *got.ObjectNumber)
	assert.Equal(t, 100, *got.Score)
	require.NotNil(t, got.MatchedLabel)
	assert.Equal(t, "Gewerbepark Nord Industriestraße 9", *got.MatchedLabel)
}

func TestMatcher_BelowThresholdKeepsDiagnostics(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	objects := []domain.ObjectRecord{
		{ObjectNumber: "S1", BuildingName: "Wohnanlage Sonnenhof"},
		{ObjectNumber: "G2", BuildingName: "Gewerbepark Nord", Street: "Industriestraße 9"},
	}

	got := m.Match("sonnenhof 12 münchen", objects)

	assert.Nil(t, got.ObjectNumber)
	require.NotNil(t, got.Score)
	require.NotNil(t, got.MatchedLabel)
	assert.Greater(t, *got.Score, 0)
	assert.Less(t, *got.Score, DefaultThreshold)
	assert.Equal(t, "Wohnanlage Sonnenhof", *got.MatchedLabel)
}

func TestMatcher_LowerThresholdResolves(t *testing.T) {
	m := NewMatcher(50)
	objects := []domain.ObjectRecord{
		{ObjectNumber: "S1", BuildingName: "Wohnanlage Sonnenhof"},
	}

	got := m.Match("sonnenhof 12 münchen", objects)

	require.NotNil(t, got.ObjectNumber)
	assert.Equal(t, "S1", *got.ObjectNumber)
}

func TestMatcher_EmptyInputs(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	got := m.Match("   ", testObjects())
	assert.Nil(t, got.ObjectNumber)
	assert.Nil(t, got.MatchedLabel)
	assert.Nil(t, got.Score)

	got = m.Match("Sonnenhof", nil)
	assert.Nil(t, got.ObjectNumber)
	assert.Nil(t, got.MatchedLabel)
	assert.Nil(t, got.Score)
}

func TestNewMatcher_DefaultsThreshold(t *testing.T) {
	m := NewMatcher(0)
	assert.Equal(t, DefaultThreshold, m.threshold)

	m = NewMatcher(-5)
	assert.Equal(t, DefaultThreshold, m.threshold)
}

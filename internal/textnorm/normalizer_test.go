package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelmatch/internal/textnorm"
)

func newNormalizer(t *testing.T, extraWords ...string) *textnorm.Normalizer {
	t.Helper()
	res, err := textnorm.NewResources(append(textnorm.BaseLexicon(), extraWords...))
	require.NoError(t, err)
	return textnorm.New(res)
}

func TestNormalize_EmptyAndBlank(t *testing.T) {
	n := newNormalizer(t)
	assert.Equal(t, "", n.Normalize("", true))
	assert.Equal(t, "", n.Normalize("   \t\n  ", true))
}

func TestNormalize_StripsTags(t *testing.T) {
	n := newNormalizer(t)
	got := n.Normalize("<b>luxury</b> hotel <br/>", false)
	assert.Equal(t, "luxury hotel", got)
}

func TestNormalize_ExpandsContractions(t *testing.T) {
	n := newNormalizer(t)
	// "don't" -> "do not"; both halves are stopwords and drop out.
	got := n.Normalize("I don't want noise", false)
	assert.Equal(t, "want noise", got)
}

func TestNormalize_StripsURLsAndEmails(t *testing.T) {
	n := newNormalizer(t)
	got := n.Normalize("book at https://example.com/deal or mail me@example.com today", false)
	assert.NotContains(t, got, "http")
	assert.NotContains(t, got, "example")
	assert.Contains(t, got, "book")
}

func TestNormalize_CollapsesRepeatedRuns(t *testing.T) {
	n := newNormalizer(t)
	// Spellcheck off so the collapse is observable before lemmatization.
	got := n.Normalize("Sooooo goooood!!!", false)
	assert.Equal(t, "soo good", got)
}

func TestNormalize_KeepsLegitimateDoubleLetters(t *testing.T) {
	n := newNormalizer(t)
	got := n.Normalize("good coffee", false)
	assert.Equal(t, "good coffee", got)
}

func TestNormalize_SpellCorrection(t *testing.T) {
	n := newNormalizer(t, "coffee")
	got := n.Normalize("hotl near beach", true)
	assert.Equal(t, "hotel near beach", got)
}

func TestNormalize_SpellCorrectionSkipsShortAndKnown(t *testing.T) {
	n := newNormalizer(t)
	// "spa" is a known word, "ab" is too short to be a correction candidate.
	got := n.Normalize("spa ab", true)
	assert.Equal(t, "spa ab", got)
}

func TestNormalize_DropsStopwordsAndShortTokens(t *testing.T) {
	n := newNormalizer(t)
	got := n.Normalize("a hotel by the sea", false)
	assert.Equal(t, "hotel sea", got)
}

func TestNormalize_Lemmatizes(t *testing.T) {
	n := newNormalizer(t, "rooms", "cities")
	got := n.Normalize("rooms in cities", false)
	assert.Equal(t, "room city", got)
}

func TestNormalize_StripsEmoji(t *testing.T) {
	n := newNormalizer(t)
	got := n.Normalize("beach 🏖️ vacation 😎", false)
	assert.Equal(t, "beach vacation", got)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newNormalizer(t)
	first := n.Normalize("Cozy hotel near the beach!", true)
	second := n.Normalize("Cozy hotel near the beach!", true)
	assert.Equal(t, first, second)
}

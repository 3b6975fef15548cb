package textproc

import (
	"testing"

	"github.com/kljensen/snowball/english"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSegmenter(t *testing.T) *Segmenter {
	t.Helper()
	seg, err := NewSegmenter()
	require.NoError(t, err)
	return seg
}

func TestSegmenter_Split(t *testing.T) {
	seg := newSegmenter(t)

	t.Run("Should keep sentences in source order", func(t *testing.T) {
		got := seg.Split("The Fed held rates steady. Powell cited inflation risk. Markets rallied on the news.")
		assert.Equal(t, []string{
			"The Fed held rates steady.",
			"Powell cited inflation risk.",
			"Markets rallied on the news.",
		}, got)
	})

	t.Run("Should not split on abbreviations or decimals", func(t *testing.T) {
		got := seg.Split("Mr. Smith said inflation rose 3.1% last month. The outlook remains uncertain.")
		require.Len(t, got, 2)
		assert.Equal(t, "Mr. Smith said inflation rose 3.1% last month.", got[0])
	})

	t.Run("Should keep dotted acronyms inside the sentence", func(t *testing.T) {
		got := seg.Split("The U.S. economy grew. Growth was 2.5% annually.")
		assert.Equal(t, []string{
			"The U.S. economy grew.",
			"Growth was 2.5% annually.",
		}, got)
	})

	t.Run("Should end a sentence after a quoted period", func(t *testing.T) {
		got := seg.Split(`He said "Stop." Then he left the room.`)
		assert.Equal(t, []string{
			`He said "Stop."`,
			"Then he left the room.",
		}, got)
	})

	t.Run("Should collapse inner whitespace", func(t *testing.T) {
		got := seg.Split("Rates   were\n\nunchanged.   Stocks rose.")
		assert.Equal(t, []string{"Rates were unchanged.", "Stocks rose."}, got)
	})

	t.Run("Should return nothing for blank input", func(t *testing.T) {
		assert.Empty(t, seg.Split(" \n\t "))
		assert.Empty(t, seg.Split(""))
	})
}

func TestAnalyzer_Terms(t *testing.T) {
	a := NewAnalyzer()

	t.Run("Should drop stopwords and stem", func(t *testing.T) {
		got := a.Terms("The markets were rallying on the Fed")
		assert.Equal(t, []string{"market", "ralli", "fed"}, got)
	})

	t.Run("Should fold case and diacritics", func(t *testing.T) {
		assert.Equal(t, a.Terms("CAFÉ"), a.Terms("cafe"))
	})

	t.Run("Should ignore numbers and single letters", func(t *testing.T) {
		assert.Equal(t, []string{english.Stem("rates", false)}, a.Terms("x rates 3.1%"))
	})

	t.Run("Should treat typographic apostrophes like plain ones", func(t *testing.T) {
		assert.Empty(t, a.Terms("don’t won't"))
	})
}

func TestAnalyze(t *testing.T) {
	seg := newSegmenter(t)

	t.Run("Should count words and sentences", func(t *testing.T) {
		stats := Analyze(seg, "Stocks rose today. Stocks fell yesterday and stocks rose again.")

		assert.Equal(t, 10, stats.Words)
		assert.Equal(t, 2, stats.Sentences)
		assert.InDelta(t, 5.0, stats.AvgSentenceLength, 1e-9)
		require.NotEmpty(t, stats.TopWords)
		assert.Equal(t, WordCount{Word: "stocks", Count: 3}, stats.TopWords[0])
		assert.Equal(t, WordCount{Word: "rose", Count: 2}, stats.TopWords[1])
	})

	t.Run("Should handle empty text", func(t *testing.T) {
		stats := Analyze(seg, "")
		assert.Zero(t, stats.Words)
		assert.Zero(t, stats.Sentences)
		assert.Zero(t, stats.AvgSentenceLength)
		assert.Empty(t, stats.TopWords)
	})

	t.Run("Should cap the top word list", func(t *testing.T) {
		stats := Analyze(seg, "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda omicron.")
		assert.Len(t, stats.TopWords, 10)
		assert.Equal(t, "alpha", stats.TopWords[0].Word)
	})
}

func TestCompressionRatio(t *testing.T) {
	assert.InDelta(t, 0.5, CompressionRatio("one two three four", "one two"), 1e-12)
	assert.Zero(t, CompressionRatio("", "anything"))
}

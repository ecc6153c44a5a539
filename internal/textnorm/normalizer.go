package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

// Normalizer cleans free text into a canonical lowercase token string.
// The stage order is load-bearing: each stage assumes the previous stage's
// output shape (see Normalize). Instances are immutable and safe for
// concurrent use.
type Normalizer struct {
	res *Resources

	tagPattern         *regexp.Regexp
	urlEmailPattern    *regexp.Regexp
	contractionPattern *regexp.Regexp
}

func New(res *Resources) *Normalizer {
	return &Normalizer{
		res:                res,
		tagPattern:         regexp.MustCompile(`<[^>]*>`),
		urlEmailPattern:    regexp.MustCompile(`https?://\S+|www\.\S+|[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]+`),
		contractionPattern: regexp.MustCompile(`[A-Za-z]+'[A-Za-z]+`),
	}
}

// Normalize runs the full pipeline:
//
//	trim -> strip tags -> expand contractions -> strip emoji -> strip
//	URLs/emails -> collapse 3+ character runs to 2 -> (optional) spell
//	correction -> lowercase -> keep [a-z ] only -> drop stopwords and
//	single-char tokens -> lemmatize -> join.
//
// Blank or whitespace-only input short-circuits to "".
func (n *Normalizer) Normalize(raw string, doSpellcheck bool) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	text = n.tagPattern.ReplaceAllString(text, "")
	text = n.expandContractions(text)
	text = gomoji.RemoveEmojis(text)
	text = n.urlEmailPattern.ReplaceAllString(text, "")
	text = collapseRuns(text)
	if doSpellcheck {
		text = n.correctSpellingBatch(text)
	}
	text = strings.ToLower(text)
	text = keepLettersAndSpace(text)

	tokens := strings.Fields(text)
	out := tokens[:0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if _, stop := n.res.stopwords[tok]; stop {
			continue
		}
		out = append(out, n.res.lemmatizer.Lemma(tok))
	}
	return strings.Join(out, " ")
}

func (n *Normalizer) expandContractions(text string) string {
	return n.contractionPattern.ReplaceAllStringFunc(text, func(m string) string {
		if exp, ok := n.res.contractions[strings.ToLower(m)]; ok {
			return exp
		}
		return m
	})
}

// correctSpellingBatch replaces unknown alphabetic tokens longer than two
// characters with the spell model's best suggestion. Corrections are computed
// once per unique token, not positionally.
func (n *Normalizer) correctSpellingBatch(text string) string {
	words := strings.Fields(text)

	corrections := make(map[string]string)
	for _, w := range words {
		lower := strings.ToLower(w)
		if !isAlpha(w) || utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if _, known := n.res.known[lower]; known {
			continue
		}
		if _, done := corrections[w]; done {
			continue
		}
		if fixed := n.res.spell.SpellCheck(lower); fixed != "" && fixed != lower {
			corrections[w] = fixed
		} else {
			corrections[w] = w
		}
	}

	for i, w := range words {
		if fixed, ok := corrections[w]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}

// collapseRuns reduces runs of 3+ identical characters to exactly 2, so
// emphatic elongation ("soooo") normalizes without touching legitimate
// double letters. RE2 has no backreferences, hence no regex here.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepLettersAndSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}

package textnorm

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/sajari/fuzzy"
)

// Resources bundles the shared normalization state: stopword set, contraction
// table, spell model with its known-word set, and the lemmatizer. Built once
// at process startup and injected read-only; nothing here mutates after New.
type Resources struct {
	stopwords    map[string]struct{}
	contractions map[string]string
	known        map[string]struct{}
	spell        *fuzzy.Model
	lemmatizer   *golem.Lemmatizer
}

// NewResources trains the spell model on the given lexicon (typically the
// catalog's description vocabulary plus baseLexicon) and loads the English
// lemmatizer dictionary.
func NewResources(lexicon []string) (*Resources, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	known := make(map[string]struct{}, len(lexicon)+len(stopwordList))
	train := make([]string, 0, len(lexicon)+len(stopwordList))
	add := func(w string) {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return
		}
		if _, ok := known[w]; ok {
			return
		}
		known[w] = struct{}{}
		train = append(train, w)
	}
	for _, w := range lexicon {
		add(w)
	}
	// Stopwords count as known so the corrector never rewrites them.
	for _, w := range stopwordList {
		add(w)
	}
	model.Train(train)

	stop := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		stop[w] = struct{}{}
	}

	return &Resources{
		stopwords:    stop,
		contractions: contractionTable,
		known:        known,
		spell:        model,
		lemmatizer:   lem,
	}, nil
}

// LexiconFromTexts extracts the lowercase alphabetic vocabulary of the given
// texts, for training the spell model on the catalog corpus.
func LexiconFromTexts(texts []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range texts {
		for _, tok := range strings.Fields(t) {
			tok = strings.ToLower(strings.TrimFunc(tok, func(r rune) bool { return !unicode.IsLetter(r) }))
			if len(tok) < 2 || !isAlpha(tok) {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// contractionTable expands common English contractions before lowercasing.
// Keys are lowercase; lookups are case-insensitive.
var contractionTable = map[string]string{
	"ain't":     "am not",
	"aren't":    "are not",
	"can't":     "cannot",
	"could've":  "could have",
	"couldn't":  "could not",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"hadn't":    "had not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"he'd":      "he would",
	"he'll":     "he will",
	"he's":      "he is",
	"here's":    "here is",
	"how's":     "how is",
	"i'd":       "i would",
	"i'll":      "i will",
	"i'm":       "i am",
	"i've":      "i have",
	"isn't":     "is not",
	"it'd":      "it would",
	"it'll":     "it will",
	"it's":      "it is",
	"let's":     "let us",
	"mightn't":  "might not",
	"might've":  "might have",
	"mustn't":   "must not",
	"must've":   "must have",
	"needn't":   "need not",
	"she'd":     "she would",
	"she'll":    "she will",
	"she's":     "she is",
	"should've": "should have",
	"shouldn't": "should not",
	"that's":    "that is",
	"there'd":   "there would",
	"there's":   "there is",
	"they'd":    "they would",
	"they'll":   "they will",
	"they're":   "they are",
	"they've":   "they have",
	"wasn't":    "was not",
	"we'd":      "we would",
	"we'll":     "we will",
	"we're":     "we are",
	"we've":     "we have",
	"weren't":   "were not",
	"what'll":   "what will",
	"what're":   "what are",
	"what's":    "what is",
	"what've":   "what have",
	"where's":   "where is",
	"who'd":     "who would",
	"who'll":    "who will",
	"who're":    "who are",
	"who's":     "who is",
	"who've":    "who have",
	"won't":     "will not",
	"would've":  "would have",
	"wouldn't":  "would not",
	"you'd":     "you would",
	"you'll":    "you will",
	"you're":    "you are",
	"you've":    "you have",
}

// stopwordList mirrors the standard English stopword set.
var stopwordList = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should", "now",
	"us",
}

// baseLexicon seeds the spell model with hospitality vocabulary so queries
// can be corrected even against a small catalog corpus.
var baseLexicon = []string{
	"hotel", "hostel", "resort", "room", "suite", "apartment", "villa",
	"breakfast", "dinner", "lunch", "restaurant", "bar", "cafe", "kitchen",
	"pool", "swimming", "spa", "sauna", "gym", "fitness", "beach", "sea",
	"ocean", "lake", "mountain", "view", "garden", "terrace", "balcony",
	"city", "center", "centre", "downtown", "airport", "station", "metro",
	"parking", "shuttle", "transfer", "wifi", "internet", "luxury", "budget",
	"cheap", "affordable", "family", "romantic", "quiet", "cozy", "modern",
	"historic", "boutique", "clean", "comfortable", "friendly", "staff",
	"service", "location", "walking", "distance", "near", "close", "nearby",
	"night", "stay", "booking", "reservation", "pet", "dog", "cat",
	"accessible", "business", "conference", "wedding", "bed", "double",
	"single", "twin", "king", "queen", "bathroom", "shower", "bathtub",
	"air", "conditioning", "heating", "laundry", "reception", "concierge",
	"rooftop", "ski", "hiking", "surfing", "good", "great", "best", "nice",
}

// BaseLexicon returns a copy of the built-in hospitality vocabulary.
func BaseLexicon() []string {
	out := make([]string, len(baseLexicon))
	copy(out, baseLexicon)
	return out
}

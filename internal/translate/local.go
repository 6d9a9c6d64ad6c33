package translate

import (
	"context"
	"slices"
	"strings"
	"unicode"
)

// scoreOrder fixes tie-breaking between equally scored languages.
var scoreOrder = []string{"vi", "en", "ja", "ko", "zh-cn", "fr", "de", "es", "it", "pt"}

var europeanLanguages = []string{"fr", "de", "es", "it", "pt"}

var commonWords = map[string][]string{
	"vi": {"và", "hoặc", "không", "là", "có", "được", "trong", "của", "cho", "với", "tôi", "bạn", "chúng", "họ", "những", "các", "một", "hai", "ba", "bốn", "năm"},
	"en": {"the", "and", "or", "not", "is", "are", "in", "of", "to", "for", "with", "i", "you", "we", "they", "this", "that", "one", "two", "three", "four", "five"},
	"fr": {"le", "la", "les", "et", "ou", "ne", "pas", "est", "sont", "dans", "de", "à", "pour", "avec", "je", "tu", "nous", "ils", "un", "deux", "trois"},
	"de": {"der", "die", "das", "und", "oder", "nicht", "ist", "sind", "in", "von", "zu", "für", "mit", "ich", "du", "wir", "sie", "ein", "zwei", "drei"},
	"es": {"el", "la", "los", "las", "y", "o", "no", "es", "son", "en", "de", "a", "para", "con", "yo", "tú", "nosotros", "ellos", "uno", "dos", "tres"},
	"it": {"il", "la", "i", "le", "e", "o", "non", "è", "sono", "in", "di", "a", "per", "con", "io", "tu", "noi", "loro", "uno", "due", "tre"},
	"pt": {"o", "a", "os", "as", "e", "ou", "não", "é", "são", "em", "de", "para", "com", "eu", "tu", "nós", "eles", "um", "dois", "três"},
}

var commonPhrases = map[string][]string{
	"vi":    {"xin chào", "cảm ơn", "tạm biệt", "làm ơn", "xin lỗi"},
	"en":    {"hello", "thank you", "goodbye", "please", "sorry"},
	"fr":    {"bonjour", "merci", "au revoir", "s'il vous plaît", "pardon"},
	"de":    {"hallo", "danke", "auf wiedersehen", "bitte", "entschuldigung"},
	"es":    {"hola", "gracias", "adiós", "por favor", "lo siento"},
	"ja":    {"こんにちは", "ありがとう", "さようなら", "お願いします", "すみません"},
	"ko":    {"안녕하세요", "감사합니다", "안녕히 가세요", "저는", "죄송합니다"},
	"zh-cn": {"你好", "谢谢", "再见", "请", "对不起"},
	"it":    {"ciao", "grazie", "arrivederci", "per favore", "scusa"},
	"pt":    {"olá", "obrigado", "adeus", "por favor", "desculpe"},
}

const vietnameseMarks = "àáạảãâầấậẩẫăằắặẳẵèéẹẻẽêềếệểễìíịỉĩòóọỏõôồốộổỗơờớợởỡùúụủũưừứựửữỳýỵỷỹđ"

var europeanMarks = map[string]string{
	"fr": "éèêëàâäôöùûüÿçœæ",
	"de": "äöüß",
	"es": "áéíóúüñ¿¡",
	"it": "àèéìíîòóùú",
	"pt": "áàâãéêíóôõúç",
}

// DetectLocal guesses the language of text from its script, accents and a
// short list of very common words and phrases. It always answers; weak
// evidence resolves to "en".
func DetectLocal(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "en"
	}

	scores := make(map[string]int, len(scoreOrder))

	for _, word := range strings.Fields(t) {
		for lang, words := range commonWords {
			if slices.Contains(words, word) {
				scores[lang] += 3
			}
		}
	}

	var kana, han, hangul, latin, viet int
	accents := make(map[string]int, len(europeanMarks))
	for _, r := range t {
		switch {
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			kana++
		case unicode.Is(unicode.Han, r):
			han++
		case unicode.Is(unicode.Hangul, r):
			hangul++
		}
		if r >= 'a' && r <= 'z' {
			latin++
		}
		if strings.ContainsRune(vietnameseMarks, r) {
			viet++
		}
		for lang, marks := range europeanMarks {
			if strings.ContainsRune(marks, r) {
				accents[lang]++
			}
		}
	}

	scores["vi"] += viet * 5
	scores["ja"] += kana * 5
	scores["ko"] += hangul * 5
	// Han characters only count as Japanese when kana are present.
	if kana > 0 {
		scores["ja"] += han * 3
	} else {
		scores["zh-cn"] += han * 5
	}

	if latin > 0 && scores["vi"] < 10 && scores["ja"] < 10 && scores["ko"] < 10 && scores["zh-cn"] < 10 {
		for lang, n := range accents {
			scores[lang] += n * 5
		}
		european := false
		for _, lang := range europeanLanguages {
			if scores[lang] >= 5 {
				european = true
				break
			}
		}
		if !european {
			scores["en"] += latin
		}
	}

	for lang, list := range commonPhrases {
		for _, phrase := range list {
			if strings.Contains(t, phrase) {
				scores[lang] += 10
			}
		}
	}

	best, bestScore := "en", 0
	for _, lang := range scoreOrder {
		if scores[lang] > bestScore {
			best, bestScore = lang, scores[lang]
		}
	}
	if bestScore < 3 {
		return "en"
	}
	return best
}

// Local adapts DetectLocal to the Detector interface.
type Local struct{}

func (Local) Detect(_ context.Context, text string) (Detection, error) {
	return Detection{Language: DetectLocal(text), Confidence: 0.8, Method: "local"}, nil
}

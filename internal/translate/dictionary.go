package translate

import (
	"context"
	"strings"
)

// phrases maps source code → lowercase phrase → target code → translation.
var phrases = map[string]map[string]map[string]string{
	"en": {
		"hello": {
			"vi": "xin chào", "fr": "bonjour", "de": "hallo", "ja": "こんにちは", "ko": "안녕하세요",
			"zh-cn": "你好", "es": "hola", "it": "ciao", "pt": "olá",
		},
		"goodbye": {
			"vi": "tạm biệt", "fr": "au revoir", "de": "auf wiedersehen", "ja": "さようなら", "ko": "안녕히 가세요",
			"zh-cn": "再见", "es": "adiós", "it": "arrivederci", "pt": "adeus",
		},
		"thank you": {
			"vi": "cảm ơn", "fr": "merci", "de": "danke", "ja": "ありがとう", "ko": "감사합니다",
			"zh-cn": "谢谢", "es": "gracias", "it": "grazie", "pt": "obrigado",
		},
	},
	"vi": {
		"xin chào": {
			"en": "hello", "fr": "bonjour", "de": "hallo", "ja": "こんにちは", "ko": "안녕하세요",
			"zh-cn": "你好", "es": "hola", "it": "ciao", "pt": "olá",
		},
		"tạm biệt": {
			"en": "goodbye", "fr": "au revoir", "de": "auf wiedersehen", "ja": "さようなら", "ko": "안녕히 가세요",
			"zh-cn": "再见", "es": "adiós", "it": "arrivederci", "pt": "adeus",
		},
		"cảm ơn": {
			"en": "thank you", "fr": "merci", "de": "danke", "ja": "ありがとう", "ko": "감사합니다",
			"zh-cn": "谢谢", "es": "gracias", "it": "grazie", "pt": "obrigado",
		},
	},
}

// Dictionary answers a handful of greetings without a network round trip.
type Dictionary struct{}

func (Dictionary) Translate(_ context.Context, text, source, target string) (Result, error) {
	byPhrase, ok := phrases[normalizeCode(source)]
	if !ok {
		return Result{}, ErrNoTranslation
	}
	byTarget, ok := byPhrase[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return Result{}, ErrNoTranslation
	}
	translated, ok := byTarget[normalizeCode(target)]
	if !ok {
		return Result{}, ErrNoTranslation
	}
	return Result{Text: translated, Method: "dictionary", DetectedLanguage: normalizeCode(source)}, nil
}

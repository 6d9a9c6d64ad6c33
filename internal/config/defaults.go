package config

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level: "info",
		},
		Translate: Translate{
			LibreTranslateURL:  "https://libretranslate.de",
			MyMemoryURL:        "https://api.mymemory.translated.net",
			TimeoutSeconds:     15,
			DefaultDestination: "Tiếng Anh",
			DebounceMillis:     400,
		},
		Speech: Speech{
			TTSProvider:    "google",
			GoogleTTSURL:   "https://translate.google.com",
			OpenAITTSModel: "tts-1",
			OpenAIVoice:    "alloy",
			WhisperModel:   "whisper-1",
			SampleRate:     16000,
			AmbientMillis:  1000,
			PauseMillis:    800,
			PhraseSeconds:  30,
			WaitSeconds:    10,
		},
		OCR: OCR{
			Languages:  []string{"vie", "eng"},
			Preprocess: true,
		},
		Server: Server{
			Addr:              "127.0.0.1:3000",
			AllowedOrigins:    []string{"*"},
			RateLimit:         60,
			RateWindowSeconds: 60,
		},
	}
}

package utils

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const ttsEndpoint = "https://translate.google.com/translate_tts"

// The endpoint rejects long q parameters, so text is synthesized in chunks;
// the returned MP3 frames concatenate cleanly.
const ttsChunkSize = 200

// NormalizeLang reduces a BCP 47 style tag to the bare language code the
// synthesis endpoint expects: "en-US" becomes "en", empty input defaults
// to "en".
func NormalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "en"
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}

// SynthesizeSpeech converts text to MP3 audio via the Google Translate TTS
// endpoint.
func SynthesizeSpeech(text, lang string) ([]byte, error) {
	client := resty.New().SetTimeout(30 * time.Second)

	var audio []byte
	for _, chunk := range splitText(text, ttsChunkSize) {
		resp, err := client.R().
			SetQueryParams(map[string]string{
				"ie":     "UTF-8",
				"client": "tw-ob",
				"tl":     lang,
				"q":      chunk,
			}).
			Get(ttsEndpoint)
		if err != nil {
			return nil, fmt.Errorf("tts request failed: %w", err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("tts request failed with status %d", resp.StatusCode())
		}
		audio = append(audio, resp.Body()...)
	}
	return audio, nil
}

// splitText cuts text into chunks of at most max runes, breaking on spaces
// where possible. A single word longer than max becomes its own chunk.
func splitText(text string, max int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) <= max {
			current += " " + word
			continue
		}
		chunks = append(chunks, current)
		current = word
	}
	return append(chunks, current)
}

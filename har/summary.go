package har

import "unicode/utf8"

const previewLength = 200

// Summary is a lightweight view of an entry, small enough to list many
// of them in a language-model prompt.
type Summary struct {
	Method          string `json:"method"`
	URL             string `json:"url"`
	ContentType     string `json:"content_type"`
	ResponsePreview string `json:"response_preview"`
}

// Summarize condenses an entry into a Summary.
func Summarize(entry Entry) Summary {
	return Summary{
		Method:          entry.Request.Method,
		URL:             entry.Request.URL,
		ContentType:     entry.Response.ContentType(),
		ResponsePreview: responsePreview(entry.Response),
	}
}

// SummarizeAll condenses entries in order.
func SummarizeAll(entries []Entry) []Summary {
	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, Summarize(entry))
	}
	return summaries
}

func responsePreview(response Response) string {
	text := response.Content.Text
	if len(text) <= previewLength {
		return text
	}
	// Back off to a rune boundary so the cut never splits a multi-byte
	// UTF-8 sequence.
	cut := previewLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

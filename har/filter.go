package har

import "strings"

// Content types that indicate page/asset traffic rather than API calls.
// Matching is substring-based so parameterized types such as
// "application/json; charset=utf-8" are handled without MIME parsing.
var nonAPITypes = []string{
	"text/html",
	"text/css",
	"image/",
	"font/",
	"video/",
	"audio/",
	"application/javascript",
	"text/javascript",
}

// FilterAPIEntries returns the entries that look like API traffic,
// preserving capture order. Entries without a response Content-Type
// header are kept: absence is not evidence of non-API traffic.
func FilterAPIEntries(entries []Entry) []Entry {
	var api []Entry
	for _, entry := range entries {
		if !isAPIEntry(entry) {
			continue
		}
		api = append(api, entry)
	}
	return api
}

func isAPIEntry(entry Entry) bool {
	contentType := strings.ToLower(entry.Response.ContentType())
	for _, nonAPI := range nonAPITypes {
		if strings.Contains(contentType, nonAPI) {
			return false
		}
	}
	return true
}

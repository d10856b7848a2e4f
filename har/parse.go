package har

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Parse decodes a HAR file into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing HAR file")
	}
	return &doc, nil
}

func lookup(pairs []NameValuePair, name string) string {
	for _, pair := range pairs {
		if strings.EqualFold(pair.Name, name) {
			return pair.Value
		}
	}
	return ""
}

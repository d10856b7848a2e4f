package model

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
)

// bodyJSON is the wire form of a Body: a "type" tag plus the variant
// payload, matching what API clients exchange with the server.
type bodyJSON struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content,omitempty"`
	Raw     string      `json:"raw,omitempty"`
}

func (b Body) MarshalJSON() ([]byte, error) {
	wire := bodyJSON{Type: b.Kind.String(), Raw: b.Raw}
	switch b.Kind {
	case BodyJSON:
		wire.Content = b.Content
	case BodyForm:
		wire.Content = map[string][]string(b.Form)
	}
	return json.Marshal(wire)
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var wire bodyJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(err, "parsing body")
	}

	switch wire.Type {
	case "json":
		*b = Body{Kind: BodyJSON, Content: wire.Content, Raw: wire.Raw}
	case "form":
		form, err := decodeForm(wire.Content)
		if err != nil {
			return err
		}
		*b = Body{Kind: BodyForm, Form: form, Raw: wire.Raw}
	case "text":
		*b = Body{Kind: BodyText, Raw: wire.Raw}
	case "none", "":
		*b = Body{Kind: BodyNone}
	default:
		return errors.Errorf("unknown body type: %q", wire.Type)
	}
	return nil
}

// decodeForm accepts both single values and value lists per key.
func decodeForm(content interface{}) (url.Values, error) {
	if content == nil {
		return url.Values{}, nil
	}
	object, ok := content.(map[string]interface{})
	if !ok {
		return nil, errors.New("form body content must be an object")
	}

	form := url.Values{}
	for key, value := range object {
		switch v := value.(type) {
		case string:
			form.Add(key, v)
		case []interface{}:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, errors.Errorf("form value for %q must be a string", key)
				}
				form.Add(key, s)
			}
		default:
			return nil, errors.Errorf("form value for %q must be a string or list", key)
		}
	}
	return form, nil
}

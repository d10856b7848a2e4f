package model

import "strings"

// AuthType classifies the detected credential.
type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthBearer AuthType = "bearer_token"
	AuthBasic  AuthType = "basic_auth"
	AuthAPIKey AuthType = "api_key"
)

// AuthLocation says where the credential was found.
type AuthLocation string

const (
	LocationNone   AuthLocation = "none"
	LocationHeader AuthLocation = "header"
	LocationQuery  AuthLocation = "query"
)

// AuthInfo describes the credential detected in a request.
// OriginalValue is only ever handed to the live execution path;
// every projection surfaces RedactedValue instead.
type AuthInfo struct {
	Type          AuthType     `json:"type"`
	Location      AuthLocation `json:"location"`
	RedactedValue string       `json:"redacted_value"`
	OriginalValue string       `json:"-"`
}

// basicAuthMask replaces basic-auth credentials wholesale; the encoded
// user:password pair must not leak even partially.
const basicAuthMask = "********"

// Header names that commonly carry API keys, checked after the
// Authorization schemes so bearer/basic detection wins.
var apiKeyHeaders = []string{"x-api-key", "api-key", "x-auth-token", "authorization"}

// Query parameter names that commonly carry API keys. The list order is
// the match order when several are present, independent of capture order.
var apiKeyParams = []string{"api_key", "apikey", "key", "token", "access_token"}

// DetectAuth classifies the authentication material in a request.
// The first matching rule wins: bearer and basic Authorization schemes,
// then API-key headers, then API-key query parameters.
func DetectAuth(headers, queryParams map[string]string) AuthInfo {
	info := AuthInfo{Type: AuthNone, Location: LocationNone}

	authorization := headerValue(headers, "authorization")
	lower := strings.ToLower(authorization)

	switch {
	case strings.HasPrefix(lower, "bearer "):
		token := authorization[len("bearer "):]
		info.Type = AuthBearer
		info.Location = LocationHeader
		info.OriginalValue = token
		info.RedactedValue = Redact(token)
	case strings.HasPrefix(lower, "basic "):
		info.Type = AuthBasic
		info.Location = LocationHeader
		info.OriginalValue = authorization
		info.RedactedValue = basicAuthMask
	}

	if info.Type == AuthNone {
		for _, name := range apiKeyHeaders {
			value := headerValue(headers, name)
			if value == "" {
				continue
			}
			info.Type = AuthAPIKey
			info.Location = LocationHeader
			info.OriginalValue = value
			info.RedactedValue = Redact(value)
			break
		}
	}

	if info.Type == AuthNone {
		for _, name := range apiKeyParams {
			value, ok := queryParams[name]
			if !ok || value == "" {
				continue
			}
			info.Type = AuthAPIKey
			info.Location = LocationQuery
			info.OriginalValue = value
			info.RedactedValue = Redact(value)
			break
		}
	}

	return info
}

func headerValue(headers map[string]string, name string) string {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	return ""
}

// Redact masks a credential while preserving enough shape to recognize
// the field. Values shorter than 8 characters collapse to a fixed mask;
// longer values keep a short prefix and suffix, and the output length
// equals the input length.
func Redact(value string) string {
	length := len(value)
	switch {
	case length < 8:
		return "****"
	case length <= 12:
		return value[:2] + strings.Repeat("*", length-4) + value[length-2:]
	default:
		return value[:4] + strings.Repeat("*", length-8) + value[length-4:]
	}
}

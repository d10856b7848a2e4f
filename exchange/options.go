package exchange

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a live re-execution.
const DefaultTimeout = 30 * time.Second

type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	SkipVerify      bool
	ForceHTTP1      bool
	Transport       http.RoundTripper
}

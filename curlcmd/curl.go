// Package curlcmd renders a captured request as a runnable curl
// command. Unlike the other projectors it works on the raw HAR shape:
// the command is a faithful transcript of the capture, with header
// order and names preserved verbatim.
package curlcmd

import (
	"fmt"
	"strings"

	"github.com/harx-dev/harx/har"
)

// Command converts a HAR request into a multi-line curl command.
func Command(request *har.Request) string {
	parts := []string{fmt.Sprintf("curl '%s'", request.URL)}

	if request.Method != "GET" {
		parts = append(parts, fmt.Sprintf("-X %s", request.Method))
	}

	for _, header := range request.Headers {
		// HTTP/2 pseudo-headers cannot be set from the command line.
		if strings.HasPrefix(header.Name, ":") {
			continue
		}
		parts = append(parts, fmt.Sprintf("-H '%s: %s'", header.Name, escapeSingleQuotes(header.Value)))
	}

	if request.PostData != nil && request.PostData.Text != "" {
		parts = append(parts, fmt.Sprintf("--data-raw '%s'", escapeSingleQuotes(request.PostData.Text)))
	}

	return strings.Join(parts, " \\\n  ")
}

// escapeSingleQuotes makes a value safe inside a single-quoted shell
// string by splicing each quote: ' becomes '"'"'.
func escapeSingleQuotes(value string) string {
	return strings.ReplaceAll(value, "'", `'"'"'`)
}

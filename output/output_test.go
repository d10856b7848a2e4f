package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harx-dev/harx/analyze"
	"github.com/harx-dev/harx/exchange"
	"github.com/harx-dev/harx/model"
)

func sampleAnalysis() *analyze.Analysis {
	return &analyze.Analysis{
		CurlCommand: "curl 'https://x.test/api/items?page=1' \\\n  -H 'Accept: application/json'",
		Details: analyze.Details{
			Method:           "GET",
			URL:              "https://x.test/api/items?page=1",
			Index:            1,
			TotalAPIRequests: 3,
		},
		Auth: model.AuthInfo{
			Type:          model.AuthBearer,
			Location:      model.LocationHeader,
			RedactedValue: "Bear******7890",
			OriginalValue: "token-1234567890",
		},
		Parameters: analyze.Parameters{
			QueryParams: map[string]string{"page": "1"},
			Headers:     map[string]string{"Accept": "application/json"},
		},
	}
}

func TestPlainPrinterPrintAnalysis(t *testing.T) {
	// Setup
	var buffer bytes.Buffer
	printer := NewPlainPrinter(&buffer, &Options{
		PrintCurl:       true,
		PrintDetails:    true,
		PrintAuth:       true,
		PrintParameters: true,
	})

	// Exercise
	if err := printer.PrintAnalysis(sampleAnalysis()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	actual := buffer.String()
	for _, fragment := range []string{
		"GET https://x.test/api/items?page=1",
		"Matched request 2 of 3 API calls",
		"curl 'https://x.test/api/items?page=1'",
		"Authentication: bearer_token (header)",
		"Value: Bear******7890",
		"page: 1",
		"Accept: application/json",
	} {
		if !strings.Contains(actual, fragment) {
			t.Errorf("output should contain %q, got:\n%s", fragment, actual)
		}
	}
	if strings.Contains(actual, "token-1234567890") {
		t.Errorf("output must not contain the original credential:\n%s", actual)
	}
}

func TestPlainPrinterSectionsCanBeDisabled(t *testing.T) {
	// Setup
	var buffer bytes.Buffer
	printer := NewPlainPrinter(&buffer, &Options{PrintCurl: true})

	// Exercise
	if err := printer.PrintAnalysis(sampleAnalysis()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	actual := buffer.String()
	if !strings.Contains(actual, "curl ") {
		t.Errorf("curl command should be printed:\n%s", actual)
	}
	if strings.Contains(actual, "Authentication") || strings.Contains(actual, "Matched request") {
		t.Errorf("disabled sections should not be printed:\n%s", actual)
	}
}

func TestPlainPrinterPrintExecution(t *testing.T) {
	// Setup
	var buffer bytes.Buffer
	printer := NewPlainPrinter(&buffer, &Options{})
	result := &exchange.Result{
		StatusCode:     200,
		StatusText:     "OK",
		Headers:        map[string]string{"Content-Type": "application/json"},
		Body:           map[string]interface{}{"ok": true},
		BodyType:       "json",
		ElapsedSeconds: 0.123,
		SizeBytes:      1024,
	}

	// Exercise
	if err := printer.PrintExecution(result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	actual := buffer.String()
	for _, fragment := range []string{
		"200 OK (0.123s, 1K)",
		"Content-Type: application/json",
		"\"ok\": true",
	} {
		if !strings.Contains(actual, fragment) {
			t.Errorf("output should contain %q, got:\n%s", fragment, actual)
		}
	}
}

func TestPrettyPrinterPrintExecutionKeepsBodyReadable(t *testing.T) {
	// Setup
	var buffer bytes.Buffer
	printer := NewPrettyPrinter(&buffer, &Options{})
	result := &exchange.Result{
		StatusCode: 404,
		StatusText: "Not Found",
		Body:       "missing",
		BodyType:   "text",
	}

	// Exercise
	if err := printer.PrintExecution(result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	if !strings.Contains(buffer.String(), "missing") {
		t.Errorf("text body should be printed verbatim:\n%s", buffer.String())
	}
}

func TestFileWriterAvoidsOverwriting(t *testing.T) {
	// Setup
	dir := t.TempDir()
	existing := filepath.Join(dir, "get_api_items.markdown")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	// Exercise
	writer := NewFileWriter(existing, &Options{})

	// Verify
	expected := existing + ".1"
	if writer.Path() != expected {
		t.Errorf("unexpected path: expected=%s, actual=%s", expected, writer.Path())
	}
	if err := writer.Write("new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "old" {
		t.Errorf("existing file must be untouched, got %q", content)
	}
}

func TestFileWriterHonorsOverwrite(t *testing.T) {
	// Setup
	dir := t.TempDir()
	existing := filepath.Join(dir, "doc.markdown")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	// Exercise
	writer := NewFileWriter("ignored", &Options{OutputFile: existing, Overwrite: true})
	if err := writer.Write("new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "new" {
		t.Errorf("file should be overwritten, got %q", content)
	}
}

package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/harx-dev/harx/analyze"
	"github.com/harx-dev/harx/codegen"
	"github.com/harx-dev/harx/docgen"
	"github.com/harx-dev/harx/exchange"
	"github.com/harx-dev/harx/har"
	"github.com/harx-dev/harx/llm"
	"github.com/harx-dev/harx/model"
)

// maxUploadBytes caps the size of a multipart HAR upload.
const maxUploadBytes = 32 << 20

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "healthy"})
}

// analyzeHAR accepts a multipart upload (har_file + description), runs
// the selection pipeline, and returns the analysis.
func (s *Server) analyzeHAR(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.Wrap(err, "parsing multipart form")))
		return
	}

	file, header, err := r.FormFile("har_file")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.New("har_file is required")))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".har") {
		render.Render(w, r, ErrInvalidRequest(errors.New("file must be a .har file")))
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	if description == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("description is required")))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		render.Render(w, r, ErrInternal(errors.Wrap(err, "reading upload")))
		return
	}

	doc, err := har.Parse(content)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	analysis, err := analyze.Run(r.Context(), doc, description, s.selector)
	if err != nil {
		s.logger.Error("analysis failed", zap.Error(err))
		switch {
		case errors.Is(err, llm.ErrNoCandidates):
			render.Render(w, r, ErrNotFound(err))
		default:
			render.Render(w, r, ErrInternal(errors.Wrap(err, "error processing HAR file")))
		}
		return
	}

	s.logger.Info("analysis completed",
		zap.String("method", analysis.Details.Method),
		zap.Int("index", analysis.Details.Index),
		zap.Int("total_api_requests", analysis.Details.TotalAPIRequests))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, analysis)
}

// testRequest re-executes the captured request live and reports the
// response.
func (s *Server) testRequest(w http.ResponseWriter, r *http.Request) {
	var requestInfo model.RequestModel
	if err := render.DecodeJSON(r.Body, &requestInfo); err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.Wrap(err, "parsing request body")))
		return
	}

	result, err := exchange.Execute(r.Context(), requestInfo, &exchange.Options{
		Timeout: s.timeout,
	})
	if err != nil {
		s.logger.Error("request execution failed", zap.Error(err))
		if errors.Is(err, exchange.ErrInvalidHeaders) || errors.Is(err, exchange.ErrInvalidRequest) {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		render.Render(w, r, ErrInternal(errors.Wrap(err, "error executing request")))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

type generateCodeRequest struct {
	RequestInfo model.RequestModel `json:"request_info"`
	Language    string             `json:"language"`
}

type generateCodeResponse struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

func (s *Server) generateCode(w http.ResponseWriter, r *http.Request) {
	req := generateCodeRequest{Language: string(codegen.Python)}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.Wrap(err, "parsing request body")))
		return
	}

	code, err := codegen.Generate(req.RequestInfo, codegen.Language(req.Language))
	if err != nil {
		if errors.Is(err, codegen.ErrUnsupportedLanguage) {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		s.logger.Error("code generation failed", zap.Error(err))
		render.Render(w, r, ErrInternal(errors.Wrap(err, "error generating code")))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, generateCodeResponse{Code: code, Language: req.Language})
}

type exportDocsRequest struct {
	RequestInfo model.RequestModel `json:"request_info"`
	AuthInfo    model.AuthInfo     `json:"auth_info"`
	Format      string             `json:"format"`
}

type exportDocsResponse struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	Filename string `json:"filename"`
}

func (s *Server) exportDocs(w http.ResponseWriter, r *http.Request) {
	req := exportDocsRequest{Format: string(docgen.Markdown)}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.Wrap(err, "parsing request body")))
		return
	}

	content, err := docgen.Generate(req.RequestInfo, req.AuthInfo, docgen.Format(req.Format))
	if err != nil {
		if errors.Is(err, docgen.ErrUnsupportedFormat) {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		s.logger.Error("documentation export failed", zap.Error(err))
		render.Render(w, r, ErrInternal(errors.Wrap(err, "error generating documentation")))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, exportDocsResponse{
		Content:  content,
		Format:   req.Format,
		Filename: docgen.Filename(req.RequestInfo, docgen.Format(req.Format)),
	})
}

package problems

import (
	"encoding/json"
	"errors"
	"net/http"

	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
)

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails struct {
	typ    string
	title  string
	detail string
	code   int
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	typePrefix string = "https://diwise.io/eventspot/problems/"
)

func newProblem(name, title, detail string, code int) *ProblemDetails {
	return &ProblemDetails{
		typ:    typePrefix + name,
		title:  title,
		detail: detail,
		code:   code,
	}
}

func NewBadRequest(detail string) *ProblemDetails {
	return newProblem("BadRequest", "Bad Request", detail, http.StatusBadRequest)
}

func NewConflict(detail string) *ProblemDetails {
	return newProblem("Conflict", "Conflict", detail, http.StatusConflict)
}

func NewForbidden(detail string) *ProblemDetails {
	return newProblem("Forbidden", "Forbidden", detail, http.StatusForbidden)
}

func NewInternalError(detail string) *ProblemDetails {
	return newProblem("InternalError", "Internal Error", detail, http.StatusInternalServerError)
}

func NewNotFound(detail string) *ProblemDetails {
	return newProblem("ResourceNotFound", "Not Found", detail, http.StatusNotFound)
}

func NewUnprocessableEntity(detail string) *ProblemDetails {
	return newProblem("TypeConversion", "Unprocessable Entity", detail, http.StatusUnprocessableEntity)
}

func NewUpstreamError(detail string) *ProblemDetails {
	return newProblem("UpstreamError", "Bad Gateway", detail, http.StatusBadGateway)
}

// FromError picks the problem type that matches the sentinel error wrapped by err
func FromError(err error) *ProblemDetails {
	switch {
	case errors.Is(err, eserrors.ErrNotFound):
		return NewNotFound(err.Error())
	case errors.Is(err, eserrors.ErrBadRequest):
		return NewBadRequest(err.Error())
	case errors.Is(err, eserrors.ErrConflict):
		return NewConflict(err.Error())
	case errors.Is(err, eserrors.ErrTypeConversion):
		return NewUnprocessableEntity(err.Error())
	case errors.Is(err, eserrors.ErrUnauthorized), errors.Is(err, eserrors.ErrRequest), errors.Is(err, eserrors.ErrBadResponse):
		return NewUpstreamError(err.Error())
	}

	return NewInternalError(err.Error())
}

func ReportError(w http.ResponseWriter, err error) {
	FromError(err).WriteResponse(w)
}

func (p *ProblemDetails) Type() string   { return p.typ }
func (p *ProblemDetails) Title() string  { return p.title }
func (p *ProblemDetails) Detail() string { return p.detail }

func (p *ProblemDetails) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}{
		Type:   p.typ,
		Title:  p.title,
		Status: p.ResponseCode(),
		Detail: p.detail,
	})
}

func (p *ProblemDetails) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

func (p *ProblemDetails) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}

package problems

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/matryer/is"
)

func TestFromError(t *testing.T) {
	is := is.New(t)

	is.Equal(FromError(eserrors.NewNotFoundError("gone")).ResponseCode(), http.StatusNotFound)
	is.Equal(FromError(eserrors.NewConflictError("busy")).ResponseCode(), http.StatusConflict)
	is.Equal(FromError(eserrors.NewUnauthorizedError("bad key")).ResponseCode(), http.StatusBadGateway)
	is.Equal(FromError(fmt.Errorf("wrapped: %w", eserrors.ErrTypeConversion)).ResponseCode(), http.StatusUnprocessableEntity)
	is.Equal(FromError(fmt.Errorf("boom")).ResponseCode(), http.StatusInternalServerError)
}

func TestWriteResponse(t *testing.T) {
	is := is.New(t)
	w := httptest.NewRecorder()

	ReportError(w, eserrors.NewNotFoundError("no event with id 1"))

	is.Equal(w.Code, http.StatusNotFound)
	is.Equal(w.Header().Get("Content-Type"), ProblemReportContentType)

	body := map[string]any{}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &body))
	is.Equal(body["title"], "Not Found")
	is.Equal(body["detail"], "no event with id 1")
	is.Equal(body["status"], float64(404))
	is.Equal(body["type"], "https://diwise.io/eventspot/problems/ResourceNotFound")
}

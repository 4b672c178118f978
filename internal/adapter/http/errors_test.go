package http

import (
	"bytes"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

func newErrCtx(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/x", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandler_PlainErrorHidesText(t *testing.T) {
	buf := &bytes.Buffer{}
	h := ErrorHandler(log.NewWithOptions(buf, log.Options{Level: log.DebugLevel}))
	c, rec := newErrCtx(stdhttp.MethodGet)

	h(errors.New("secret detail"), c)

	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	want := `{"success":false,"data":null,"message":"Internal Server Error"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
	if !strings.Contains(buf.String(), "secret detail") {
		t.Fatalf("expected error text in log, got %q", buf.String())
	}
}

func TestErrorHandler_HTTPErrorMessage(t *testing.T) {
	h := ErrorHandler(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	c, rec := newErrCtx(stdhttp.MethodGet)

	h(echo.NewHTTPError(stdhttp.StatusTeapot, "short and stout"), c)

	if rec.Code != stdhttp.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"short and stout"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	h := ErrorHandler(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	c, rec := newErrCtx(stdhttp.MethodHead)

	h(echo.ErrNotFound, c)

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	h := ErrorHandler(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	c, rec := newErrCtx(stdhttp.MethodGet)

	_ = c.String(stdhttp.StatusOK, "done")
	h(errors.New("late"), c)

	if rec.Code != stdhttp.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response modified: %d %q", rec.Code, rec.Body.String())
	}
}

package consultation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/swaasthmitra/intake/internal/platform/genai"
)

func newTestHandler() (*Handler, *echo.Echo, *mockGenerator) {
	svc, _, gen := newTestService()
	return NewHandler(svc), echo.New(), gen
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestHandler_StartConsultation(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.StartConsultation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var sess Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if sess.State != StateInProgress {
		t.Errorf("expected in_progress, got %s", sess.State)
	}
}

func TestHandler_GetConsultation_InvalidID(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	err := h.GetConsultation(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", got)
	}
}

func TestHandler_GetConsultation_NotFound(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	err := h.GetConsultation(c)
	if got := httpStatus(t, err); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
}

func startSession(t *testing.T, h *Handler) *Session {
	t.Helper()
	sess, err := h.svc.StartConsultation(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return sess
}

func TestHandler_SubmitAnswer(t *testing.T) {
	h, e, _ := newTestHandler()
	sess := startSession(t, h)

	body := `{"question_id":"age","value":"18-30"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	if err := h.SubmitAnswer(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_SubmitAnswer_Mismatch(t *testing.T) {
	h, e, _ := newTestHandler()
	sess := startSession(t, h)

	body := `{"question_id":"gender","value":"Male"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	err := h.SubmitAnswer(c)
	if got := httpStatus(t, err); got != http.StatusConflict {
		t.Errorf("expected 409 for question mismatch, got %d", got)
	}
}

func TestHandler_Advance(t *testing.T) {
	h, e, _ := newTestHandler()
	sess := startSession(t, h)
	if _, err := h.svc.SubmitAnswer(context.Background(), sess.ID, "age", "18-30"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	if err := h.Advance(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result AdvanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Completed || result.Question == nil {
		t.Errorf("expected next question in result, got %+v", result)
	}
}

func TestHandler_Report_BeforeCompletion(t *testing.T) {
	h, e, _ := newTestHandler()
	sess := startSession(t, h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())
	err := h.Report(c)
	if got := httpStatus(t, err); got != http.StatusConflict {
		t.Errorf("expected 409 before completion, got %d", got)
	}
}

func TestHandler_NarrativeReport_ErrorMapping(t *testing.T) {
	cases := []struct {
		genErr error
		status int
	}{
		{genai.ErrNoAPIKey, http.StatusServiceUnavailable},
		{genai.ErrRateLimited, http.StatusTooManyRequests},
		{genai.ErrUnavailable, http.StatusBadGateway},
		{genai.ErrEmptyResponse, http.StatusBadGateway},
	}
	for _, tt := range cases {
		h, e, gen := newTestHandler()
		sess := startSession(t, h)
		driveToComplete(t, h.svc, sess.ID, "nothing unusual", nil)
		gen.err = tt.genErr

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(sess.ID.String())
		err := h.NarrativeReport(c)
		if got := httpStatus(t, err); got != tt.status {
			t.Errorf("%v: expected %d, got %d", tt.genErr, tt.status, got)
		}
	}
}

func TestHandler_ListConsultations(t *testing.T) {
	h, e, _ := newTestHandler()
	startSession(t, h)
	startSession(t, h)

	req := httptest.NewRequest(http.MethodGet, "/?limit=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListConsultations(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Total   int  `json:"total"`
		HasMore bool `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
	if !resp.HasMore {
		t.Error("expected has_more with limit 1")
	}
}

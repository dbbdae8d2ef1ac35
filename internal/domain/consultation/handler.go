package consultation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/swaasthmitra/intake/internal/platform/genai"
	"github.com/swaasthmitra/intake/pkg/pagination"
)

// Handler exposes the consultation flow over HTTP for the UI host.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the consultation endpoints on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/consultations")
	g.POST("", h.StartConsultation)
	g.GET("", h.ListConsultations)
	g.GET("/:id", h.GetConsultation)
	g.DELETE("/:id", h.DeleteConsultation)
	g.GET("/:id/question", h.CurrentQuestion)
	g.POST("/:id/answers", h.SubmitAnswer)
	g.POST("/:id/advance", h.Advance)
	g.POST("/:id/restart", h.RestartConsultation)
	g.GET("/:id/report", h.Report)
	g.POST("/:id/narrative", h.NarrativeReport)
}

func (h *Handler) StartConsultation(c echo.Context) error {
	sess, err := h.svc.StartConsultation(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) ListConsultations(c echo.Context) error {
	params := pagination.FromContext(c)
	items, total, err := h.svc.ListConsultations(c.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, params))
}

func (h *Handler) GetConsultation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.GetConsultation(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) DeleteConsultation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteConsultation(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CurrentQuestion(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	view, err := h.svc.CurrentQuestion(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, view)
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

func (h *Handler) SubmitAnswer(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req submitAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.QuestionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question_id is required")
	}
	sess, err := h.svc.SubmitAnswer(c.Request().Context(), id, req.QuestionID, req.Value)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Advance(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	result, err := h.svc.Advance(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) RestartConsultation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.RestartConsultation(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Report(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	r, err := h.svc.Report(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) NarrativeReport(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	r, err := h.svc.NarrativeReport(c.Request().Context(), id)
	if err != nil {
		return narrativeError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid consultation id")
	}
	return id, nil
}

// domainError maps domain sentinel errors to HTTP statuses.
func domainError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
	case errors.Is(err, ErrQuestionMismatch):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrSessionState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}

// narrativeError distinguishes narrative generation failures so the UI can
// tell a configuration problem from a transient one. The consultation and
// its assessment are unaffected; the plain report stays available.
func narrativeError(err error) error {
	switch {
	case errors.Is(err, genai.ErrNoAPIKey):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "narrative service is not configured")
	case errors.Is(err, genai.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "narrative service is rate limited, retry shortly")
	case errors.Is(err, genai.ErrUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "narrative service is unreachable, retry shortly")
	case errors.Is(err, genai.ErrEmptyResponse):
		return echo.NewHTTPError(http.StatusBadGateway, "narrative service returned no content")
	default:
		return domainError(err)
	}
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/climate-mood/internal/domain"
	"github.com/couchcryptid/climate-mood/internal/view"
)

const dateParamLayout = "2006-01-02"

// problem is an RFC 7807 style error payload.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p) //nolint:errcheck // best-effort error response
}

// dashboardRequest carries the raw filter query parameters.
type dashboardRequest struct {
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
	Year1 int    `validate:"omitempty,gte=1800,lte=2200"`
	Year2 int    `validate:"omitempty,gte=1800,lte=2200"`
}

func newDashboardHandler(svc Dashboard, logger *slog.Logger) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		filter, badInput := parseFilter(r, validate)
		if badInput != "" {
			writeProblem(w, problem{
				Title:  "invalid filter",
				Status: http.StatusBadRequest,
				Detail: badInput,
			})
			return
		}

		model, err := svc.Render(r.Context(), filter)
		if err != nil {
			logger.Error("render failed", "error", err)
			writeProblem(w, problem{
				Title:  "dataset unavailable",
				Status: http.StatusBadGateway,
				Detail: err.Error(),
			})
			return
		}

		render.JSON(w, r, model)
	}
}

// parseFilter converts query parameters into a view.Filter. An absent moods
// parameter selects every mood; a present-but-empty one selects none, which
// renders an empty view. A non-empty return string describes invalid input.
func parseFilter(r *http.Request, validate *validator.Validate) (view.Filter, string) {
	q := r.URL.Query()

	req := dashboardRequest{
		Start: q.Get("start"),
		End:   q.Get("end"),
	}

	var err error
	if req.Year1, err = parseYear(q.Get("year1")); err != nil {
		return view.Filter{}, "year1: " + err.Error()
	}
	if req.Year2, err = parseYear(q.Get("year2")); err != nil {
		return view.Filter{}, "year2: " + err.Error()
	}
	if err := validate.Struct(req); err != nil {
		return view.Filter{}, err.Error()
	}

	f := view.AllMoodsFilter()
	f.Year1, f.Year2 = req.Year1, req.Year2

	if req.Start != "" {
		f.Start, _ = time.Parse(dateParamLayout, req.Start)
	}
	if req.End != "" {
		f.End, _ = time.Parse(dateParamLayout, req.End)
	}

	if q.Has("moods") {
		f.Moods = nil
		for _, label := range strings.Split(q.Get("moods"), ",") {
			if label = strings.TrimSpace(label); label == "" {
				continue
			}
			mood, err := domain.ParseMood(label)
			if err != nil {
				return view.Filter{}, err.Error()
			}
			f.Moods = append(f.Moods, mood)
		}
	}

	return f, ""
}

func parseYear(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

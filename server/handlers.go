package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// errBadRequest reports a malformed request outside of the deal fields.
var errBadRequest = errors.New("bad request")

// report is the JSON form of a deals.Report.
type report struct {
	From       date.Date           `json:"from"`
	To         date.Date           `json:"to"`
	Deals      []deals.Deal        `json:"deals"`
	TotalShare decimal.Decimal     `json:"totalShare"`
	Members    []deals.MemberShare `json:"members"`
	Empty      bool                `json:"empty"`
}

func newReport(r deals.Report) report {
	res := report{
		From:       r.Range.From,
		To:         r.Range.To,
		Deals:      r.Lines,
		TotalShare: r.TotalShare,
		Members:    r.Members,
		Empty:      r.Empty,
	}
	if res.Deals == nil {
		res.Deals = []deals.Deal{}
	}
	if res.Members == nil {
		res.Members = []deals.MemberShare{}
	}
	return res
}

func (s *Server) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	var raw deals.RawDeal
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid body: %w", errBadRequest, err))
		return
	}
	d, err := s.book.CreateDeal(raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dealsCreated.Inc()
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDeals(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("date") {
		on, err := s.parseDate(r.URL.Query().Get("date"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		rep, err := s.book.OnDate(on)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newReport(rep).Deals)
		return
	}
	all, err := s.book.Deals()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if all == nil {
		all = []deals.Deal{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleDeleteDeal(w http.ResponseWriter, r *http.Request) {
	on, err := s.parseDate(chi.URLParam(r, "date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: index %q is not a number", errBadRequest, chi.URLParam(r, "index")))
		return
	}
	d, err := s.book.Delete(on, index)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dealsDeleted.Inc()
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	var ref date.Date
	if q := r.URL.Query().Get("date"); q != "" {
		var err error
		if ref, err = s.parseDate(q); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	s.writeReport(w, r)(s.book.Week(ref))
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	from, err := s.parseDate(r.URL.Query().Get("from"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	to, err := s.parseDate(r.URL.Query().Get("to"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeReport(w, r)(s.book.Range(date.Range{From: from, To: to}))
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: month %q is not a number", errBadRequest, chi.URLParam(r, "month")))
		return
	}
	s.writeReport(w, r)(s.book.Month(month))
}

// writeReport returns a function writing the result of a Book query.
func (s *Server) writeReport(w http.ResponseWriter, r *http.Request) func(deals.Report, error) {
	return func(rep deals.Report, err error) {
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newReport(rep))
	}
}

// parseDate reads a D.M date, or an ISO one.
func (s *Server) parseDate(text string) (date.Date, error) {
	d, err := date.ParseShorthand(text, s.book.Today())
	if err == nil {
		return d, nil
	}
	if iso, isoErr := date.Parse(text); isoErr == nil {
		return iso, nil
	}
	return date.Date{}, fmt.Errorf("%w: %w: %q", errBadRequest, err, text)
}

// writeError maps err to its status code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *deals.FieldError
	switch {
	case errors.As(err, &fe):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"field": fe.Field.String(), "error": fe.Err.Error()})
	case errors.Is(err, deals.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, errBadRequest), errors.Is(err, deals.ErrParse), errors.Is(err, deals.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		requestLogger(r, s.logger).Error("request failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

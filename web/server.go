// Package web serves a localhost-only single-user timesheet form; it
// intentionally has no auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	"clockout/calc"
	"clockout/timesheet"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	calculator *calc.Calculator
	templates  *template.Template
	mux        *http.ServeMux
}

func NewServer(calculator *calc.Calculator) http.Handler {
	server := &Server{
		calculator: calculator,
		templates:  template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleForm)
	mux.HandleFunc("POST /{$}", server.handleForm)
	mux.HandleFunc("POST /api/week", server.handleAPIWeek)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type formRow struct {
	Name        string
	Key         string
	Start       string
	End         string
	Lunch       string
	Hours       string
	Assumed     bool
	ErrorFields map[string]bool
}

type formPage struct {
	Title          string
	Calculated     bool
	Rows           []formRow
	TotalHours     string
	HoursTo40      string
	Overtime       bool
	FridayClockOut string
	Errors         []timesheet.Message
	Warnings       []timesheet.Message
	Infos          []timesheet.Message
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	page := formPage{Title: "clockout"}

	if r.Method == http.MethodGet {
		for _, day := range timesheet.Days() {
			page.Rows = append(page.Rows, formRow{
				Name:        day.String(),
				Key:         fieldKey(day, ""),
				ErrorFields: map[string]bool{},
			})
		}
		s.render(w, page)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	var inputs [5]timesheet.DayInput
	for _, day := range timesheet.Days() {
		inputs[day] = timesheet.DayInput{
			Day:   day,
			Start: r.FormValue(fieldKey(day, timesheet.FieldStart)),
			End:   r.FormValue(fieldKey(day, timesheet.FieldEnd)),
			Lunch: r.FormValue(fieldKey(day, timesheet.FieldLunch)),
		}
	}

	week := s.calculator.CalculateWeek(inputs)
	messages := calc.Aggregate(week)

	page.Calculated = true
	page.TotalHours = timesheet.FormatHours(week.TotalHours)
	page.HoursTo40 = timesheet.FormatHours(week.HoursTo40)
	page.Overtime = week.HoursTo40 < 0
	if week.FridayClockOut != nil {
		page.FridayClockOut = week.FridayClockOut.String()
	}
	page.Errors, page.Warnings, page.Infos = calc.BySeverity(messages)

	for _, day := range timesheet.Days() {
		result := week.Days[day]
		row := formRow{
			Name:        day.String(),
			Key:         fieldKey(day, ""),
			Start:       inputs[day].Start,
			End:         inputs[day].End,
			Lunch:       inputs[day].Lunch,
			Hours:       timesheet.FormatHours(result.HoursWorked),
			Assumed:     result.AssumedFullDay,
			ErrorFields: map[string]bool{},
		}
		// Successfully parsed values round-trip in canonical form.
		if result.Start != nil {
			row.Start = result.Start.String()
		}
		if result.End != nil {
			row.End = result.End.String()
		}
		for _, message := range result.Messages {
			if message.Severity == timesheet.SeverityError && message.Ref != nil {
				row.ErrorFields[string(message.Ref.Field)] = true
			}
		}
		page.Rows = append(page.Rows, row)
	}

	s.render(w, page)
}

func (s *Server) handleAPIWeek(w http.ResponseWriter, r *http.Request) {
	var payload WeekPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	inputs, err := payload.DayInputs()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	week := s.calculator.CalculateWeek(inputs)
	writeJSON(w, http.StatusOK, BuildWeekView(week))
}

func (s *Server) render(w http.ResponseWriter, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", page); err != nil {
		log.Printf("render form page: %v", err)
	}
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

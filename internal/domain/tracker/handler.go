package tracker

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"vaccine-tracker/internal/domain/compliance"
	"vaccine-tracker/internal/domain/doses"
	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/domain/subjects"
	"vaccine-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/subjects", func(sr chi.Router) {
		sr.Post("/", createSubjectHandler(svc))
		sr.Get("/", listSubjectsHandler(svc))

		sr.Route("/{subjectID}", func(one chi.Router) {
			one.Get("/", getSubjectHandler(svc))
			one.Delete("/", deleteSubjectHandler(svc))

			// Calendario: sweep antes de leer
			one.Get("/doses", listDosesHandler(svc))
			one.Post("/doses/{doseID}/complete", completeDoseHandler(svc))

			one.Get("/compliance", complianceHandler(svc))

			one.Post("/reminders", scheduleReminderHandler(svc))
			one.Get("/reminders", listRemindersHandler(svc))
			one.Delete("/reminders/{reminderID}", cancelReminderHandler(svc))
		})
	})

	r.Post("/sweep", sweepHandler(svc))
}

type createSubjectRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

type subjectResponse struct {
	ID             string    `json:"id"`
	OwnerAccountID string    `json:"owner_account_id"`
	Name           string    `json:"name"`
	BirthDate      string    `json:"birth_date"`
	CreatedAt      time.Time `json:"created_at"`
}

type createSubjectResponse struct {
	Subject subjectResponse `json:"subject"`
	Doses   []doseResponse  `json:"doses"`
}

type doseResponse struct {
	ID            string       `json:"id"`
	SubjectID     string       `json:"subject_id"`
	Seq           int          `json:"seq"`
	DoseName      string       `json:"dose_name"`
	Category      string       `json:"category"`
	DueDate       string       `json:"due_date"`
	Status        doses.Status `json:"status"`
	CompletedDate *string      `json:"completed_date,omitempty"`
	Note          string       `json:"note,omitempty"`
}

type completeDoseRequest struct {
	CompletedDate string `json:"completed_date"` // YYYY-MM-DD opcional
	Note          string `json:"note"`
}

type complianceResponse struct {
	Weighted  int           `json:"weighted"`
	Raw       int           `json:"raw"`
	Total     int           `json:"total"`
	Completed int           `json:"completed"`
	Upcoming  int           `json:"upcoming"`
	Missed    int           `json:"missed"`
	NextDue   *doseResponse `json:"next_due,omitempty"`
}

type scheduleReminderRequest struct {
	DoseID  string `json:"dose_id"`
	FireAt  string `json:"fire_at"` // RFC3339
	Message string `json:"message"`
}

type reminderResponse struct {
	ID        string    `json:"id"`
	DoseID    string    `json:"dose_id"`
	SubjectID string    `json:"subject_id"`
	FireAt    time.Time `json:"fire_at"`
	Message   string    `json:"message"`
	Consumed  bool      `json:"consumed"`
	CreatedAt time.Time `json:"created_at"`
}

type sweepResponse struct {
	Changed int `json:"changed"`
}

// createSubjectHandler godoc
// @Summary Registrar sujeto
// @Description Registra un sujeto para la cuenta del header `X-Account-ID` y genera su calendario completo de vacunación a partir de la fecha de nacimiento.
// @Tags subjects
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param payload body createSubjectRequest true "Nombre y fecha de nacimiento (YYYY-MM-DD)"
// @Success 201 {object} createSubjectResponse
// @Failure 400 {string} string "invalid json / birth_date inválida o futura"
// @Failure 401 {string} string "unauthorized"
// @Router /subjects [post]
func createSubjectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createSubjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		birth, err := time.Parse(time.DateOnly, strings.TrimSpace(req.BirthDate))
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		sub, recs, err := svc.CreateSubject(r.Context(), CreateSubjectInput{
			OwnerAccountID: account,
			Name:           req.Name,
			BirthDate:      birth,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createSubjectResponse{
			Subject: toSubjectResponse(sub),
			Doses:   toDoseResponses(recs),
		})
	}
}

// listSubjectsHandler godoc
// @Summary Listar sujetos
// @Description Lista los sujetos de la cuenta, ordenados por fecha de alta.
// @Tags subjects
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Success 200 {array} subjectResponse
// @Failure 401 {string} string "unauthorized"
// @Router /subjects [get]
func listSubjectsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListSubjects(r.Context(), account)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]subjectResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSubjectResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getSubjectHandler godoc
// @Summary Obtener sujeto
// @Tags subjects
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Success 200 {object} subjectResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "subject not found"
// @Router /subjects/{subjectID} [get]
func getSubjectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toSubjectResponse(sub))
	}
}

// deleteSubjectHandler godoc
// @Summary Borrar sujeto
// @Description Borra el sujeto junto con sus dosis y reminders. Los reminders pendientes no se disparan.
// @Tags subjects
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "subject not found"
// @Router /subjects/{subjectID} [delete]
func deleteSubjectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeleteSubject(r.Context(), sub.ID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listDosesHandler godoc
// @Summary Calendario del sujeto
// @Description Corre un sweep sobre las dosis del sujeto y devuelve el calendario ordenado por secuencia.
// @Tags doses
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Success 200 {array} doseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "subject not found"
// @Router /subjects/{subjectID}/doses [get]
func listDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}

		if _, err := svc.SweepSubject(r.Context(), sub.ID); err != nil {
			writeError(w, err)
			return
		}

		recs, err := svc.ListDoses(r.Context(), sub.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDoseResponses(recs))
	}
}

// completeDoseHandler godoc
// @Summary Marcar dosis aplicada
// @Description Pasa la dosis a completed (también desde missed). Sin completed_date se usa la fecha actual. Completar una dosis ya completada no la modifica.
// @Tags doses
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Param doseID path string true "ID de la dosis"
// @Param payload body completeDoseRequest false "Fecha de aplicación (YYYY-MM-DD) y nota"
// @Success 200 {object} doseResponse
// @Failure 400 {string} string "invalid json / completed_date inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dose not found"
// @Router /subjects/{subjectID}/doses/{doseID}/complete [post]
func completeDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}

		// body opcional
		var req completeDoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var at *time.Time
		if s := strings.TrimSpace(req.CompletedDate); s != "" {
			t, err := time.Parse(time.DateOnly, s)
			if err != nil {
				http.Error(w, "completed_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			at = &t
		}

		doseID := chi.URLParam(r, "doseID")
		current, err := svc.GetDose(r.Context(), doseID)
		if err != nil || current.SubjectID != sub.ID {
			http.Error(w, "dose not found", http.StatusNotFound)
			return
		}

		updated, err := svc.MarkCompleted(r.Context(), doseID, at, req.Note)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDoseResponse(updated))
	}
}

// complianceHandler godoc
// @Summary Score de adherencia
// @Description Devuelve el score ponderado y el crudo (0..100), los conteos por estado y la próxima dosis pendiente. Evalúa el estado persistido: no corre sweep.
// @Tags compliance
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Success 200 {object} complianceResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "subject not found"
// @Router /subjects/{subjectID}/compliance [get]
func complianceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}

		rep, err := svc.Report(r.Context(), sub.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toComplianceResponse(rep))
	}
}

// scheduleReminderHandler godoc
// @Summary Programar reminder
// @Description Programa un reminder para una dosis del sujeto. Un fire_at pasado se dispara en la próxima pasada del scheduler.
// @Tags reminders
// @Accept json
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Param payload body scheduleReminderRequest true "Dosis, fire_at en RFC3339 y mensaje opcional"
// @Success 201 {object} reminderResponse
// @Failure 400 {string} string "invalid json / fire_at inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dose not found"
// @Router /subjects/{subjectID}/reminders [post]
func scheduleReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}

		var req scheduleReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fireAt, err := time.Parse(time.RFC3339, strings.TrimSpace(req.FireAt))
		if err != nil {
			http.Error(w, "fire_at must be RFC3339", http.StatusBadRequest)
			return
		}

		rem, err := svc.ScheduleReminder(r.Context(), ScheduleReminderInput{
			DoseID:    req.DoseID,
			SubjectID: sub.ID,
			FireAt:    fireAt,
			Message:   req.Message,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toReminderResponse(rem))
	}
}

// listRemindersHandler godoc
// @Summary Listar reminders
// @Tags reminders
// @Produce json
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Success 200 {array} reminderResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "subject not found"
// @Router /subjects/{subjectID}/reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}

		items, err := svc.ListReminders(r.Context(), sub.ID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]reminderResponse, 0, len(items))
		for _, rem := range items {
			out = append(out, toReminderResponse(rem))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// cancelReminderHandler godoc
// @Summary Cancelar reminder
// @Description Borra el reminder. Si todavía no se disparó, ya no se dispara.
// @Tags reminders
// @Param X-Account-ID header string true "Cuenta dueña"
// @Param subjectID path string true "ID del sujeto"
// @Param reminderID path string true "ID del reminder"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reminder not found"
// @Router /subjects/{subjectID}/reminders/{reminderID} [delete]
func cancelReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := ownedSubject(w, r, svc)
		if !ok {
			return
		}

		id := chi.URLParam(r, "reminderID")
		rem, err := svc.GetReminder(r.Context(), id)
		if err != nil || rem.SubjectID != sub.ID {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		if err := svc.CancelReminder(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// sweepHandler godoc
// @Summary Correr sweep
// @Description Corre el sweep sobre todas las dosis y devuelve cuántas pasaron a missed.
// @Tags jobs
// @Produce json
// @Param X-Account-ID header string true "Cuenta"
// @Success 200 {object} sweepResponse
// @Failure 401 {string} string "unauthorized"
// @Router /sweep [post]
func sweepHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetAccount(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		n, err := svc.Sweep(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sweepResponse{Changed: n})
	}
}

// ownedSubject resuelve el sujeto del path. Un sujeto de otra cuenta se
// responde como 404 para no revelar que existe.
func ownedSubject(w http.ResponseWriter, r *http.Request, svc *Service) (subjects.Subject, bool) {
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return subjects.Subject{}, false
	}

	sub, err := svc.GetSubject(r.Context(), chi.URLParam(r, "subjectID"))
	if err != nil || sub.OwnerAccountID != account {
		http.Error(w, "subject not found", http.StatusNotFound)
		return subjects.Subject{}, false
	}
	return sub, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toSubjectResponse(s subjects.Subject) subjectResponse {
	return subjectResponse{
		ID:             s.ID,
		OwnerAccountID: s.OwnerAccountID,
		Name:           s.Name,
		BirthDate:      s.BirthDate.Format(time.DateOnly),
		CreatedAt:      s.CreatedAt,
	}
}

func toDoseResponse(d doses.DoseRecord) doseResponse {
	out := doseResponse{
		ID:        d.ID,
		SubjectID: d.SubjectID,
		Seq:       d.Seq,
		DoseName:  d.DoseName,
		Category:  d.Category,
		DueDate:   d.DueDate.Format(time.DateOnly),
		Status:    d.Status,
		Note:      d.Note,
	}
	if d.CompletedDate != nil {
		s := d.CompletedDate.Format(time.DateOnly)
		out.CompletedDate = &s
	}
	return out
}

func toDoseResponses(recs []doses.DoseRecord) []doseResponse {
	out := make([]doseResponse, 0, len(recs))
	for _, d := range recs {
		out = append(out, toDoseResponse(d))
	}
	return out
}

func toComplianceResponse(rep compliance.Report) complianceResponse {
	out := complianceResponse{
		Weighted:  rep.Score.Weighted,
		Raw:       rep.Score.Raw,
		Total:     rep.Total,
		Completed: rep.Completed,
		Upcoming:  rep.Upcoming,
		Missed:    rep.Missed,
	}
	if rep.NextDue != nil {
		d := toDoseResponse(*rep.NextDue)
		out.NextDue = &d
	}
	return out
}

func toReminderResponse(r reminders.Reminder) reminderResponse {
	return reminderResponse{
		ID:        r.ID,
		DoseID:    r.DoseID,
		SubjectID: r.SubjectID,
		FireAt:    r.FireAt,
		Message:   r.Message,
		Consumed:  r.Consumed,
		CreatedAt: r.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/domain/tracker"
	"vaccine-tracker/internal/router"
)

type doseJSON struct {
	ID            string  `json:"id"`
	Seq           int     `json:"seq"`
	DoseName      string  `json:"dose_name"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	CompletedDate *string `json:"completed_date"`
}

func TestHTTP_EndToEnd_ScheduleComplianceReminders(t *testing.T) {
	var (
		mu   sync.Mutex
		sent []reminders.Notification
	)
	notifier := reminders.NotifierFunc(func(ctx context.Context, n reminders.Notification) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, n)
		return nil
	})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := tracker.NewService(router.NewRepositories(nil),
		tracker.WithClock(func() time.Time { return now }),
		tracker.WithNotifier(notifier),
	)

	ts := httptest.NewServer(router.NewRouter(router.Options{Service: svc}))
	defer ts.Close()

	owner := "acc-1"
	other := "acc-2"

	// 1) Alta de sujeto nacido el 2025-01-01 => 19 dosis
	subjectID, created := createSubject(t, ts.URL, owner, "2025-01-01")
	if len(created) != 19 {
		t.Fatalf("expected 19 doses, got %d", len(created))
	}

	// 2) Otra cuenta no lo ve
	{
		st, _ := doReq(t, ts.URL, "GET", "/subjects/"+subjectID, other, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other account, got %d", st)
		}
	}

	// 3) Sin cuenta => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/subjects", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without account, got %d", st)
		}
	}

	// 4) GET doses corre sweep: las de nacimiento y 6 semanas ya vencieron
	var listed []doseJSON
	{
		st, body := doReq(t, ts.URL, "GET", "/subjects/"+subjectID+"/doses", owner, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list doses, got %d body=%s", st, string(body))
		}
		if err := json.Unmarshal(body, &listed); err != nil {
			t.Fatalf("decode doses: %v", err)
		}
		if len(listed) != 19 {
			t.Fatalf("expected 19 doses, got %d", len(listed))
		}
		if listed[0].Status != "missed" {
			t.Fatalf("expected birth dose missed after sweep, got %s", listed[0].Status)
		}
		if listed[len(listed)-1].Status != "upcoming" {
			t.Fatalf("expected last dose upcoming, got %s", listed[len(listed)-1].Status)
		}
	}

	// 5) Completar una dosis missed
	{
		st, body := doReq(t, ts.URL, "POST", "/subjects/"+subjectID+"/doses/"+listed[0].ID+"/complete", owner, map[string]any{
			"completed_date": "2025-01-03",
			"note":           "late",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
		}
		var d doseJSON
		_ = json.Unmarshal(body, &d)
		if d.Status != "completed" || d.CompletedDate == nil || *d.CompletedDate != "2025-01-03" {
			t.Fatalf("unexpected completed dose %+v", d)
		}
	}

	// 6) Dosis inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/subjects/"+subjectID+"/doses/nope/complete", owner, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown dose, got %d", st)
		}
	}

	// 7) Compliance en rango
	{
		st, body := doReq(t, ts.URL, "GET", "/subjects/"+subjectID+"/compliance", owner, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 compliance, got %d body=%s", st, string(body))
		}
		var c struct {
			Weighted  int `json:"weighted"`
			Raw       int `json:"raw"`
			Total     int `json:"total"`
			Completed int `json:"completed"`
		}
		_ = json.Unmarshal(body, &c)
		if c.Total != 19 || c.Completed != 1 {
			t.Fatalf("unexpected counts %+v", c)
		}
		if c.Weighted < 0 || c.Weighted > 100 || c.Raw != 5 {
			t.Fatalf("unexpected scores %+v", c)
		}
	}

	// 8) Reminder vencido + uno futuro cancelado
	upcoming := listed[len(listed)-1]
	dueID := createReminder(t, ts.URL, owner, subjectID, upcoming.ID, now.Add(-time.Second))
	cancelID := createReminder(t, ts.URL, owner, subjectID, upcoming.ID, now.Add(time.Hour))
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/subjects/"+subjectID+"/reminders/"+cancelID, owner, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 cancel reminder, got %d", st)
		}
	}

	if n := svc.FireDue(context.Background()); n != 1 {
		t.Fatalf("expected 1 fired reminder, got %d", n)
	}
	svc.Wait()

	mu.Lock()
	if len(sent) != 1 || sent[0].ReminderID != dueID {
		mu.Unlock()
		t.Fatalf("expected one notification for %s, got %+v", dueID, sent)
	}
	mu.Unlock()

	{
		st, body := doReq(t, ts.URL, "GET", "/subjects/"+subjectID+"/reminders", owner, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list reminders, got %d", st)
		}
		var rems []struct {
			ID       string `json:"id"`
			Consumed bool   `json:"consumed"`
		}
		_ = json.Unmarshal(body, &rems)
		if len(rems) != 1 || rems[0].ID != dueID || !rems[0].Consumed {
			t.Fatalf("unexpected reminders %+v", rems)
		}
	}

	// 9) Borrado en cascada
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/subjects/"+subjectID, owner, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete subject, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/subjects/"+subjectID+"/doses", owner, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_CreateSubject_Rejects(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []map[string]any{
		{"name": "x", "birth_date": "01/02/2025"},
		{"name": "x", "birth_date": time.Now().UTC().AddDate(0, 0, 2).Format(time.DateOnly)},
	}
	for _, payload := range cases {
		st, body := doReq(t, ts.URL, "POST", "/subjects", "acc-1", payload)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d body=%s", payload, st, string(body))
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %s", st, string(body))
	}
}

func createSubject(t *testing.T, baseURL, accountID, birth string) (string, []doseJSON) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/subjects", accountID, map[string]any{
		"name":       "Luna",
		"birth_date": birth,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create subject, got %d body=%s", st, string(body))
	}

	var resp struct {
		Subject struct {
			ID string `json:"id"`
		} `json:"subject"`
		Doses []doseJSON `json:"doses"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Subject.ID == "" {
		t.Fatalf("create subject: missing id body=%s", string(body))
	}
	return resp.Subject.ID, resp.Doses
}

func createReminder(t *testing.T, baseURL, accountID, subjectID, doseID string, fireAt time.Time) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/subjects/"+subjectID+"/reminders", accountID, map[string]any{
		"dose_id": doseID,
		"fire_at": fireAt.Format(time.RFC3339),
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create reminder, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create reminder: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, accountID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accountID != "" {
		req.Header.Set("X-Account-ID", accountID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() reminders.Notification {
	return reminders.Notification{
		ReminderID: "r-1",
		DoseID:     "d-1",
		SubjectID:  "s-1",
		Message:    "Hexavalent-1 is due on 2025-02-12",
		FireAt:     time.Date(2025, 2, 11, 9, 0, 0, 0, time.UTC),
		FiredAt:    time.Date(2025, 2, 11, 9, 0, 1, 0, time.UTC),
	}
}

func TestNotify_PostsJSON(t *testing.T) {
	var got reminders.Notification
	var event string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event = r.Header.Get(EventHeader)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	n, err := New(ts.URL, nil)
	require.NoError(t, err)
	require.NoError(t, n.Notify(context.Background(), sample()))

	assert.Equal(t, "reminder.fired", event)
	assert.Equal(t, "r-1", got.ReminderID)
	assert.True(t, got.FireAt.Equal(sample().FireAt))
}

func TestNotify_RetriesOnceOn5xx(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	n, err := New(ts.URL, nil)
	require.NoError(t, err)
	n.RetryDelay = time.Millisecond

	require.NoError(t, n.Notify(context.Background(), sample()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestNotify_NoRetryOn4xx(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer ts.Close()

	n, err := New(ts.URL, httpclient.New(time.Second))
	require.NoError(t, err)

	err = n.Notify(context.Background(), sample())
	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "bad payload", httpErr.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New("not a url", nil)
	assert.Error(t, err)

	_, err = New("ftp://example.com/hook", nil)
	assert.Error(t, err)
}

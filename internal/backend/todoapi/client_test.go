package todoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"taskmgr/internal/config"
	"taskmgr/internal/service"
)

func newTestClient(t *testing.T, h http.Handler, src oauth2.TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{APIURL: srv.URL, Timeout: 2 * time.Second}
	c, err := New(cfg, src, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(&config.Config{APIURL: "ftp://example.com"}, nil, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme must be http or https")
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(HeaderRequestID))

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ann@example.com", body.Email)
		assert.Equal(t, "secret1", body.Password)

		writeJSON(t, w, http.StatusOK, map[string]string{"token": "tok-123"})
	}), nil)

	tok, err := c.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestLogin_ServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
	}), nil)

	_, err := c.Login(context.Background(), "ann@example.com", "wrong")
	require.EqualError(t, err, "Invalid credentials")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestLogin_MissingToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{})
	}), nil)

	_, err := c.Login(context.Background(), "ann@example.com", "secret1")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRegister_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/register", r.URL.Path)

		var body registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ann", body.Username)

		writeJSON(t, w, http.StatusCreated, map[string]string{"token": "tok-new"})
	}), nil)

	tok, err := c.Register(context.Background(), "ann", "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", tok)
}

func TestListTasks_AttachesToken(t *testing.T) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok-123"})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todo", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get(HeaderAuthToken))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"tasks": []map[string]string{
				{"_id": "a1", "title": "Buy milk", "description": "2%", "dueDate": "2024-05-01T00:00:00.000Z", "status": "pending"},
				{"_id": "b2", "title": "Call mom", "description": "Sunday", "status": "completed"},
			},
		})
	}), src)

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "a1", tasks[0].ID)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), tasks[0].DueDate)
	assert.Equal(t, service.StatusPending, tasks[0].Status)

	assert.Equal(t, "b2", tasks[1].ID)
	assert.True(t, tasks[1].DueDate.IsZero())
	assert.True(t, tasks[1].Completed())
}

func TestListTasks_NoTokenSource(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(HeaderAuthToken))
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Access denied"})
	}), nil)

	_, err := c.ListTasks(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestAPIError_Classification(t *testing.T) {
	tests := []struct {
		status                           int
		rejected, unauthorized, notFound bool
	}{
		{http.StatusBadRequest, true, false, false},
		{http.StatusUnauthorized, true, true, false},
		{http.StatusForbidden, true, true, false},
		{http.StatusNotFound, true, false, true},
		{http.StatusInternalServerError, false, false, false},
		{http.StatusBadGateway, false, false, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := error(&APIError{StatusCode: tt.status})
			assert.Equal(t, tt.rejected, IsRejected(err))
			assert.Equal(t, tt.unauthorized, IsUnauthorized(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestCreateTask(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/todo", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Buy milk", body["title"])
		assert.Equal(t, "2%", body["description"])
		assert.Equal(t, "2024-05-01", body["dueDate"])
		assert.NotContains(t, body, "status")
		assert.NotContains(t, body, "_id")

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"task": map[string]string{"_id": "new1", "title": "Buy milk", "description": "2%", "dueDate": "2024-05-01", "status": "pending"},
		})
	}), nil)

	task, err := c.CreateTask(context.Background(), service.TaskInput{
		Title:       "Buy milk",
		Description: "2%",
		DueDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "new1", task.ID)
	assert.Equal(t, service.StatusPending, task.Status)
}

func TestUpdateTask(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/todo/a1", r.URL.Path)

		var body taskDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "completed", body.Status)

		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Task updated"})
	}), nil)

	err := c.UpdateTask(context.Background(), "a1", service.TaskInput{Title: "t", Description: "d", Status: "completed"})
	require.NoError(t, err)
}

func TestDeleteTask_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todo/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}), nil)

	err := c.DeleteTask(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "404 Not Found", err.Error())
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c, err := New(&config.Config{APIURL: srv.URL, Timeout: 50 * time.Millisecond}, nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDecodeError_PlainText(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}), nil)

	_, err := c.ListTasks(context.Background())
	require.EqualError(t, err, "upstream unavailable")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-05-01T00:00:00.000Z", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-05-01T23:30:00+02:00", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"next week", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
	"github.com/dmitrijs2005/bloodbank/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records what the client sent and answers with canned responses.
type fakeAPI struct {
	mu         sync.Mutex
	methods    []string
	paths      []string
	requestIDs []string
	bodies     [][]byte

	status int
	body   string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.methods = append(f.methods, r.Method)
	f.paths = append(f.paths, r.URL.Path)
	f.requestIDs = append(f.requestIDs, r.Header.Get(common.RequestIDHeaderName))
	f.bodies = append(f.bodies, b)
	f.mu.Unlock()

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, f.body)
}

func newTestClient(t *testing.T, api *fakeAPI) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(api)
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL+"/api/", 0)
}

func TestHTTPClient_Health(t *testing.T) {
	api := &fakeAPI{body: `{"status":"ok"}`}
	c := newTestClient(t, api)

	require.NoError(t, c.Health(context.Background()))
	assert.Equal(t, []string{"/api/health"}, api.paths)
	assert.Equal(t, []string{http.MethodGet}, api.methods)
}

func TestHTTPClient_HealthNon2xx(t *testing.T) {
	api := &fakeAPI{status: http.StatusInternalServerError, body: `{"error":"db"}`}
	c := newTestClient(t, api)

	err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	require.ErrorContains(t, err, "500")
}

func TestHTTPClient_ListDonors(t *testing.T) {
	api := &fakeAPI{body: `[
		{"id":"665f1","fullName":"Rahim","bloodGroup":"A+","phone":"017","location":"Dhaka","status":"active"},
		{"id":"665f2","fullName":"Karim","bloodGroup":"O-","phone":"018","location":"Sylhet","status":"inactive","lastDonationDate":"2026-01-10"}
	]`}
	c := newTestClient(t, api)

	got, err := c.ListDonors(context.Background())
	require.NoError(t, err)

	want := []models.Donor{
		{ID: "665f1", FullName: "Rahim", BloodGroup: models.BloodGroupAPos, Phone: "017", Location: "Dhaka", Status: models.DonorStatusActive},
		{ID: "665f2", FullName: "Karim", BloodGroup: models.BloodGroupONeg, Phone: "018", Location: "Sylhet", Status: models.DonorStatusInactive, LastDonationDate: "2026-01-10"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("donors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"/api/donors"}, api.paths)
}

func TestHTTPClient_CreateDonor_SendsInputOnly(t *testing.T) {
	api := &fakeAPI{status: http.StatusCreated, body: `{"id":"srv-1","fullName":"Rahim","bloodGroup":"B+","phone":"017","location":"Dhaka","status":"inactive"}`}
	c := newTestClient(t, api)

	in := models.DonorInput{FullName: "Rahim", BloodGroup: models.BloodGroupBPos, Phone: "017", Location: "Dhaka"}
	got, err := c.CreateDonor(context.Background(), in)
	require.NoError(t, err)

	// server values are returned untouched
	assert.Equal(t, "srv-1", got.ID)
	assert.Equal(t, models.DonorStatusInactive, got.Status)

	require.Len(t, api.bodies, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(api.bodies[0], &sent))
	assert.NotContains(t, sent, "id")
	assert.NotContains(t, sent, "status")
	assert.Equal(t, "Rahim", sent["fullName"])
	assert.Equal(t, http.MethodPost, api.methods[0])
}

func TestHTTPClient_ListRequests(t *testing.T) {
	api := &fakeAPI{body: `[{"id":"r1","patientName":"Ayesha","bloodGroup":"AB+","units":2,"hospital":"DMC","urgency":"emergency","status":"approved","requestedDate":"2026-10-01T10:00:00Z"}]`}
	c := newTestClient(t, api)

	got, err := c.ListRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.RequestStatusApproved, got[0].Status)
	assert.Equal(t, "2026-10-01T10:00:00Z", got[0].RequestedDate)
	assert.Equal(t, []string{"/api/requests"}, api.paths)
}

func TestHTTPClient_CreateRequest_SendsInputOnly(t *testing.T) {
	api := &fakeAPI{status: http.StatusCreated, body: `{"id":"r9","patientName":"Ayesha","bloodGroup":"AB+","units":2,"hospital":"DMC","urgency":"urgent","status":"pending","requestedDate":"2026-10-01T10:00:00Z"}`}
	c := newTestClient(t, api)

	in := models.RequestInput{PatientName: "Ayesha", BloodGroup: models.BloodGroupABPos, Units: 2, Hospital: "DMC", Urgency: models.UrgencyUrgent}
	got, err := c.CreateRequest(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "r9", got.ID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(api.bodies[0], &sent))
	assert.NotContains(t, sent, "id")
	assert.NotContains(t, sent, "status")
	assert.NotContains(t, sent, "requestedDate")
	assert.EqualValues(t, 2, sent["units"])
}

func TestHTTPClient_FreshRequestIDPerCall(t *testing.T) {
	api := &fakeAPI{body: `[]`}
	c := newTestClient(t, api)

	_, err := c.ListDonors(context.Background())
	require.NoError(t, err)
	_, err = c.ListDonors(context.Background())
	require.NoError(t, err)

	require.Len(t, api.requestIDs, 2)
	assert.NotEmpty(t, api.requestIDs[0])
	assert.NotEqual(t, api.requestIDs[0], api.requestIDs[1])
}

func TestHTTPClient_ServerDown_IsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewHTTPClient(url, 0)
	_, err := c.ListDonors(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_BadBody_IsAPIError(t *testing.T) {
	api := &fakeAPI{body: `{"not":"an array"}`}
	c := newTestClient(t, api)

	_, err := c.ListRequests(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))
	assert.False(t, errors.Is(err, ErrUnexpectedStatus))
	assert.ErrorContains(t, err, "api error")
}

func TestHTTPClient_RequestTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(ts.Close)
	t.Cleanup(func() { close(release) })

	c := NewHTTPClient(ts.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := c.ListDonors(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}

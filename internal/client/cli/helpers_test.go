package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bloodbank/internal/client/config"
	"github.com/dmitrijs2005/bloodbank/internal/client/models"
	"github.com/dmitrijs2005/bloodbank/internal/client/store"
	"github.com/dmitrijs2005/bloodbank/internal/logging"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// readerFromLines feeds each line followed by a newline.
func readerFromLines(lines ...string) *bufio.Reader {
	lines = append(lines, "")
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func testCredentials(t *testing.T, user, password string) credentials {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return credentials{user: user, hash: h}
}

// fakeData is a scripted DataService.
type fakeData struct {
	mu sync.Mutex

	online bool
	probes int

	donors     models.Result[[]models.Donor]
	donorsErr  error
	requests   models.Result[[]models.BloodRequest]
	reqErr     error
	stats      models.Stats
	statsErr   error
	saveSource models.Source
	saveErr    error

	savedDonors   []models.DonorInput
	savedRequests []models.RequestInput
}

func (f *fakeData) CheckConnection(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probes++
	return f.online
}

func (f *fakeData) Donors(ctx context.Context) (models.Result[[]models.Donor], error) {
	return f.donors, f.donorsErr
}

func (f *fakeData) SaveDonor(ctx context.Context, in models.DonorInput) (models.Result[models.Donor], error) {
	f.savedDonors = append(f.savedDonors, in)
	if f.saveErr != nil {
		return models.Result[models.Donor]{}, f.saveErr
	}
	d := models.NewDonor(in, "D-12345", models.DonorStatusActive)
	return models.Result[models.Donor]{Source: f.saveSource, Data: d}, nil
}

func (f *fakeData) Requests(ctx context.Context) (models.Result[[]models.BloodRequest], error) {
	return f.requests, f.reqErr
}

func (f *fakeData) SaveRequest(ctx context.Context, in models.RequestInput) (models.Result[models.BloodRequest], error) {
	f.savedRequests = append(f.savedRequests, in)
	if f.saveErr != nil {
		return models.Result[models.BloodRequest]{}, f.saveErr
	}
	r := models.NewBloodRequest(in, "REQ-54321", models.RequestStatusPending, "2026-10-17T08:00:00.000Z")
	return models.Result[models.BloodRequest]{Source: f.saveSource, Data: r}, nil
}

func (f *fakeData) Stats(ctx context.Context) (models.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeData) probeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probes
}

func newTestApp(t *testing.T, data *fakeData, st store.Store, input *bufio.Reader) (*App, *bytes.Buffer) {
	t.Helper()
	if st == nil {
		st = store.NewMemoryStore()
	}
	if input == nil {
		input = readerFromLines()
	}
	out := &bytes.Buffer{}
	return &App{
		config:      &config.Config{APIBaseURL: "http://api.test/api"},
		data:        data,
		store:       st,
		log:         logging.Discard(),
		credentials: testCredentials(t, "admin", "admin123"),
		reader:      input,
		out:         out,
		closeFn:     func() error { return nil },
	}, out
}

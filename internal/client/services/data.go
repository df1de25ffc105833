package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bloodbank/internal/client/client"
	"github.com/dmitrijs2005/bloodbank/internal/client/models"
	"github.com/dmitrijs2005/bloodbank/internal/client/store"
	"github.com/dmitrijs2005/bloodbank/internal/logging"
)

// DefaultHealthTimeout bounds the connectivity probe when no timeout is
// configured.
const DefaultHealthTimeout = 3 * time.Second

const (
	idSuffixMin = 10000
	idSuffixMax = 99999
)

type DataService interface {
	CheckConnection(ctx context.Context) bool
	Donors(ctx context.Context) (models.Result[[]models.Donor], error)
	SaveDonor(ctx context.Context, in models.DonorInput) (models.Result[models.Donor], error)
	Requests(ctx context.Context) (models.Result[[]models.BloodRequest], error)
	SaveRequest(ctx context.Context, in models.RequestInput) (models.Result[models.BloodRequest], error)
	Stats(ctx context.Context) (models.Stats, error)
}

type dataService struct {
	client        client.Client
	store         store.Store
	log           logging.Logger
	healthTimeout time.Duration

	now      func() time.Time
	idSuffix func() int
}

// NewDataService wires the API client and the local store together.
// A non-positive healthTimeout falls back to DefaultHealthTimeout.
func NewDataService(c client.Client, s store.Store, log logging.Logger, healthTimeout time.Duration) DataService {
	if healthTimeout <= 0 {
		healthTimeout = DefaultHealthTimeout
	}
	return &dataService{
		client:        c,
		store:         s,
		log:           log.With("module", "data"),
		healthTimeout: healthTimeout,
		now:           time.Now,
		idSuffix:      randomIDSuffix,
	}
}

func randomIDSuffix() int {
	return idSuffixMin + rand.IntN(idSuffixMax-idSuffixMin+1)
}

// CheckConnection reports whether the health endpoint answered with 2xx
// before the probe timeout.
func (s *dataService) CheckConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.healthTimeout)
	defer cancel()

	if err := s.client.Health(ctx); err != nil {
		s.log.Debug(ctx, "health check failed", "err", err)
		return false
	}
	return true
}

func (s *dataService) Donors(ctx context.Context) (models.Result[[]models.Donor], error) {
	donors, err := s.client.ListDonors(ctx)
	if err == nil {
		return models.Remote(donors), nil
	}
	s.log.Warn(ctx, "remote list failed, using local store", "kind", models.KindDonors, "err", err)

	local, err := readList[models.Donor](ctx, s.store, models.KindDonors)
	if err != nil {
		return models.Result[[]models.Donor]{}, err
	}
	return models.Local(local), nil
}

func (s *dataService) Requests(ctx context.Context) (models.Result[[]models.BloodRequest], error) {
	requests, err := s.client.ListRequests(ctx)
	if err == nil {
		return models.Remote(requests), nil
	}
	s.log.Warn(ctx, "remote list failed, using local store", "kind", models.KindRequests, "err", err)

	local, err := readList[models.BloodRequest](ctx, s.store, models.KindRequests)
	if err != nil {
		return models.Result[[]models.BloodRequest]{}, err
	}
	return models.Local(local), nil
}

func (s *dataService) SaveDonor(ctx context.Context, in models.DonorInput) (models.Result[models.Donor], error) {
	donor, err := s.client.CreateDonor(ctx, in)
	if err == nil {
		return models.Remote(donor), nil
	}
	s.log.Warn(ctx, "remote create failed, saving locally", "kind", models.KindDonors, "err", err)

	donor = models.NewDonor(in, s.newID(models.KindDonors), models.DonorStatusActive)
	if err := prependRecord(ctx, s.store, models.KindDonors, donor); err != nil {
		return models.Result[models.Donor]{}, err
	}
	s.log.Info(ctx, "donor saved locally", "id", donor.ID)
	return models.Local(donor), nil
}

func (s *dataService) SaveRequest(ctx context.Context, in models.RequestInput) (models.Result[models.BloodRequest], error) {
	request, err := s.client.CreateRequest(ctx, in)
	if err == nil {
		return models.Remote(request), nil
	}
	s.log.Warn(ctx, "remote create failed, saving locally", "kind", models.KindRequests, "err", err)

	requestedDate := s.now().UTC().Format(models.RequestedDateLayout)
	request = models.NewBloodRequest(in, s.newID(models.KindRequests), models.RequestStatusPending, requestedDate)
	if err := prependRecord(ctx, s.store, models.KindRequests, request); err != nil {
		return models.Result[models.BloodRequest]{}, err
	}
	s.log.Info(ctx, "request saved locally", "id", request.ID)
	return models.Local(request), nil
}

// Stats resolves both lists independently, each with its own fallback.
func (s *dataService) Stats(ctx context.Context) (models.Stats, error) {
	donors, err := s.Donors(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	requests, err := s.Requests(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	stats := models.NewStats(donors.Data, requests.Data)
	stats.DonorsSource = donors.Source
	stats.RequestsSource = requests.Source
	return stats, nil
}

// newID does not check the suffix against existing ids.
func (s *dataService) newID(kind models.Kind) string {
	return kind.IDPrefix() + strconv.Itoa(s.idSuffix())
}

// readList returns the slot for kind decoded as a list; an absent slot is
// an empty list.
func readList[T any](ctx context.Context, st store.Store, kind models.Kind) ([]T, error) {
	data, err := st.Read(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	return decodeList[T](kind, data)
}

func decodeList[T any](kind models.Kind, data []byte) ([]T, error) {
	list := []T{}
	if len(data) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrLocalStore, kind.SlotName(), err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// prependRecord puts rec at the head of the slot for kind in one atomic
// read-modify-write.
func prependRecord[T any](ctx context.Context, st store.Store, kind models.Kind, rec T) error {
	err := st.Update(ctx, kind, func(current []byte) ([]byte, error) {
		list, err := decodeList[T](kind, current)
		if err != nil {
			return nil, err
		}
		list = append([]T{rec}, list...)
		return json.Marshal(list)
	})
	if err != nil {
		if errors.Is(err, ErrLocalStore) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	return nil
}

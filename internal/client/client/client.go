package client

import (
	"context"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
)

// Client is the blood bank REST API as consumed by the data service.
type Client interface {
	Health(ctx context.Context) error
	ListDonors(ctx context.Context) ([]models.Donor, error)
	CreateDonor(ctx context.Context, in models.DonorInput) (models.Donor, error)
	ListRequests(ctx context.Context) ([]models.BloodRequest, error)
	CreateRequest(ctx context.Context, in models.RequestInput) (models.BloodRequest, error)
}

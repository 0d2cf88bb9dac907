package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/internal/progress"
	"github.com/younsl/jaws/pkg/errs"
	"github.com/younsl/jaws/pkg/utils"
)

// Handler owns the clients and the metadata cache of one command
type Handler struct {
	clients  *Clients
	region   string
	cache    *MetadataCache
	notifier progress.Notifier
}

// NewHandler creates a Handler with an empty MetadataCache
func NewHandler(clients *Clients, opts CacheOptions, notifier progress.Notifier) *Handler {
	if notifier == nil {
		notifier = progress.Discard{}
	}
	return &Handler{
		clients:  clients,
		region:   opts.Region,
		cache:    NewMetadataCache(clients, opts, notifier),
		notifier: notifier,
	}
}

// Region returns the operating region
func (h *Handler) Region() string {
	return h.region
}

// Cache returns the command's MetadataCache
func (h *Handler) Cache() *MetadataCache {
	return h.cache
}

// Inventory returns an Inventory backed by the command's MetadataCache
func (h *Handler) Inventory() *Inventory {
	return NewInventory(h.cache)
}

// CallerIdentity verifies the credentials and returns who they belong to
func (h *Handler) CallerIdentity(ctx context.Context) (models.CallerIdentity, error) {
	h.notifier.Update("checking caller ID")
	result, err := h.clients.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return models.CallerIdentity{}, &errs.AuthenticationError{Err: err}
	}

	identity := models.CallerIdentity{
		ARN:     utils.SafeDeref(result.Arn),
		Account: utils.SafeDeref(result.Account),
		UserID:  utils.SafeDeref(result.UserId),
	}
	logging.Debug("caller identity", zap.String("arn", identity.ARN))
	return identity, nil
}

// ActiveReservations returns the active Reserved Instances of the region
func (h *Handler) ActiveReservations(ctx context.Context) ([]models.Reservation, error) {
	h.notifier.Update("getting reserved instances")
	return describeActiveReservations(ctx, h.clients.EC2)
}

// Instances returns the instances in any of states, or all instances when
// no state is given
func (h *Handler) Instances(ctx context.Context, states ...string) ([]models.Instance, error) {
	h.notifier.Update("getting instances")
	return describeInstances(ctx, h.clients.EC2, states)
}

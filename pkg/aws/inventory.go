package aws

import (
	"context"
	"sort"

	"github.com/younsl/jaws/internal/models"
)

// Inventory turns instance snapshots into display rows
type Inventory struct {
	cache *MetadataCache
}

// NewInventory creates an Inventory over cache
func NewInventory(cache *MetadataCache) *Inventory {
	return &Inventory{cache: cache}
}

// Describe returns one detail row per instance sorted by name. In wide mode
// each row is enriched with SSM eligibility and the instance type spec.
func (inv *Inventory) Describe(ctx context.Context, instances []models.Instance, wide bool) ([]models.InstanceDetail, error) {
	details := make([]models.InstanceDetail, 0, len(instances))
	for _, instance := range instances {
		detail := models.InstanceDetail{Instance: instance}

		if wide {
			capable, err := inv.cache.ProfileSSMCapable(ctx, instance)
			if err != nil {
				return nil, err
			}
			detail.SSM = &capable

			spec, found, err := inv.cache.InstanceTypeSpec(ctx, instance.InstanceType)
			if err != nil {
				return nil, err
			}
			if found {
				detail.Spec = &spec
			}
		}

		details = append(details, detail)
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Name < details[j].Name
	})
	return details, nil
}

// Select keeps the instances whose ID is in ids, preserving order. An empty
// ids selects nothing.
func Select(instances []models.Instance, ids []string) []models.Instance {
	allow := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allow[id] = struct{}{}
	}

	selected := make([]models.Instance, 0, len(ids))
	for _, instance := range instances {
		if _, ok := allow[instance.InstanceID]; ok {
			selected = append(selected, instance)
		}
	}
	return selected
}

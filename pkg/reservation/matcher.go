// Package reservation reconciles running instances against Reserved
// Instance capacity and prices what is left.
package reservation

import (
	"sort"

	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
)

// MatchOptions tunes the scan order of Match
type MatchOptions struct {
	// PreferSoonestExpiry scans reservations by ascending End, keeping the
	// provider order among equal End times
	PreferSoonestExpiry bool
}

// Match allocates one unit of reservation capacity to each instance, first
// fit. Instances are taken in listing order and each takes the first
// reservation of its type with capacity left; allocations are never revised.
// The caller's reservations are not modified: Residual holds copies with the
// remaining counts in the caller's order, dropping the fully consumed ones.
func Match(instances []models.Instance, reservations []models.Reservation, opts MatchOptions) models.CoverageResult {
	pool := make([]models.Reservation, len(reservations))
	copy(pool, reservations)

	// scan order over pool; pool itself keeps the caller's order
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	if opts.PreferSoonestExpiry {
		sort.SliceStable(order, func(i, j int) bool {
			return pool[order[i]].End.Before(pool[order[j]].End)
		})
	}

	result := models.CoverageResult{
		Covered:   []string{},
		Uncovered: []string{},
	}
	for _, instance := range instances {
		if consume(pool, order, instance.InstanceType) {
			result.Covered = append(result.Covered, instance.InstanceID)
		} else {
			result.Uncovered = append(result.Uncovered, instance.InstanceID)
		}
	}

	result.Residual = []models.Reservation{}
	for _, r := range pool {
		if r.Count > 0 {
			result.Residual = append(result.Residual, r)
		}
	}

	logging.Debug("reservations matched",
		zap.Int("covered", len(result.Covered)),
		zap.Int("uncovered", len(result.Uncovered)),
		zap.Int("residual", len(result.Residual)))
	return result
}

// consume takes one unit from the first reservation, in scan order, of
// instanceType with capacity left
func consume(pool []models.Reservation, order []int, instanceType string) bool {
	for _, i := range order {
		if pool[i].InstanceType == instanceType && pool[i].Count > 0 {
			pool[i].Count--
			return true
		}
	}
	return false
}

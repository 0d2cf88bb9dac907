package reservation

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/pkg/errs"
	"github.com/younsl/jaws/pkg/utils"
)

// RateSource returns the hourly on-demand price of an instance type
type RateSource interface {
	OnDemandRate(ctx context.Context, instanceType string) (decimal.Decimal, error)
}

var hoursPerYear = decimal.NewFromInt(utils.HoursPerYear)

// groupKey identifies a reservation element
type groupKey struct {
	instanceType     string
	availabilityZone string
}

// group is the reservations of one element in listing order
type group struct {
	key     groupKey
	members []models.Reservation
}

// groupReservations groups reservations by instance type and availability
// zone, ordered by first appearance
func groupReservations(reservations []models.Reservation) []group {
	var groups []group
	index := make(map[groupKey]int)
	for _, r := range reservations {
		key := groupKey{instanceType: r.InstanceType, availabilityZone: r.AvailabilityZone}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, group{key: key})
		}
		groups[i].members = append(groups[i].members, r)
	}
	return groups
}

// Calculate groups reservations by instance type and availability zone,
// prices each group against the on-demand rate of its type and totals the
// fleet. Rates are looked up one group at a time; the first failure aborts
// the whole calculation.
func Calculate(ctx context.Context, reservations []models.Reservation, rates RateSource, now time.Time) (models.CostReport, error) {
	groups := groupReservations(reservations)
	report := models.CostReport{
		Elements:            make([]models.ReservationElement, 0, len(groups)),
		TotalReservedYearly: decimal.Zero,
		TotalOnDemandYearly: decimal.Zero,
	}

	for _, g := range groups {
		element, err := price(ctx, g, rates, now)
		if err != nil {
			return models.CostReport{}, err
		}

		report.Elements = append(report.Elements, element)
		report.TotalCount += int64(element.Quantity)
		report.TotalReservedYearly = report.TotalReservedYearly.Add(element.ReservedYearly)
		report.TotalOnDemandYearly = report.TotalOnDemandYearly.Add(element.OnDemandYearly)
	}
	report.TotalSaving = report.TotalOnDemandYearly.Sub(report.TotalReservedYearly)

	logging.Debug("reservations priced",
		zap.Int("reservations", len(reservations)),
		zap.Int("elements", len(report.Elements)),
		zap.String("reservedYearly", report.TotalReservedYearly.String()),
		zap.String("saving", report.TotalSaving.String()))
	return report, nil
}

// price builds the element of one group. Expiry, days remaining and term
// come from the soonest-expiring member; the hourly and fixed prices are
// per unit, averaged over the members by count.
func price(ctx context.Context, g group, rates RateSource, now time.Time) (models.ReservationElement, error) {
	element := models.ReservationElement{
		InstanceType:     g.key.instanceType,
		AvailabilityZone: g.key.availabilityZone,
	}

	soonest := g.members[0]
	hourlySum := decimal.Zero // per hour for all units
	fixedSum := decimal.Zero
	var offerings []string

	for _, r := range g.members {
		hourly, err := RecurringHourly(r)
		if err != nil {
			return models.ReservationElement{}, err
		}
		count := decimal.NewFromInt32(r.Count)
		hourlySum = hourlySum.Add(hourly.Mul(count))
		fixedSum = fixedSum.Add(r.FixedPrice.Mul(count))
		element.Quantity += r.Count
		element.ReservationIDs = append(element.ReservationIDs, r.ReservationID)

		if r.End.Before(soonest.End) {
			soonest = r
		}
		if !slices.Contains(offerings, r.OfferingType) {
			offerings = append(offerings, r.OfferingType)
		}
	}

	onDemand, err := rates.OnDemandRate(ctx, element.InstanceType)
	if err != nil {
		return models.ReservationElement{}, err
	}

	units := decimal.NewFromInt32(element.Quantity)
	if element.Quantity > 0 {
		element.RecurringHourly = hourlySum.Div(units)
		element.FixedPrice = fixedSum.Div(units)
	} else {
		element.RecurringHourly, _ = RecurringHourly(g.members[0])
		element.FixedPrice = g.members[0].FixedPrice
	}

	element.Expires = soonest.End
	element.DaysRemaining = utils.DaysUntil(now, soonest.End)
	element.TermYears = utils.TermYears(soonest.DurationSeconds)
	element.OfferingType = strings.Join(offerings, ", ")
	element.OnDemandHourly = onDemand
	element.ReservedYearly = hourlySum.Mul(hoursPerYear)
	element.OnDemandYearly = onDemand.Mul(hoursPerYear).Mul(units)
	element.SavingYearly = element.OnDemandYearly.Sub(element.ReservedYearly)
	return element, nil
}

// RecurringHourly sums the recurring charges of a reservation. Only hourly
// charges are priced; any other frequency is a DataAssumptionError.
func RecurringHourly(r models.Reservation) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, charge := range r.RecurringCharges {
		if charge.Frequency != models.ChargeFrequencyHourly {
			return decimal.Zero, errs.Assumption("recurring charges are hourly",
				"%s charge on %s", charge.Frequency, r.ReservationID)
		}
		total = total.Add(charge.Amount)
	}
	return total, nil
}

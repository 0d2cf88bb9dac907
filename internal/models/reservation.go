package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeFrequencyHourly is the only recurring charge frequency the cost model prices
const ChargeFrequencyHourly = "Hourly"

// RecurringCharge is a periodic charge attached to a reservation
type RecurringCharge struct {
	Frequency string
	Amount    decimal.Decimal
}

// Reservation represents an active EC2 Reserved Instance purchase.
// Count is the remaining capacity and is only decremented by the matcher.
type Reservation struct {
	ReservationID    string
	InstanceType     string
	Count            int32
	AvailabilityZone string // empty for regional reservations
	End              time.Time
	DurationSeconds  int64
	OfferingType     string // payment option, e.g. "No Upfront"
	FixedPrice       decimal.Decimal
	RecurringCharges []RecurringCharge
}

// IsRegional reports whether the reservation is not pinned to an AZ
func (r Reservation) IsRegional() bool {
	return r.AvailabilityZone == ""
}

// CoverageResult is the outcome of matching running instances to reservations
type CoverageResult struct {
	Covered   []string      // instance IDs consuming reservation capacity
	Uncovered []string      // instance IDs running at on-demand rates
	Residual  []Reservation // reservations with capacity left over
}

// ReservationElement is one priced row of the reservation report: every
// reservation of an instance type in one availability zone (or regional)
type ReservationElement struct {
	InstanceType     string
	Quantity         int32
	AvailabilityZone string
	ReservationIDs   []string
	Expires          time.Time
	DaysRemaining    int
	TermYears        int64
	OfferingType     string
	FixedPrice       decimal.Decimal
	RecurringHourly  decimal.Decimal
	OnDemandHourly   decimal.Decimal
	ReservedYearly   decimal.Decimal
	OnDemandYearly   decimal.Decimal
	SavingYearly     decimal.Decimal
}

// CostReport is the priced reservation table plus fleet aggregates
type CostReport struct {
	Elements            []ReservationElement
	TotalCount          int64
	TotalReservedYearly decimal.Decimal
	TotalOnDemandYearly decimal.Decimal
	TotalSaving         decimal.Decimal
}

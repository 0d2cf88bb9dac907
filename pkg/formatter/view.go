package formatter

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/younsl/jaws/internal/models"
)

// Currency amounts are shown with two decimals, rounding half away from zero
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// money renders an amount with a dollar sign and thousands separators
func money(d decimal.Decimal) string {
	rounded := d.Round(2)
	_, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.BigComma(rounded.Abs().BigInt()) + "." + frac
}

func availabilityZone(az string) string {
	if az == "" {
		return "regional"
	}
	return az
}

type reservationView struct {
	InstanceType     string   `json:"instanceType" yaml:"instanceType"`
	Quantity         int32    `json:"quantity" yaml:"quantity"`
	AvailabilityZone string   `json:"availabilityZone" yaml:"availabilityZone"`
	ReservationIDs   []string `json:"reservationIds" yaml:"reservationIds"`
	Expires          string   `json:"expires" yaml:"expires"`
	DaysRemaining    int      `json:"daysRemaining" yaml:"daysRemaining"`
	TermYears        int64    `json:"termYears" yaml:"termYears"`
	OfferingType     string   `json:"offeringType" yaml:"offeringType"`
	FixedPrice       string   `json:"fixedPrice" yaml:"fixedPrice"`
	RecurringHourly  string   `json:"recurringHourly" yaml:"recurringHourly"`
	OnDemandHourly   string   `json:"onDemandHourly" yaml:"onDemandHourly"`
	ReservedYearly   string   `json:"reservedYearly" yaml:"reservedYearly"`
	OnDemandYearly   string   `json:"onDemandYearly" yaml:"onDemandYearly"`
	SavingYearly     string   `json:"savingYearly" yaml:"savingYearly"`
}

type totalsView struct {
	Count          int64  `json:"count" yaml:"count"`
	ReservedYearly string `json:"reservedYearly" yaml:"reservedYearly"`
	OnDemandYearly string `json:"onDemandYearly" yaml:"onDemandYearly"`
	Saving         string `json:"saving" yaml:"saving"`
}

type instanceView struct {
	InstanceID       string `json:"instanceId" yaml:"instanceId"`
	Name             string `json:"name" yaml:"name"`
	State            string `json:"state" yaml:"state"`
	PrivateIP        string `json:"privateIp,omitempty" yaml:"privateIp,omitempty"`
	PublicIP         string `json:"publicIp,omitempty" yaml:"publicIp,omitempty"`
	Spot             bool   `json:"spot" yaml:"spot"`
	InstanceType     string `json:"instanceType,omitempty" yaml:"instanceType,omitempty"`
	AvailabilityZone string `json:"availabilityZone,omitempty" yaml:"availabilityZone,omitempty"`
	Spec             string `json:"spec,omitempty" yaml:"spec,omitempty"`
	SSM              *bool  `json:"ssm,omitempty" yaml:"ssm,omitempty"`
}

type coverageView struct {
	Covered   []instanceView `json:"covered" yaml:"covered"`
	Uncovered []instanceView `json:"uncovered" yaml:"uncovered"`
}

type reservationDocument struct {
	Title        string            `json:"title" yaml:"title"`
	Region       string            `json:"region" yaml:"region"`
	Generated    string            `json:"generated" yaml:"generated"`
	Reservations []reservationView `json:"reservations" yaml:"reservations"`
	Totals       totalsView        `json:"totals" yaml:"totals"`
	Coverage     *coverageView     `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

type instanceDocument struct {
	Region    string         `json:"region" yaml:"region"`
	Generated string         `json:"generated" yaml:"generated"`
	Instances []instanceView `json:"instances" yaml:"instances"`
}

type identityView struct {
	ARN     string `json:"arn" yaml:"arn"`
	Account string `json:"account" yaml:"account"`
	UserID  string `json:"userId" yaml:"userId"`
}

func toReservationView(e models.ReservationElement) reservationView {
	return reservationView{
		InstanceType:     e.InstanceType,
		Quantity:         e.Quantity,
		AvailabilityZone: availabilityZone(e.AvailabilityZone),
		ReservationIDs:   append([]string{}, e.ReservationIDs...),
		Expires:          e.Expires.UTC().Format(time.RFC3339),
		DaysRemaining:    e.DaysRemaining,
		TermYears:        e.TermYears,
		OfferingType:     e.OfferingType,
		FixedPrice:       amount(e.FixedPrice),
		RecurringHourly:  amount(e.RecurringHourly),
		OnDemandHourly:   amount(e.OnDemandHourly),
		ReservedYearly:   amount(e.ReservedYearly),
		OnDemandYearly:   amount(e.OnDemandYearly),
		SavingYearly:     amount(e.SavingYearly),
	}
}

func toTotalsView(report models.CostReport) totalsView {
	return totalsView{
		Count:          report.TotalCount,
		ReservedYearly: amount(report.TotalReservedYearly),
		OnDemandYearly: amount(report.TotalOnDemandYearly),
		Saving:         amount(report.TotalSaving),
	}
}

func toInstanceViews(details []models.InstanceDetail, wide bool) []instanceView {
	views := make([]instanceView, 0, len(details))
	for _, d := range details {
		v := instanceView{
			InstanceID: d.InstanceID,
			Name:       d.Name,
			State:      d.State,
			PrivateIP:  d.PrivateIP,
			PublicIP:   d.PublicIP,
			Spot:       d.Spot,
		}
		if wide {
			v.InstanceType = d.InstanceType
			v.AvailabilityZone = d.AvailabilityZone
			v.SSM = d.SSM
			if d.Spec != nil {
				v.Spec = d.Spec.String()
			}
		}
		views = append(views, v)
	}
	return views
}

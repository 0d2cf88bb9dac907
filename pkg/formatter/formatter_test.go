package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/pkg/aws"
)

var testMeta = Meta{
	Program:   "jaws",
	Version:   "v1.2.3",
	Region:    "ap-northeast-2",
	Generated: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
	User:      "ops@bastion",
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleReport() ReservationReport {
	return ReservationReport{
		Title: "unused reservations",
		Cost: models.CostReport{
			Elements: []models.ReservationElement{{
				InstanceType:    "m5.large",
				Quantity:        2,
				Expires:         time.Date(2027, 1, 22, 0, 0, 0, 0, time.UTC),
				DaysRemaining:   100,
				TermYears:       3,
				OfferingType:    "No Upfront",
				FixedPrice:      decimal.Zero,
				RecurringHourly: d("0.05"),
				OnDemandHourly:  d("0.12"),
				ReservedYearly:  d("876"),
				OnDemandYearly:  d("2102.4"),
				SavingYearly:    d("1226.4"),
			}},
			TotalCount:          2,
			TotalReservedYearly: d("876"),
			TotalOnDemandYearly: d("2102.4"),
			TotalSaving:         d("1226.4"),
		},
	}
}

func TestAmountRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "0.01", amount(d("0.005")))
	assert.Equal(t, "1226.40", amount(d("1226.395")))
	assert.Equal(t, "-0.01", amount(d("-0.005")))
	assert.Equal(t, "876.00", amount(d("876")))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,226.40", money(d("1226.395")))
	assert.Equal(t, "$0.00", money(decimal.Zero))
	assert.Equal(t, "-$12,345,678.90", money(d("-12345678.9")))
	assert.Equal(t, "$92,233,720,368,547,758,070.50", money(d("92233720368547758070.5")))
}

func TestNewUnsupportedOutput(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{}, testMeta)
	assert.Error(t, err)
}

func TestTableReservations(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("table", &buf, testMeta)
	require.NoError(t, err)

	require.NoError(t, r.RenderReservations(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "jaws v1.2.3 - unused reservations in Asia Pacific (Seoul) (ap-northeast-2)")
	assert.Contains(t, out, "RESERVED/YR")
	assert.Contains(t, out, "regional")
	assert.Contains(t, out, "2027-01-22")
	assert.Contains(t, out, "876.00")
	assert.Contains(t, out, "2102.40")
	assert.Contains(t, out, "1226.40")
	assert.Contains(t, out, "Yearly saving:         $1,226.40")
	assert.Contains(t, out, "Generated at 2026-10-14 09:30:00 by ops@bastion")
	assert.NotContains(t, out, "Covered instances")
}

func TestTableReservationsWithCoverage(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("table", &buf, testMeta)
	require.NoError(t, err)

	ssm := true
	report := sampleReport()
	report.Coverage = &Coverage{
		Covered: []models.InstanceDetail{{
			Instance: models.Instance{InstanceID: "i-1", Name: "api", InstanceType: "m5.large", State: "running"},
			SSM:      &ssm,
			Spec:     &models.InstanceTypeSpec{VCPUs: 2, MemoryGiB: 8},
		}},
	}
	require.NoError(t, r.RenderReservations(report))
	out := buf.String()

	assert.Contains(t, out, "## Covered instances (1)")
	assert.Contains(t, out, "## Uncovered instances (0)")
	assert.Contains(t, out, "2/8")
	assert.Contains(t, out, "No instances found.")
}

func TestTableEmptyReservations(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("table", &buf, testMeta)
	require.NoError(t, err)

	require.NoError(t, r.RenderReservations(ReservationReport{Title: "reservations"}))
	assert.Contains(t, buf.String(), "No reservations found.")
}

func TestTableInstancesNarrow(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("table", &buf, testMeta)
	require.NoError(t, err)

	require.NoError(t, r.RenderInstances([]models.InstanceDetail{{
		Instance: models.Instance{InstanceID: "i-1", Name: "api", State: "running", PrivateIP: "10.0.0.1"},
	}}, false))
	out := buf.String()

	assert.Contains(t, out, "PRIVATE IP")
	assert.NotContains(t, out, "SSM")
	assert.Contains(t, out, "10.0.0.1")
}

func TestTableIdentity(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("table", &buf, testMeta)
	require.NoError(t, err)

	require.NoError(t, r.RenderIdentity(models.CallerIdentity{ARN: "arn:aws:iam::1:user/ops", Account: "1", UserID: "AIDA"}))
	assert.Contains(t, buf.String(), "arn:aws:iam::1:user/ops")
	assert.Contains(t, buf.String(), "Account:")
}

func TestJSONReservations(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("json", &buf, testMeta)
	require.NoError(t, err)

	require.NoError(t, r.RenderReservations(sampleReport()))

	var doc reservationDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Reservations, 1)
	assert.Equal(t, "876.00", doc.Reservations[0].ReservedYearly)
	assert.Equal(t, "0.00", doc.Reservations[0].FixedPrice)
	assert.Equal(t, "regional", doc.Reservations[0].AvailabilityZone)
	assert.Equal(t, []string{}, doc.Reservations[0].ReservationIDs)
	assert.Equal(t, "1226.40", doc.Totals.Saving)
	assert.Equal(t, "2026-10-14T09:30:00Z", doc.Generated)
	assert.Nil(t, doc.Coverage)
	assert.NotContains(t, buf.String(), "coverage")
}

func TestJSONCoverageListsAreNeverNull(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("json", &buf, testMeta)
	require.NoError(t, err)

	report := sampleReport()
	report.Coverage = &Coverage{}
	require.NoError(t, r.RenderReservations(report))

	assert.Contains(t, buf.String(), `"covered": []`)
	assert.Contains(t, buf.String(), `"uncovered": []`)
}

func TestYAMLInstances(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("yaml", &buf, testMeta)
	require.NoError(t, err)

	ssm := false
	require.NoError(t, r.RenderInstances([]models.InstanceDetail{{
		Instance: models.Instance{InstanceID: "i-1", Name: "api", InstanceType: "m5.large", Spot: true},
		SSM:      &ssm,
	}}, true))

	var doc instanceDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Instances, 1)
	assert.Equal(t, "m5.large", doc.Instances[0].InstanceType)
	assert.True(t, doc.Instances[0].Spot)
	require.NotNil(t, doc.Instances[0].SSM)
	assert.False(t, *doc.Instances[0].SSM)
}

func TestPrintCacheStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintCacheStats(&buf, []aws.StatLine{
		{Table: aws.TableRolePolicies, APICalls: 1, CacheHits: 3},
	}))
	assert.Contains(t, buf.String(), "role-policies")
	assert.Contains(t, buf.String(), "75.0%")

	buf.Reset()
	require.NoError(t, PrintCacheStats(&buf, nil))
	assert.Empty(t, buf.String())
}

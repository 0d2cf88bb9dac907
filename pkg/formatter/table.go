package formatter

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/younsl/jaws/internal/models"
)

type tableRenderer struct {
	w    io.Writer
	meta Meta
}

func (r *tableRenderer) RenderReservations(report ReservationReport) error {
	printHeader(r.w, r.meta, report.Title)

	if len(report.Cost.Elements) == 0 {
		fmt.Fprintln(r.w, "No reservations found.")
	} else {
		w := newTabWriter(r.w)
		fmt.Fprintln(w, "TYPE\tQTY\tAZ\tEXPIRES\tDAYS LEFT\tTERM (YRS)\tOFFERING\tFIXED PRICE\tHOURLY\tRESERVED/YR\tON-DEMAND/YR\tSAVING/YR")
		for _, e := range report.Cost.Elements {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.InstanceType,
				e.Quantity,
				availabilityZone(e.AvailabilityZone),
				e.Expires.Format("2006-01-02"),
				e.DaysRemaining,
				e.TermYears,
				e.OfferingType,
				amount(e.FixedPrice),
				amount(e.RecurringHourly),
				amount(e.ReservedYearly),
				amount(e.OnDemandYearly),
				amount(e.SavingYearly),
			)
		}
		fmt.Fprintf(w, "Total:\t%s\t\t\t\t\t\t\t\t%s\t%s\t%s\n",
			humanize.Comma(report.Cost.TotalCount),
			amount(report.Cost.TotalReservedYearly),
			amount(report.Cost.TotalOnDemandYearly),
			amount(report.Cost.TotalSaving),
		)
		if err := w.Flush(); err != nil {
			return err
		}

		printReservationSummary(r.w, report.Cost)
	}

	if report.Coverage != nil {
		fmt.Fprintf(r.w, "\n## Covered instances (%s)\n", humanize.Comma(int64(len(report.Coverage.Covered))))
		if err := writeInstances(r.w, report.Coverage.Covered, true); err != nil {
			return err
		}
		fmt.Fprintf(r.w, "\n## Uncovered instances (%s)\n", humanize.Comma(int64(len(report.Coverage.Uncovered))))
		if err := writeInstances(r.w, report.Coverage.Uncovered, true); err != nil {
			return err
		}
	}

	printFooter(r.w, r.meta)
	return nil
}

// printReservationSummary prints the count and yearly figures under the table
func printReservationSummary(w io.Writer, cost models.CostReport) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Reservations:          %s\n", humanize.Comma(cost.TotalCount))
	fmt.Fprintf(w, "Yearly reserved spend: %s\n", money(cost.TotalReservedYearly))
	fmt.Fprintf(w, "Yearly saving:         %s\n", money(cost.TotalSaving))
}

func (r *tableRenderer) RenderInstances(details []models.InstanceDetail, wide bool) error {
	printHeader(r.w, r.meta, "instances")
	if err := writeInstances(r.w, details, wide); err != nil {
		return err
	}
	printFooter(r.w, r.meta)
	return nil
}

func writeInstances(out io.Writer, details []models.InstanceDetail, wide bool) error {
	if len(details) == 0 {
		fmt.Fprintln(out, "No instances found.")
		return nil
	}

	w := newTabWriter(out)
	header := "NAME\tINSTANCE ID\tSTATE\tPRIVATE IP\tPUBLIC IP\tSPOT"
	if wide {
		header += "\tTYPE\tAZ\tSPEC\tSSM"
	}
	fmt.Fprintln(w, header)

	for _, d := range details {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s",
			d.Name,
			d.InstanceID,
			d.State,
			orDash(d.PrivateIP),
			orDash(d.PublicIP),
			strconv.FormatBool(d.Spot),
		)
		if wide {
			writeWideColumns(w, d)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func writeWideColumns(w *tabwriter.Writer, d models.InstanceDetail) {
	spec := "-"
	if d.Spec != nil {
		spec = d.Spec.String()
	}
	ssm := "-"
	if d.SSM != nil {
		ssm = strconv.FormatBool(*d.SSM)
	}
	fmt.Fprintf(w, "\t%s\t%s\t%s\t%s", d.InstanceType, d.AvailabilityZone, spec, ssm)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (r *tableRenderer) RenderIdentity(identity models.CallerIdentity) error {
	w := newTabWriter(r.w)
	fmt.Fprintf(w, "ARN:\t%s\n", identity.ARN)
	fmt.Fprintf(w, "Account:\t%s\n", identity.Account)
	fmt.Fprintf(w, "User:\t%s\n", identity.UserID)
	return w.Flush()
}

package formatter

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/younsl/jaws/internal/models"
)

type encodeFunc func(w io.Writer, v any) error

func encodeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// structuredRenderer emits one machine readable document per report
type structuredRenderer struct {
	w      io.Writer
	meta   Meta
	encode encodeFunc
}

func (r *structuredRenderer) RenderReservations(report ReservationReport) error {
	doc := reservationDocument{
		Title:        report.Title,
		Region:       r.meta.Region,
		Generated:    generated(r.meta.Generated),
		Reservations: make([]reservationView, 0, len(report.Cost.Elements)),
		Totals:       toTotalsView(report.Cost),
	}
	for _, e := range report.Cost.Elements {
		doc.Reservations = append(doc.Reservations, toReservationView(e))
	}
	if report.Coverage != nil {
		doc.Coverage = &coverageView{
			Covered:   toInstanceViews(report.Coverage.Covered, true),
			Uncovered: toInstanceViews(report.Coverage.Uncovered, true),
		}
	}
	return r.encode(r.w, doc)
}

func (r *structuredRenderer) RenderInstances(details []models.InstanceDetail, wide bool) error {
	return r.encode(r.w, instanceDocument{
		Region:    r.meta.Region,
		Generated: generated(r.meta.Generated),
		Instances: toInstanceViews(details, wide),
	})
}

func (r *structuredRenderer) RenderIdentity(identity models.CallerIdentity) error {
	return r.encode(r.w, identityView{
		ARN:     identity.ARN,
		Account: identity.Account,
		UserID:  identity.UserID,
	})
}

package workflows

import (
	"context"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/client/async"
	"github.com/truthlens/truthlens/internal/client/client"
	"github.com/truthlens/truthlens/internal/client/forms"
)

// ReportFlow drives the link-report screen. After a successful submission the
// flow is in a terminal Submitted display state; the user either starts a
// fresh report (SubmitAnother, which resets everything) or leaves the screen
// with the state intact.
type ReportFlow struct {
	client client.Client
	form   *forms.Form
	op     *async.Operation[*api.ReportReceipt]
	source api.ReportSource
}

func NewReportFlow(cl client.Client) *ReportFlow {
	return &ReportFlow{
		client: cl,
		form:   forms.NewForm(forms.KindReport),
		op:     async.New[*api.ReportReceipt](),
		source: api.SourceWhatsApp,
	}
}

func (f *ReportFlow) Form() *forms.Form { return f.form }

func (f *ReportFlow) Source() api.ReportSource { return f.source }

// SetSource picks the channel the suspicious content arrived through. Unknown
// values are rejected so the wire enum stays closed.
func (f *ReportFlow) SetSource(src api.ReportSource) error {
	if !src.Valid() {
		return api.ErrUnknownSource
	}
	f.source = src
	return nil
}

func (f *ReportFlow) State() async.State[*api.ReportReceipt] { return f.op.State() }

// Submitted reports whether the flow reached its terminal display state.
func (f *ReportFlow) Submitted() bool {
	return f.op.State().Status == async.StatusSucceeded
}

// Receipt returns the backend receipt, or nil before a successful submission.
func (f *ReportFlow) Receipt() *api.ReportReceipt {
	st := f.op.State()
	if st.Status != async.StatusSucceeded {
		return nil
	}
	return st.Result
}

// Submit validates the form and sends the report. Once Submitted, further
// calls are no-ops returning nil; SubmitAnother must be called to start over.
func (f *ReportFlow) Submit(ctx context.Context) error {
	if f.Submitted() {
		return nil
	}
	if errs := f.form.Validate(); len(errs) > 0 {
		return ErrInvalidForm
	}

	report := api.Report{
		Source:  f.source,
		URL:     f.form.Value(forms.FieldURL),
		Message: f.form.Value(forms.FieldMessage),
	}
	st := f.op.Run(ctx, func(ctx context.Context) (*api.ReportReceipt, error) {
		return f.client.SubmitReport(ctx, report)
	})
	return st.Err
}

// SubmitAnother leaves the Submitted state: the form, the operation and the
// source selection all return to their initial values.
func (f *ReportFlow) SubmitAnother() {
	f.form.Reset()
	f.op.Reset()
	f.source = api.SourceWhatsApp
}

package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/client/async"
	"github.com/truthlens/truthlens/internal/client/client"
	"github.com/truthlens/truthlens/internal/client/forms"
)

func TestReportFlow_MissingContentAborts(t *testing.T) {
	cl := client.NewSimulated(0)
	f := NewReportFlow(cl)

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Contains(t, f.Form().FieldErrors(), forms.FieldForm)
	assert.Equal(t, async.StatusIdle, f.State().Status)
	assert.Empty(t, cl.Reports())
}

func TestReportFlow_SubmitURLOnly(t *testing.T) {
	cl := client.NewSimulated(0)
	f := NewReportFlow(cl)
	require.NoError(t, f.SetSource(api.SourceSMS))
	f.Form().Set(forms.FieldURL, "example.com/suspicious")

	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, f.Submitted())
	require.NotNil(t, f.Receipt())
	assert.NotEmpty(t, f.Receipt().ID)

	reports := cl.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, api.SourceSMS, reports[0].Source)
	assert.Equal(t, "example.com/suspicious", reports[0].URL)
}

func TestReportFlow_SubmitMessageOnly(t *testing.T) {
	cl := client.NewSimulated(0)
	f := NewReportFlow(cl)
	f.Form().Set(forms.FieldMessage, "Congratulations, you won a prize!")

	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, f.Submitted())
}

func TestReportFlow_SubmittedIsTerminal(t *testing.T) {
	cl := client.NewSimulated(0)
	f := NewReportFlow(cl)
	f.Form().Set(forms.FieldMessage, "odd message")
	require.NoError(t, f.Submit(context.Background()))

	// further submits do not send another report
	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, cl.Reports(), 1)
}

func TestReportFlow_SubmitAnotherResets(t *testing.T) {
	cl := client.NewSimulated(0)
	f := NewReportFlow(cl)
	require.NoError(t, f.SetSource(api.SourceInstagram))
	f.Form().Set(forms.FieldMessage, "odd message")
	require.NoError(t, f.Submit(context.Background()))

	f.SubmitAnother()
	assert.False(t, f.Submitted())
	assert.Nil(t, f.Receipt())
	assert.Empty(t, f.Form().Value(forms.FieldMessage))
	assert.Equal(t, async.StatusIdle, f.State().Status)
	assert.Equal(t, api.SourceWhatsApp, f.Source())
}

func TestReportFlow_SetSourceUnknown(t *testing.T) {
	f := NewReportFlow(client.NewSimulated(0))
	err := f.SetSource(api.ReportSource("telegram"))
	assert.ErrorIs(t, err, api.ErrUnknownSource)
	assert.Equal(t, api.SourceWhatsApp, f.Source())
}

type failingReportClient struct {
	*client.Simulated
	err error
}

func (c *failingReportClient) SubmitReport(ctx context.Context, report api.Report) (*api.ReportReceipt, error) {
	return nil, c.err
}

func TestReportFlow_SubmitFailureNotTerminal(t *testing.T) {
	boom := errors.New("backend down")
	cl := &failingReportClient{Simulated: client.NewSimulated(0), err: boom}
	f := NewReportFlow(cl)
	f.Form().Set(forms.FieldMessage, "odd message")

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, f.Submitted())
	assert.Equal(t, async.StatusFailed, f.State().Status)
	assert.Nil(t, f.Receipt())
}

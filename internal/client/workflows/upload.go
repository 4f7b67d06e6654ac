package workflows

import (
	"context"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/client/async"
	"github.com/truthlens/truthlens/internal/client/client"
)

// AnalysisFlow drives the image-analysis screen. Selecting an image is a
// precondition for Analyze; the caller performs file-type and size checks at
// the boundary before handing the bytes over. A successful analysis puts the
// flow in a terminal Analyzed state until a new image is selected or the flow
// is cleared.
type AnalysisFlow struct {
	client   client.Client
	op       *async.Operation[*api.AnalysisReport]
	filename string
	image    []byte
}

func NewAnalysisFlow(cl client.Client) *AnalysisFlow {
	return &AnalysisFlow{
		client: cl,
		op:     async.New[*api.AnalysisReport](),
	}
}

// SelectImage stages an image for analysis. Any previous result is discarded
// and the operation returns to Idle, whether or not the prior analysis
// finished.
func (f *AnalysisFlow) SelectImage(filename string, image []byte) {
	f.filename = filename
	f.image = image
	f.op.Reset()
}

// Selected returns the staged image filename, or "" when none is staged.
func (f *AnalysisFlow) Selected() string { return f.filename }

func (f *AnalysisFlow) State() async.State[*api.AnalysisReport] { return f.op.State() }

// Analyzed reports whether the flow reached its terminal display state.
func (f *AnalysisFlow) Analyzed() bool {
	return f.op.State().Status == async.StatusSucceeded
}

// Result returns the analysis report, or nil before a successful analysis.
func (f *AnalysisFlow) Result() *api.AnalysisReport {
	st := f.op.State()
	if st.Status != async.StatusSucceeded {
		return nil
	}
	return st.Result
}

// Analyze sends the staged image for analysis. Calling it without a staged
// image returns ErrNoImageSelected; calling it while already Analyzed is a
// no-op (select a new image or Clear to start over).
func (f *AnalysisFlow) Analyze(ctx context.Context) error {
	if f.image == nil {
		return ErrNoImageSelected
	}
	if f.Analyzed() {
		return nil
	}
	st := f.op.Run(ctx, func(ctx context.Context) (*api.AnalysisReport, error) {
		return f.client.AnalyzeImage(ctx, f.filename, f.image)
	})
	return st.Err
}

// Clear discards the staged image and any result.
func (f *AnalysisFlow) Clear() {
	f.filename = ""
	f.image = nil
	f.op.Reset()
}

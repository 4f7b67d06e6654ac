package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/client/forms"
	"github.com/truthlens/truthlens/internal/client/workflows"
)

// Report runs the link-report workflow: pick a source, enter a link and/or a
// message, submit. The view is protected; signed-out users are redirected to
// authentication instead.
func (a *App) Report(ctx context.Context) error {
	if a.router.Navigate(ViewReport) != ViewReport {
		fmt.Println("Please sign in first.")
		return nil
	}

	if a.reportFlow.Submitted() {
		a.reportFlow.SubmitAnother()
	}

	source, err := getSimpleText(a.reader, "Where did you receive it? (whatsapp/instagram/facebook/sms/web)", os.Stdout)
	if err != nil {
		return err
	}
	if source != "" {
		if err := a.reportFlow.SetSource(api.ReportSource(strings.ToLower(source))); err != nil {
			fmt.Println("Unknown source, using whatsapp.")
		}
	}

	url, err := getSimpleText(a.reader, "Suspicious link (leave empty if none)", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Describe the message (leave empty if none)", os.Stdout)
	if err != nil {
		return err
	}

	a.reportFlow.Form().Set(forms.FieldURL, url)
	a.reportFlow.Form().Set(forms.FieldMessage, message)

	err = a.reportFlow.Submit(ctx)
	switch {
	case err == nil:
		receipt := a.reportFlow.Receipt()
		fmt.Printf("Report received. Reference: %s\n", receipt.ID)
	case errors.Is(err, workflows.ErrInvalidForm):
		printFieldErrors(a.reportFlow.Form().FieldErrors())
	default:
		log.Printf("Report submission failed: %s", err.Error())
	}
	return nil
}

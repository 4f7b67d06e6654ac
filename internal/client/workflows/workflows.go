// Package workflows composes forms, async operations and the session store
// into the user-facing actions of the client: signing in or up, reporting a
// suspicious link, and analyzing an image. Each flow instance is independent;
// two open report flows may have operations pending at the same time.
package workflows

import "errors"

// ErrInvalidForm is returned by a flow's Submit when validation failed. The
// per-field messages are available on the flow's form; the external operation
// is not invoked.
var ErrInvalidForm = errors.New("form has validation errors")

// ErrNoImageSelected is returned by Analyze when no image was selected first.
var ErrNoImageSelected = errors.New("no image selected")

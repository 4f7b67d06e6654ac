package workflows

import (
	"context"

	"github.com/truthlens/truthlens/internal/client/async"
	"github.com/truthlens/truthlens/internal/client/forms"
	"github.com/truthlens/truthlens/internal/client/session"
)

// AuthFlow drives the sign-in / sign-up screen. It validates the active form
// before invoking the session store, so invalid input never reaches the
// backend. On success the session store flips, which is the signal dependent
// surfaces (the navigation guard) react to.
type AuthFlow struct {
	session *session.Store
	form    *forms.Form
	op      *async.Operation[struct{}]
}

func NewAuthFlow(sess *session.Store) *AuthFlow {
	return &AuthFlow{
		session: sess,
		form:    forms.NewForm(forms.KindLogin),
		op:      async.New[struct{}](),
	}
}

func (f *AuthFlow) Form() *forms.Form { return f.form }

func (f *AuthFlow) Mode() forms.Kind { return f.form.Kind() }

// SetMode toggles between login and signup. Field values survive the switch;
// stale errors from the other mode do not.
func (f *AuthFlow) SetMode(kind forms.Kind) {
	if kind != forms.KindLogin && kind != forms.KindSignup {
		return
	}
	f.form.SetKind(kind)
	f.op.Reset()
}

func (f *AuthFlow) State() async.State[struct{}] { return f.op.State() }

// Submit validates the form and, when clean, runs the credential operation
// for the active mode. Validation failures return ErrInvalidForm and leave
// the operation untouched; operation failures are returned as-is and leave
// the session unchanged.
func (f *AuthFlow) Submit(ctx context.Context) error {
	if errs := f.form.Validate(); len(errs) > 0 {
		return ErrInvalidForm
	}

	st := f.op.Run(ctx, func(ctx context.Context) (struct{}, error) {
		if f.form.Kind() == forms.KindSignup {
			return struct{}{}, f.session.Signup(ctx,
				f.form.Value(forms.FieldEmail),
				f.form.Value(forms.FieldUsername),
				f.form.Value(forms.FieldPassword))
		}
		return struct{}{}, f.session.Login(ctx,
			f.form.Value(forms.FieldEmail),
			f.form.Value(forms.FieldPassword))
	})
	return st.Err
}

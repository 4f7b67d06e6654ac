package forms

// Form holds the mutable state of one on-screen form: its field values and
// the errors of the last validation pass. A submit is permitted only when a
// fresh Validate returns no errors.
type Form struct {
	kind   Kind
	fields Fields
	errors Errors
}

func NewForm(kind Kind) *Form {
	return &Form{kind: kind, fields: Fields{}, errors: Errors{}}
}

func (f *Form) Kind() Kind { return f.kind }

// SetKind switches the rule set (login/signup toggle). Field values are kept
// so the user does not retype them; errors are left to the next validation.
func (f *Form) SetKind(kind Kind) { f.kind = kind }

// Set records a field value. If the field currently carries an error, the
// field is re-validated immediately: the error disappears the moment the
// value becomes valid and is refreshed otherwise. Errors of other fields are
// untouched; only a full Validate replaces the whole set.
func (f *Form) Set(name, value string) {
	f.fields[name] = value

	f.refresh(name)

	// Form-scoped errors depend on the url/message pair; re-check when
	// either one changes.
	if name == FieldURL || name == FieldMessage {
		f.refresh(FieldForm)
	}
}

func (f *Form) refresh(name string) {
	if _, present := f.errors[name]; !present {
		return
	}
	if msg, ok := ValidateField(f.fields, f.kind, name); !ok {
		f.errors[name] = msg
	} else {
		delete(f.errors, name)
	}
}

func (f *Form) Value(name string) string { return f.fields[name] }

// Values returns a copy of the current field values.
func (f *Form) Values() Fields {
	out := make(Fields, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}

// Validate runs the full rule set and replaces the error set with the result.
func (f *Form) Validate() Errors {
	f.errors = Validate(f.fields, f.kind)
	return f.FieldErrors()
}

// FieldErrors returns a copy of the current errors.
func (f *Form) FieldErrors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Reset clears all values and errors.
func (f *Form) Reset() {
	f.fields = Fields{}
	f.errors = Errors{}
}

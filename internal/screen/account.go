package screen

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/state"
)

// Form field names.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldBirthdate = "birthdate"
	FieldPassword  = "password"
)

// validate is shared by every form; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

type loginInput struct {
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,max=1024"`
}

type createAccountInput struct {
	Name      string `form:"name" validate:"required,max=100"`
	Email     string `form:"email" validate:"required,email,max=254"`
	Birthdate string `form:"birthdate" validate:"required,datetime=01/02/2006"`
	Password  string `form:"password" validate:"required,min=8,max=1024"`
}

// fieldErrors validates input and maps failures to form field names.
func fieldErrors(input any) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[e.Field()] = friendlyMessage(e)
	}
	return out
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "datetime":
		return "must be a date like MM/DD/YYYY"
	default:
		return "is invalid"
	}
}

// accountForm is the shared body of the login and create-account screens.
type accountForm struct {
	base
	form   *state.Form
	labels map[string]string
	errs   map[string]string
}

func newAccountForm(b base, labels map[string]string, names ...string) accountForm {
	return accountForm{base: b, form: state.NewForm(names...), labels: labels}
}

// Value returns the current value of a form field.
func (f *accountForm) Value(name string) string {
	return f.form.Value(name)
}

// Errors returns the validation message per field from the last submit.
func (f *accountForm) Errors() map[string]string {
	return f.errs
}

func (f *accountForm) setField(ev Event) {
	prefix, name := splitTarget(ev.Target)
	if prefix != prefixField {
		return
	}
	if f.form.Set(name, ev.Value) {
		// Editing a field clears its stale error.
		delete(f.errs, name)
	}
}

func (f *accountForm) fields() []Node {
	out := make([]Node, 0, 2*len(f.form.Names()))
	for _, name := range f.form.Names() {
		out = append(out, field(FieldTarget(name), f.form.Value(name), f.labels[name], name == FieldPassword))
		if msg, ok := f.errs[name]; ok {
			out = append(out, notice(f.labels[name]+" "+msg))
		}
	}
	return out
}

func (f *accountForm) submit(input any) bool {
	f.errs = fieldErrors(input)
	return len(f.errs) == 0
}

// Login signs an existing reader in.
type Login struct {
	accountForm
}

// NewLogin creates the login screen.
func NewLogin(env Env) *Login {
	labels := map[string]string{FieldEmail: "Email", FieldPassword: "Password"}
	return &Login{accountForm: newAccountForm(newBase(nav.ScreenLogin, "Log In", env), labels, FieldEmail, FieldPassword)}
}

// Compose renders the login form.
func (s *Login) Compose() Node {
	children := []Node{
		heading("Welcome Back!"),
		text("Please enter your email and password."),
	}
	children = append(children, s.fields()...)
	children = append(children,
		button(TargetLogin, "Log In"),
		caption("Don't have an account?"),
		button(TargetCreate, "Create Account"),
	)
	return column(children...)
}

// Handle applies ev.
func (s *Login) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	switch ev.Kind {
	case EventTextChanged:
		s.setField(ev)
	case EventTap:
		switch ev.Target {
		case TargetLogin:
			input := loginInput{
				Email:    strings.TrimSpace(s.form.Value(FieldEmail)),
				Password: s.form.Value(FieldPassword),
			}
			if !s.submit(input) {
				return Effect{Status: "Please fix the highlighted fields"}
			}
			return Effect{Route: nav.ScreenPreferences, Reset: true, Status: "Signed in as " + input.Email}
		case TargetCreate:
			return Effect{Route: nav.ScreenCreateAccount}
		}
	}
	return Effect{}
}

// CreateAccount registers a new reader.
type CreateAccount struct {
	accountForm
}

// NewCreateAccount creates the account creation screen.
func NewCreateAccount(env Env) *CreateAccount {
	labels := map[string]string{
		FieldName:      "Name",
		FieldEmail:     "Email",
		FieldBirthdate: "Birthdate (MM/DD/YYYY)",
		FieldPassword:  "Password",
	}
	b := newBase(nav.ScreenCreateAccount, "Create Account", env)
	return &CreateAccount{accountForm: newAccountForm(b, labels, FieldName, FieldEmail, FieldBirthdate, FieldPassword)}
}

// Compose renders the registration form.
func (s *CreateAccount) Compose() Node {
	children := []Node{
		heading("Hey there!"),
		text("Enter your information to get started."),
	}
	children = append(children, s.fields()...)
	children = append(children,
		button(TargetCreate, "Create Account"),
		caption("Already have an account?"),
		button(TargetLogin, "Log in"),
	)
	return column(children...)
}

// Handle applies ev.
func (s *CreateAccount) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	switch ev.Kind {
	case EventTextChanged:
		s.setField(ev)
	case EventTap:
		switch ev.Target {
		case TargetCreate:
			input := createAccountInput{
				Name:      strings.TrimSpace(s.form.Value(FieldName)),
				Email:     strings.TrimSpace(s.form.Value(FieldEmail)),
				Birthdate: strings.TrimSpace(s.form.Value(FieldBirthdate)),
				Password:  s.form.Value(FieldPassword),
			}
			if !s.submit(input) {
				return Effect{Status: "Please fix the highlighted fields"}
			}
			return Effect{Route: nav.ScreenPreferences, Reset: true, Status: "Welcome, " + input.Name}
		case TargetLogin:
			return Effect{Back: true, Route: nav.ScreenLogin}
		}
	}
	return Effect{}
}

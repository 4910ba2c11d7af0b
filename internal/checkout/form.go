// Package checkout holds the client-side validated checkout form:
// field state, touched flags, derived per-field errors, and the
// Chilean phone normalization.
package checkout

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// PhonePrefix is the fixed Chilean country prefix every phone value
// starts from. A full number is the prefix plus 9 digits.
const (
	PhonePrefix  = "+56"
	PhoneDigits  = 9
	phoneFullLen = len(PhonePrefix) + PhoneDigits // 12
)

// Errors carries one message per field; empty string means valid.
type Errors struct {
	FullName string `json:"fullName,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Touched mirrors which fields the user has interacted with; errors
// are typically only displayed for touched fields.
type Touched struct {
	FullName bool `json:"fullName"`
	Address  bool `json:"address"`
	City     bool `json:"city"`
	Phone    bool `json:"phone"`
}

// Values is a snapshot of the current field contents.
type Values struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// fieldsPayload is what actually runs through the validator: trimmed
// copies of the form fields with the length rules as struct tags.
type fieldsPayload struct {
	FullName string `validate:"min=3"`
	Address  string `validate:"min=5"`
	City     string `validate:"min=3"`
	Phone    string `validate:"clphone"`
}

// Form is the checkout form state. Validation is a pure function of
// the current values, recomputed on every read; nothing is async.
type Form struct {
	mu       sync.Mutex
	values   Values
	touched  Touched
	validate *validator.Validate
}

// NewForm starts with empty fields and the bare phone prefix.
func NewForm() *Form {
	v := validator.New()
	// clphone: fixed +56 prefix followed by exactly 9 digits
	_ = v.RegisterValidation("clphone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !strings.HasPrefix(s, PhonePrefix) || len(s) != phoneFullLen {
			return false
		}
		for _, r := range s[len(PhonePrefix):] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return &Form{
		values:   Values{Phone: PhonePrefix},
		validate: v,
	}
}

func (f *Form) SetFullName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.FullName = v
	f.touched.FullName = true
}

func (f *Form) SetAddress(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Address = v
	f.touched.Address = true
}

func (f *Form) SetCity(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.City = v
	f.touched.City = true
}

// SetPhone normalizes before storing: input not starting with the
// prefix is rejected outright, everything after the prefix is reduced
// to at most nine digits. The stored value is therefore always "+56"
// or "+56" plus 1..9 digits, never malformed.
func (f *Form) SetPhone(raw string) {
	normalized, ok := NormalizePhone(raw)
	if !ok {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Phone = normalized
	f.touched.Phone = true
}

// AutoFill populates empty fields from an authenticated profile. A
// value the user already started typing is never clobbered: the name
// only fills while blank, the phone only while at the untouched "+56".
func (f *Form) AutoFill(user domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.TrimSpace(f.values.FullName) == "" {
		if name := user.FullName(); name != "" {
			f.values.FullName = name
		}
	}
	if f.values.Phone == PhonePrefix {
		if normalized, ok := NormalizePhone(user.Phone); ok && normalized != PhonePrefix {
			f.values.Phone = normalized
		}
	}
}

// MarkAllTouched flips every touched flag in one update. Called on a
// submit attempt against an invalid form so all errors display at once.
func (f *Form) MarkAllTouched() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = Touched{FullName: true, Address: true, City: true, Phone: true}
}

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) Touched() Touched {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

// Errors recomputes the per-field validation messages.
func (f *Form) Errors() Errors {
	vals := f.Values()

	payload := fieldsPayload{
		FullName: strings.TrimSpace(vals.FullName),
		Address:  strings.TrimSpace(vals.Address),
		City:     strings.TrimSpace(vals.City),
		Phone:    vals.Phone,
	}

	var errs Errors
	err := f.validate.Struct(payload)
	if err == nil {
		return errs
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// should not happen for a well-formed payload struct
		errs.FullName = "validation failed"
		return errs
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "FullName":
			errs.FullName = "name too short"
		case "Address":
			errs.Address = "address too short"
		case "City":
			errs.City = "city too short"
		case "Phone":
			errs.Phone = "phone must be +56 followed by 9 digits"
		}
	}
	return errs
}

// IsValid reports whether every field passes.
func (f *Form) IsValid() bool {
	return f.Errors() == Errors{}
}

// NormalizePhone enforces the fixed-prefix format. Input that does not
// start with +56 is rejected (no partial correction). Non-digits after
// the prefix are stripped and the digit run is truncated to 9.
func NormalizePhone(raw string) (string, bool) {
	if !strings.HasPrefix(raw, PhonePrefix) {
		return "", false
	}

	var digits strings.Builder
	for _, r := range raw[len(PhonePrefix):] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == PhoneDigits {
				break
			}
		}
	}
	return PhonePrefix + digits.String(), true
}

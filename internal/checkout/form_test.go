package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/checkout"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

func validForm() *checkout.Form {
	f := checkout.NewForm()
	f.SetFullName("Diego Perez")
	f.SetAddress("Avenida Siempre Viva 123")
	f.SetCity("Santiago")
	f.SetPhone("+56912345678")
	return f
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "+569-abcd-1234567890", want: "+56912345678", ok: true},
		{in: "+56912345678", want: "+56912345678", ok: true},
		{in: "+56", want: "+56", ok: true},
		{in: "+569 8765 4321", want: "+56987654321", ok: true},
		{in: "912345678", want: "", ok: false},
		{in: "+57912345678", want: "", ok: false},
		{in: "", want: "", ok: false},
	}
	for _, tc := range cases {
		got, ok := checkout.NormalizePhone(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestForm_ValidSubmission(t *testing.T) {
	f := validForm()
	require.True(t, f.IsValid(), "errors: %+v", f.Errors())
}

func TestForm_EachFieldFlipsValidity(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(*checkout.Form)
	}{
		{"short name", func(f *checkout.Form) { f.SetFullName("Di") }},
		{"short address", func(f *checkout.Form) { f.SetAddress("Av 1") }},
		{"short city", func(f *checkout.Form) { f.SetCity("St") }},
		{"short phone", func(f *checkout.Form) { f.SetPhone("+56912") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(f)
			assert.False(t, f.IsValid())
		})
	}
}

func TestForm_TrimmedLengthsCount(t *testing.T) {
	f := validForm()
	f.SetFullName("  Di  ")
	errs := f.Errors()
	assert.Equal(t, "name too short", errs.FullName, "whitespace must not pad a name past the minimum")
}

func TestForm_PhoneRejectsForeignPrefix(t *testing.T) {
	f := validForm()
	f.SetPhone("+57912345678")
	// rejected outright: the previous valid value stays
	assert.Equal(t, "+56912345678", f.Values().Phone)
}

func TestForm_PhoneTruncatesToNineDigits(t *testing.T) {
	f := checkout.NewForm()
	f.SetPhone("+569123456789999")
	assert.Equal(t, "+56912345678", f.Values().Phone)
	assert.Len(t, f.Values().Phone, 12)
}

func TestForm_AutoFillOnlyIntoUntouchedFields(t *testing.T) {
	f := checkout.NewForm()
	f.AutoFill(domain.User{FirstName: "Diego", LastName: "Perez", Phone: "+56 9 1234 5678"})

	assert.Equal(t, "Diego Perez", f.Values().FullName)
	assert.Equal(t, "+56912345678", f.Values().Phone)
}

func TestForm_AutoFillDoesNotClobberTypedValues(t *testing.T) {
	f := checkout.NewForm()
	f.SetFullName("Maria")
	f.SetPhone("+5698")

	f.AutoFill(domain.User{FirstName: "Diego", LastName: "Perez", Phone: "+56912345678"})

	assert.Equal(t, "Maria", f.Values().FullName)
	assert.Equal(t, "+5698", f.Values().Phone, "a partially typed phone is not the untouched default")
}

func TestForm_AutoFillSkipsForeignProfilePhone(t *testing.T) {
	f := checkout.NewForm()
	f.AutoFill(domain.User{Phone: "+81 965-431-3024"})
	assert.Equal(t, "+56", f.Values().Phone)
}

func TestForm_MarkAllTouched(t *testing.T) {
	f := checkout.NewForm()
	require.Equal(t, checkout.Touched{}, f.Touched())

	f.MarkAllTouched()
	assert.Equal(t, checkout.Touched{FullName: true, Address: true, City: true, Phone: true}, f.Touched())
}

func TestForm_BarePrefixPhoneIsInvalid(t *testing.T) {
	f := validForm()
	errs := f.Errors()
	require.Empty(t, errs.Phone)

	g := checkout.NewForm()
	assert.NotEmpty(t, g.Errors().Phone, "the untouched +56 default must not validate")
}

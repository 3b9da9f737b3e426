package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	rules := Rules{
		"amount":         {Required().WithMessage("Valid amount is required"), PositiveNumber().WithMessage("Valid amount is required")},
		"currency":       {Required()},
		"payment_method": {Required()},
	}

	errs := Validate(Draft{"amount": "", "currency": "", "payment_method": ""}, rules)
	require.Len(t, errs, 3)
	require.Equal(t, "Valid amount is required", errs["amount"])
	require.Equal(t, "This field is required", errs["currency"])
	require.Equal(t, "This field is required", errs["payment_method"])
}

func TestValidateNegativeAmount(t *testing.T) {
	rules := Rules{
		"amount": {Required().WithMessage("Valid amount is required"), PositiveNumber().WithMessage("Valid amount is required")},
	}

	errs := Validate(Draft{"amount": "-5"}, rules)
	require.Equal(t, "Valid amount is required", errs["amount"])
}

func TestValidatePositiveInteger(t *testing.T) {
	rules := Rules{"supplier_order_id": {PositiveInteger()}}

	for _, bad := range []string{"0", "-3", "abc", "1.5"} {
		errs := Validate(Draft{"supplier_order_id": bad}, rules)
		require.Equal(t, "must be a positive number", errs["supplier_order_id"], "input %q", bad)
	}

	errs := Validate(Draft{"supplier_order_id": "42"}, rules)
	require.Empty(t, errs)
}

func TestValidateNonNegativeNumber(t *testing.T) {
	rules := Rules{"tax_amount": {NonNegativeNumber()}}

	for _, ok := range []string{"", "0", "0.00", "15.5"} {
		errs := Validate(Draft{"tax_amount": ok}, rules)
		require.Empty(t, errs, "input %q", ok)
	}

	for _, bad := range []string{"-1", "abc"} {
		errs := Validate(Draft{"tax_amount": bad}, rules)
		require.Equal(t, "must not be negative", errs["tax_amount"], "input %q", bad)
	}
}

func TestEqualsSumTolerance(t *testing.T) {
	rules := Rules{
		"total_amount": {EqualsSum("subtotal", "tax_amount")},
	}

	// Within the 0.01 tolerance.
	errs := Validate(Draft{"subtotal": "100", "tax_amount": "15", "total_amount": "114.999"}, rules)
	require.Empty(t, errs)

	// Clear mismatch.
	errs = Validate(Draft{"subtotal": "100", "tax_amount": "15", "total_amount": "120"}, rules)
	require.Equal(t, "must equal subtotal plus tax_amount", errs["total_amount"])
}

func TestEqualsSumSkipsUnparsableOperands(t *testing.T) {
	rules := Rules{
		"total_amount": {EqualsSum("subtotal", "tax_amount")},
		"subtotal":     {PositiveNumber()},
	}

	errs := Validate(Draft{"subtotal": "oops", "tax_amount": "15", "total_amount": "120"}, rules)
	require.NotContains(t, errs, "total_amount")
	require.Contains(t, errs, "subtotal")
}

func TestStripNonDigits(t *testing.T) {
	require.Equal(t, "123", StripNonDigits("12ab3"))
	require.Equal(t, "", StripNonDigits("abc"))
	require.Equal(t, "42", StripNonDigits(" 4 2 "))
}

package invoices

import (
	"context"

	"github.com/dentora/backoffice/internal/form"
)

// FormBackfill is the manual supplier-invoice backfill form kind.
const FormBackfill = "supplierinvoice.backfill"

// LinkResources maps the supplier_order discriminator to its upstream
// existence-check path.
func LinkResources() map[string]string {
	return map[string]string{
		"supplier_order": "/supplierorders/%d",
	}
}

func backfillRules() form.Rules {
	return form.Rules{
		"invoice_number": {form.Required()},
		"issued_at":      {form.Required()},
		"subtotal": {
			form.Required().WithMessage("Valid amount is required"),
			form.PositiveNumber().WithMessage("Valid amount is required"),
		},
		"tax_amount": {form.NonNegativeNumber()},
		"total_amount": {
			form.Required().WithMessage("Valid amount is required"),
			form.PositiveNumber().WithMessage("Valid amount is required"),
			form.EqualsSum("subtotal", "tax_amount"),
		},
	}
}

// RegisterForms binds the backfill form to the shared form handler.
func (s *Service) RegisterForms(h *form.Handler, checker *form.Checker) {
	h.Register(FormBackfill, func(ctx context.Context, entityID string) (*form.Controller, error) {
		submit := func(ctx context.Context, draft form.Draft) error {
			return s.Backfill(ctx, draft)
		}
		return form.NewController(checker, form.Config{
			Rules:       backfillRules(),
			NumericOnly: []string{"supplier_order_id"},
			Links: []form.LinkField{
				{Field: "supplier_order_id", Discriminator: "supplier_order"},
			},
			Debounce: form.DefaultDebounce,
			Submit:   submit,
		}), nil
	})
}

package payments

import (
	"context"
	"strconv"

	"github.com/dentora/backoffice/internal/form"
	"github.com/dentora/backoffice/internal/shared"
)

// FormCreate and FormEdit are the form kinds this module registers.
const (
	FormCreate = "payment.create"
	FormEdit   = "payment.edit"
)

// LinkResources maps the invoice_type discriminator to the upstream
// existence-check paths.
func LinkResources() map[string]string {
	return map[string]string{
		"customer_invoice": "/invoices/%d",
		"supplier_invoice": "/supplierinvoices/%d",
	}
}

func formRules() form.Rules {
	return form.Rules{
		"amount": {
			form.Required().WithMessage("Valid amount is required"),
			form.PositiveNumber().WithMessage("Valid amount is required"),
		},
		"currency":       {form.Required()},
		"payment_method": {form.Required()},
		"payment_date":   {form.Required()},
	}
}

func (s *Service) formConfig(submit form.SubmitFunc) form.Config {
	return form.Config{
		Rules:       formRules(),
		NumericOnly: []string{"invoice_id"},
		Links: []form.LinkField{
			{Field: "invoice_id", TypeField: "invoice_type"},
		},
		Defaults: form.Draft{"currency": "EUR", "status": "pending"},
		Debounce: form.DefaultDebounce,
		Submit:   submit,
	}
}

// RegisterForms binds the payment create and edit forms to the shared form
// handler.
func (s *Service) RegisterForms(h *form.Handler, checker *form.Checker) {
	h.Register(FormCreate, func(ctx context.Context, entityID string) (*form.Controller, error) {
		submit := func(ctx context.Context, draft form.Draft) error {
			return s.Create(ctx, draft)
		}
		return form.NewController(checker, s.formConfig(submit)), nil
	})

	h.Register(FormEdit, func(ctx context.Context, entityID string) (*form.Controller, error) {
		id, err := strconv.ParseInt(entityID, 10, 64)
		if err != nil || id <= 0 {
			return nil, shared.ErrNotFound
		}
		payment, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		submit := func(ctx context.Context, draft form.Draft) error {
			return s.Update(ctx, id, draft)
		}
		ctrl := form.NewController(checker, s.formConfig(submit))
		snap := snapshotDraft(payment)
		ctrl.LoadSnapshot(snap)
		// Prime the verdict for the already-linked invoice so an
		// unchanged edit can be submitted.
		if v := snap["invoice_id"]; v != "" {
			ctrl.SetField(ctx, "invoice_id", v, true)
		}
		return ctrl, nil
	})
}

// snapshotDraft flattens a fetched payment into the form draft.
func snapshotDraft(p *Payment) form.Draft {
	d := form.Draft{
		"amount":         strconv.FormatFloat(p.Amount, 'f', -1, 64),
		"currency":       p.Currency,
		"payment_method": p.PaymentMethod,
		"status":         p.Status,
		"payment_date":   p.PaymentDate,
		"transaction_id": p.TransactionID,
		"notes":          p.Notes,
	}
	if p.InvoiceID > 0 {
		d["invoice_type"] = p.InvoiceType
		d["invoice_id"] = strconv.FormatInt(p.InvoiceID, 10)
	}
	return d
}

package form

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"
)

// Verdict is the outcome of one existence check for a foreign-key field.
// Checked is false while no verdict applies (empty input, check pending).
type Verdict struct {
	Field   string         `json:"field"`
	Checked bool           `json:"checked"`
	Exists  bool           `json:"exists"`
	Message string         `json:"message,omitempty"`
	Entity  map[string]any `json:"entity,omitempty"`
}

// EntityGetter is the slice of the gateway the checker needs.
type EntityGetter interface {
	Get(ctx context.Context, path string, out any) (bool, error)
}

// Checker resolves foreign-key values to existence verdicts against the
// upstream API. The discriminator→path table is fixed at construction.
type Checker struct {
	gw        EntityGetter
	resources map[string]string
	group     singleflight.Group
}

// NewChecker builds a Checker. resources maps discriminators to printf
// path templates, e.g. "customer_invoice" → "/invoices/%d".
func NewChecker(gw EntityGetter, resources map[string]string) *Checker {
	return &Checker{gw: gw, resources: resources}
}

// Check resolves value under the given discriminator. It never returns an
// error: upstream failures are downgraded to a negative verdict so a
// transient blip only gates submission instead of alarming the user.
func (c *Checker) Check(ctx context.Context, field, value, discriminator string) Verdict {
	if value == "" {
		return Verdict{Field: field}
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return Verdict{Field: field, Checked: true, Message: "must be a positive number"}
	}

	template, ok := c.resources[discriminator]
	if !ok {
		return Verdict{Field: field, Checked: true, Message: "select type first"}
	}

	// Concurrent checks for the same record collapse into one upstream call.
	key := discriminator + "|" + value
	res, _, _ := c.group.Do(key, func() (any, error) {
		var entity map[string]any
		found, err := c.gw.Get(ctx, fmt.Sprintf(template, id), &entity)
		if err != nil || !found {
			return Verdict{Checked: true, Message: "not found"}, nil
		}
		return Verdict{Checked: true, Exists: true, Entity: entity}, nil
	})

	verdict := res.(Verdict)
	verdict.Field = field
	return verdict
}

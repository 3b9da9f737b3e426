package form

import (
	"context"
	"sync"
	"time"
)

// Outcome is the submission state of a form instance.
type Outcome string

const (
	OutcomeIdle       Outcome = "idle"
	OutcomeSubmitting Outcome = "submitting"
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
)

// SubmitFunc performs the create or update call for a validated draft.
type SubmitFunc func(ctx context.Context, draft Draft) error

// LinkField declares a foreign-key field whose target must exist before
// submission. The discriminator is either fixed or read from TypeField.
type LinkField struct {
	Field         string
	TypeField     string
	Discriminator string
}

// Config parameterizes a Controller for one entity form.
type Config struct {
	Rules       Rules
	NumericOnly []string
	Links       []LinkField
	Defaults    Draft
	Debounce    time.Duration
	Submit      SubmitFunc
}

// State is the JSON snapshot of a form instance sent to the dashboard.
type State struct {
	Draft      Draft              `json:"draft"`
	Errors     map[string]string  `json:"errors"`
	Verdicts   map[string]Verdict `json:"verdicts"`
	Outcome    Outcome            `json:"outcome"`
	FailReason string             `json:"fail_reason,omitempty"`
}

// Controller owns one draft record and drives the linked-record form flow:
// field edits, debounced existence checks, validation, and the gated
// submit. One instance per open form; safe for the handler goroutines that
// share it.
type Controller struct {
	mu      sync.Mutex
	cfg     Config
	checker *Checker
	sched   *scheduler

	numeric     map[string]bool
	linkByField map[string]LinkField
	linkByType  map[string]LinkField

	draft       Draft
	snapshot    Draft
	fieldErrors map[string]string
	verdicts    map[string]Verdict
	outcome     Outcome
	failReason  string
}

// NewController builds a create-mode controller seeded from cfg.Defaults.
func NewController(checker *Checker, cfg Config) *Controller {
	c := &Controller{
		cfg:         cfg,
		checker:     checker,
		sched:       newScheduler(cfg.Debounce),
		numeric:     make(map[string]bool, len(cfg.NumericOnly)),
		linkByField: make(map[string]LinkField, len(cfg.Links)),
		linkByType:  make(map[string]LinkField),
		draft:       cfg.Defaults.Clone(),
		fieldErrors: make(map[string]string),
		verdicts:    make(map[string]Verdict),
		outcome:     OutcomeIdle,
	}
	if c.draft == nil {
		c.draft = make(Draft)
	}
	for _, f := range cfg.NumericOnly {
		c.numeric[f] = true
	}
	for _, l := range cfg.Links {
		c.linkByField[l.Field] = l
		if l.TypeField != "" {
			c.linkByType[l.TypeField] = l
		}
	}
	return c
}

// LoadSnapshot switches the controller to edit mode: the given draft
// becomes both the working copy and the Reset target.
func (c *Controller) LoadSnapshot(d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = d.Clone()
	c.draft = d.Clone()
}

// SetField updates one field of the draft. Numeric-only fields are
// stripped of non-digits before storage. Editing a foreign-key value or
// its discriminator invalidates the current verdict and schedules a new
// existence check: debounced on keystrokes, immediate on blur.
func (c *Controller) SetField(ctx context.Context, name, value string, blur bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.numeric[name] {
		value = StripNonDigits(value)
	}
	c.draft[name] = value
	delete(c.fieldErrors, name)

	link, isLink := c.linkByField[name]
	if !isLink {
		link, isLink = c.linkByType[name]
	}
	if !isLink {
		return
	}

	delete(c.fieldErrors, link.Field)
	delete(c.verdicts, link.Field)
	linkValue := c.draft[link.Field]
	disc := link.Discriminator
	if link.TypeField != "" {
		disc = c.draft[link.TypeField]
	}

	if linkValue == "" {
		// Nothing to resolve; supersede any in-flight check.
		c.sched.invalidate(link.Field)
		return
	}

	// Scheduled under the draft lock so the newest draft value always
	// holds the newest sequence. The check itself outlives the
	// originating request but keeps its values (session credentials for
	// the gateway).
	checkCtx := context.WithoutCancel(ctx)
	c.sched.schedule(link.Field, blur, func(seq uint64) {
		verdict := c.checker.Check(checkCtx, link.Field, linkValue, disc)
		c.commitVerdict(link.Field, seq, verdict)
	})
}

// commitVerdict applies a resolved check unless a newer edit superseded it.
func (c *Controller) commitVerdict(field string, seq uint64, v Verdict) {
	if c.sched.current(field) != seq {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verdicts[field] = v
}

// Submit validates the draft and, when clean, runs the configured gateway
// call. Re-entry while a submission is in flight is a no-op. A failed
// submission preserves the draft so the user can correct and retry.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()
	if c.outcome == OutcomeSubmitting {
		defer c.mu.Unlock()
		return c.stateLocked()
	}

	errs := Validate(c.draft, c.cfg.Rules)
	for _, link := range c.cfg.Links {
		if _, taken := errs[link.Field]; taken {
			continue
		}
		v, ok := c.verdicts[link.Field]
		if ok && v.Checked && v.Exists {
			continue
		}
		msg := v.Message
		if msg == "" {
			msg = "record not found"
		}
		errs[link.Field] = msg
	}
	c.fieldErrors = errs
	if len(errs) > 0 {
		defer c.mu.Unlock()
		return c.stateLocked()
	}

	c.outcome = OutcomeSubmitting
	c.failReason = ""
	payload := c.draft.Clone()
	c.mu.Unlock()

	err := c.cfg.Submit(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.outcome = OutcomeFailed
		c.failReason = err.Error()
	} else {
		c.outcome = OutcomeSucceeded
	}
	return c.stateLocked()
}

// Reset restores the initial defaults (create mode) or the fetched
// snapshot (edit mode) and clears errors, verdicts and outcome.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, link := range c.cfg.Links {
		c.sched.invalidate(link.Field)
	}
	if c.snapshot != nil {
		c.draft = c.snapshot.Clone()
	} else {
		c.draft = c.cfg.Defaults.Clone()
		if c.draft == nil {
			c.draft = make(Draft)
		}
	}
	c.fieldErrors = make(map[string]string)
	c.verdicts = make(map[string]Verdict)
	c.outcome = OutcomeIdle
	c.failReason = ""
}

// State returns a copy of the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Close cancels pending checks. Called when the form is discarded.
func (c *Controller) Close() {
	c.sched.stop()
}

func (c *Controller) stateLocked() State {
	errs := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		errs[k] = v
	}
	verdicts := make(map[string]Verdict, len(c.verdicts))
	for k, v := range c.verdicts {
		verdicts[k] = v
	}
	return State{
		Draft:      c.draft.Clone(),
		Errors:     errs,
		Verdicts:   verdicts,
		Outcome:    c.outcome,
		FailReason: c.failReason,
	}
}

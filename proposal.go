package kassa

import "errors"

// ProposalState is the lifecycle state of a Proposal.
type ProposalState int

const (
	StateProposed ProposalState = iota
	StateConfirmed
	StateCancelled
)

func (s ProposalState) String() string {
	switch s {
	case StateProposed:
		return "proposed"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Proposal holds normalized assistant actions pending explicit user
// approval. No action reaches the ledger while the proposal is pending, and
// a proposal that reached a terminal state ignores further confirm/cancel
// requests, guarding against double submission.
type Proposal struct {
	state   ProposalState
	actions []Action
	display string
}

// NewProposal builds a pending proposal from a parsed response, keeping
// only the actions that would mutate the ledger. Info actions produce no
// ledger effect and are not retained.
func NewProposal(resp *Response) *Proposal {
	p := &Proposal{display: resp.Confirmation}
	if p.display == "" {
		p.display = "Проверьте данные:"
	}
	for _, a := range resp.Actions {
		switch a.(type) {
		case AddSale, AddExpense:
			p.actions = append(p.actions, a)
		}
	}
	return p
}

// State returns the proposal's lifecycle state.
func (p *Proposal) State() ProposalState { return p.state }

// Display returns the text to show for the proposal in its current state.
func (p *Proposal) Display() string { return p.display }

// Actions returns the pending normalized actions.
func (p *Proposal) Actions() []Action {
	out := make([]Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Pending reports whether the proposal still awaits a decision and has
// anything to apply.
func (p *Proposal) Pending() bool {
	return p.state == StateProposed && len(p.actions) > 0
}

// Confirm applies every pending action to the ledger, in order, then moves
// the proposal to its terminal Confirmed state. A proposal already resolved
// is left untouched and Confirm returns nil.
//
// Individual actions can still be rejected by the ledger (validation) or
// applied-but-not-durable (persistence); those errors are joined and
// returned, but the proposal is terminal either way: a confirm is consumed
// exactly once.
func (p *Proposal) Confirm(l *Ledger) error {
	if p.state != StateProposed {
		return nil
	}
	var errs error
	for _, a := range p.actions {
		switch v := a.(type) {
		case AddSale:
			if _, err := l.AddSale(v.Items, v.Total, v.Payment); err != nil {
				errs = errors.Join(errs, err)
			}
		case AddExpense:
			if _, err := l.AddExpense(v.Amount, v.Category, v.Description, v.Details); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}
	p.state = StateConfirmed
	p.display = "✅ Операция выполнена."
	return errs
}

// Cancel discards the proposal with no ledger effect. Cancelling a resolved
// proposal is a no-op.
func (p *Proposal) Cancel() {
	if p.state != StateProposed {
		return
	}
	p.state = StateCancelled
	p.display = "❌ Отменено."
}

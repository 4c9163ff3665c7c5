package kassa

import (
	"errors"
	"testing"
)

func TestNewProposal(t *testing.T) {
	t.Run("keeps only ledger actions", func(t *testing.T) {
		p := NewProposal(&Response{
			Confirmation: "Проверьте:",
			Actions: []Action{
				Info{},
				AddSale{Items: []LineItem{line("Чай", 45, 1)}, Total: 45, Payment: Cash},
				Info{},
			},
		})
		if got := len(p.Actions()); got != 1 {
			t.Fatalf("got %d actions, want 1", got)
		}
		if !p.Pending() {
			t.Error("proposal with a sale should be pending")
		}
	})

	t.Run("info only is not pending", func(t *testing.T) {
		p := NewProposal(&Response{Confirmation: "Выручка 955 рублей.", Actions: []Action{Info{}}})
		if p.Pending() {
			t.Error("info-only proposal should not be pending")
		}
		if p.Display() != "Выручка 955 рублей." {
			t.Errorf("got display %q", p.Display())
		}
	})

	t.Run("empty confirmation gets a default", func(t *testing.T) {
		p := NewProposal(&Response{})
		if p.Display() == "" {
			t.Error("display must never be empty")
		}
	})
}

func TestProposal_Confirm(t *testing.T) {
	l := newTestLedger(1000)
	p := NewProposal(&Response{Actions: []Action{
		AddSale{Items: []LineItem{line("Шаурма", 300, 2)}, Total: 600, Payment: Card},
		AddExpense{Amount: 350, Category: "Такси", Description: "AI Entry", Details: Plain{}},
	}})

	if err := p.Confirm(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.State() != StateConfirmed {
		t.Errorf("got state %s, want confirmed", p.State())
	}
	if p.Display() != "✅ Операция выполнена." {
		t.Errorf("got display %q", p.Display())
	}
	if len(l.sales) != 1 || len(l.expenses) != 1 {
		t.Fatalf("got %d sales and %d expenses, want 1 and 1", len(l.sales), len(l.expenses))
	}
	if l.sales[0].Payment != Card || l.sales[0].Total != 600 {
		t.Errorf("sale applied wrong: %+v", l.sales[0])
	}

	// A second confirm must not double-apply.
	if err := p.Confirm(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.sales) != 1 || len(l.expenses) != 1 {
		t.Error("second confirm double-applied the actions")
	}
}

func TestProposal_ConfirmIsTerminalOnError(t *testing.T) {
	l := newTestLedger(1000)
	p := NewProposal(&Response{Actions: []Action{
		AddSale{Items: nil, Total: 0, Payment: Cash}, // rejected by the ledger
		AddExpense{Amount: 100, Category: "Такси", Details: Plain{}},
	}})

	err := p.Confirm(l)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got err %v, want a ValidationError", err)
	}
	// The valid action still went through, and the proposal is spent.
	if len(l.expenses) != 1 {
		t.Errorf("got %d expenses, want 1", len(l.expenses))
	}
	if p.State() != StateConfirmed {
		t.Errorf("got state %s, want confirmed", p.State())
	}
	if err := p.Confirm(l); err != nil {
		t.Fatalf("unexpected error on re-confirm: %v", err)
	}
	if len(l.expenses) != 1 {
		t.Error("re-confirm after error re-applied actions")
	}
}

func TestProposal_Cancel(t *testing.T) {
	l := newTestLedger(1000)
	p := NewProposal(&Response{Actions: []Action{
		AddSale{Items: []LineItem{line("Чай", 45, 1)}, Total: 45, Payment: Cash},
	}})

	p.Cancel()
	if p.State() != StateCancelled {
		t.Errorf("got state %s, want cancelled", p.State())
	}
	if p.Display() != "❌ Отменено." {
		t.Errorf("got display %q", p.Display())
	}
	if len(l.sales) != 0 {
		t.Error("cancel must not touch the ledger")
	}

	// Confirm after cancel is a no-op.
	if err := p.Confirm(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.State() != StateCancelled || len(l.sales) != 0 {
		t.Error("confirm after cancel changed state or applied actions")
	}
}

package ledger

import (
	"testing"

	"kartasist/internal/model"
)

func TestApplySpending(t *testing.T) {
	c := model.Card{TotalLimit: 1000, UsedAmount: 250}
	got := ApplySpending(c, 100)

	if got.UsedAmount != 350 {
		t.Errorf("UsedAmount = %.2f, want 350", got.UsedAmount)
	}
	if c.UsedAmount != 250 {
		t.Error("input card was mutated")
	}
}

func TestApplyPayment(t *testing.T) {
	c := model.Card{TotalLimit: 1000, UsedAmount: 250}
	got := ApplyPayment(c, 100)
	if got.UsedAmount != 150 {
		t.Errorf("UsedAmount = %.2f, want 150", got.UsedAmount)
	}
}

func TestApplyPayment_ClampsAtZero(t *testing.T) {
	c := model.Card{TotalLimit: 1000, UsedAmount: 50}
	got := ApplyPayment(c, 200)
	if got.UsedAmount != 0 {
		t.Errorf("UsedAmount = %.2f, want 0 (overpayment clamps)", got.UsedAmount)
	}
}

func TestReverse_SpendingIsExactInverse(t *testing.T) {
	c := model.Card{UsedAmount: 250}
	tx := model.Transaction{Kind: model.KindSpending, Amount: 100}

	after := ApplySpending(c, tx.Amount)
	restored := Reverse(after, tx)

	if restored.UsedAmount != c.UsedAmount {
		t.Errorf("UsedAmount = %.2f, want %.2f", restored.UsedAmount, c.UsedAmount)
	}
}

func TestReverse_PaymentWithoutClamp(t *testing.T) {
	c := model.Card{UsedAmount: 250}
	tx := model.Transaction{Kind: model.KindPayment, Amount: 100}

	after := ApplyPayment(c, tx.Amount)
	restored := Reverse(after, tx)

	if restored.UsedAmount != 250 {
		t.Errorf("UsedAmount = %.2f, want 250", restored.UsedAmount)
	}
}

func TestReverse_ClampedPaymentIsNotExact(t *testing.T) {
	// Paying 200 against a 50 balance clamps to 0; reversing adds the full
	// 200 back, so the original 50 is not restored. Documented asymmetry.
	c := model.Card{UsedAmount: 50}
	tx := model.Transaction{Kind: model.KindPayment, Amount: 200}

	after := ApplyPayment(c, tx.Amount)
	restored := Reverse(after, tx)

	if restored.UsedAmount != 200 {
		t.Errorf("UsedAmount = %.2f, want 200", restored.UsedAmount)
	}
	if restored.UsedAmount == c.UsedAmount {
		t.Error("clamped payment reversal should not restore the original balance")
	}
}

func TestReverse_SpendingClampsAtZero(t *testing.T) {
	c := model.Card{UsedAmount: 30}
	tx := model.Transaction{Kind: model.KindSpending, Amount: 100}

	restored := Reverse(c, tx)
	if restored.UsedAmount != 0 {
		t.Errorf("UsedAmount = %.2f, want 0", restored.UsedAmount)
	}
}

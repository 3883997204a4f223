package networth

import "fmt"

// AccountType identifies one of the liquid-asset sub-categories.
type AccountType int

const (
	// Checking is an ordinary checking account.
	Checking AccountType = iota
	// Savings is a free savings account.
	Savings
	// Installment is a fixed installment savings plan.
	Installment
)

func (t AccountType) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case Installment:
		return "installment"
	default:
		return "unknown"
	}
}

// key returns the object key of this sub-category in the stored file.
func (t AccountType) key() string {
	switch t {
	case Checking:
		return "checking_account"
	case Savings:
		return "savings_account"
	default:
		return "installment_savings"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	case "installment":
		return Installment, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// ReceivableType identifies one of the receivables-and-deposits
// sub-categories.
type ReceivableType int

const (
	// Receivable is money loaned out to someone.
	Receivable ReceivableType = iota
	// Deposit is money parked somewhere refundable (e.g. a rental
	// deposit).
	Deposit
)

func (t ReceivableType) String() string {
	switch t {
	case Receivable:
		return "receivable"
	case Deposit:
		return "deposit"
	default:
		return "unknown"
	}
}

// key returns the object key of this sub-category in the stored file.
func (t ReceivableType) key() string {
	if t == Receivable {
		return "receivables"
	}
	return "deposits"
}

// ParseReceivableType parses a string into a ReceivableType.
func ParseReceivableType(s string) (ReceivableType, error) {
	switch s {
	case "receivable", "receivables":
		return Receivable, nil
	case "deposit", "deposits":
		return Deposit, nil
	default:
		return 0, fmt.Errorf("unknown receivable type: %q", s)
	}
}

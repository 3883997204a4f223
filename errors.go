package networth

import "errors"

// Every mutating operation reports its outcome through a small closed
// set of error conditions. Callers must check the returned error with
// errors.Is before assuming the ledger changed; on error the ledger is
// left untouched.
var (
	// ErrNotFound reports that a referenced account, entry or bucket
	// does not exist in the ledger.
	ErrNotFound = errors.New("not found")

	// ErrInsufficient reports that a withdrawal or debit exceeds the
	// available balance.
	ErrInsufficient = errors.New("insufficient balance")

	// ErrExists reports that a create operation collides with an
	// existing account or exchange of the same name.
	ErrExists = errors.New("already exists")
)

package store

// TopUpWallet credits the current user's wallet. It reports false when there
// is no current user or the amount is negative.
func (s *Store) TopUpWallet(amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil || amount < 0 {
		return false
	}
	s.currentUser.WalletBalance += amount
	return true
}

// DeductFromWallet debits the current user's wallet. Nothing changes when the
// debit would take the balance below zero.
func (s *Store) DeductFromWallet(amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deductLocked(amount)
}

func (s *Store) deductLocked(amount int64) bool {
	if s.currentUser == nil || amount < 0 || amount > s.currentUser.WalletBalance {
		return false
	}
	s.currentUser.WalletBalance -= amount
	return true
}

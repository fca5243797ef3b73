package core

// duplicates.go decides uniqueness conflicts on the email business key.
//
// Two scopes are checked during an import: the persisted store and the rows
// already accepted earlier in the same batch. The store scope wins when both
// would match, and the store's email set is never mutated during a batch
// scan, so a row that collides with the store is reported the same way
// regardless of batch order.
//
// Comparison is case-sensitive: A@x.com and a@x.com do not collide.

// EmailSet is a membership set of email addresses.
type EmailSet map[string]struct{}

// NewEmailSet collects the emails of the given users. When excludeID is
// non-empty, that record's email is left out, so an update comparing against
// the store never conflicts with itself.
func NewEmailSet(users []User, excludeID string) EmailSet {
	set := make(EmailSet, len(users))
	for _, u := range users {
		if excludeID != "" && u.ID == excludeID {
			continue
		}
		set[u.Email] = struct{}{}
	}
	return set
}

// Has reports whether the email is in the set.
func (s EmailSet) Has(email string) bool {
	_, ok := s[email]
	return ok
}

// Add inserts the email into the set.
func (s EmailSet) Add(email string) {
	s[email] = struct{}{}
}

// ResolveDuplicate checks a normalized candidate email against the store's
// emails and the batch's accepted emails. Returns nil when the candidate is
// unique in both scopes; the caller is then responsible for adding it to the
// batch set before scanning later rows.
func ResolveDuplicate(email string, store, batch EmailSet) *DuplicateEmailError {
	if store.Has(email) {
		return &DuplicateEmailError{Email: email, Scope: ScopeStore}
	}
	if batch.Has(email) {
		return &DuplicateEmailError{Email: email, Scope: ScopeBatch}
	}
	return nil
}

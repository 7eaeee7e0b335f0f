package email

import "chefbazaar_backend/internal/models"

// Provider sends user-facing notification mail. Sends are fire-and-forget:
// callers never fail a request on a send error.
type Provider interface {
	// SendRequestDecision informs a user that their role-change request
	// was approved or rejected.
	SendRequestDecision(to, name string, requestType models.RequestType, approved bool) error
}

// NoopProvider is used in development and tests.
type NoopProvider struct{}

func (p *NoopProvider) SendRequestDecision(string, string, models.RequestType, bool) error {
	return nil
}

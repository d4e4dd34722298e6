package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	MentorService MentorService
	MenteeService MenteeService
}

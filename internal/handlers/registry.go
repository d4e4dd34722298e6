package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	MentorHandler *MentorHandler
	MenteeHandler *MenteeHandler
	HealthHandler *HealthHandler
}

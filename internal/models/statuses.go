package models

// Availability describes how much time a mentor can offer.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityPartTime  Availability = "part-time"
	AvailabilityFullTime  Availability = "full-time"
	AvailabilityFlexible  Availability = "flexible"
)

// ProfileKind distinguishes the two record kinds. A record's kind is fixed at
// creation; rows never move between the mentors and mentees tables.
type ProfileKind string

const (
	KindMentor ProfileKind = "mentor"
	KindMentee ProfileKind = "mentee"
)

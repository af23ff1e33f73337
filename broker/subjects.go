package broker

const (
	UserSubject         = "user_events"
	NotificationSubject = "notification_events"
	EventSubject        = "event_events"
	DonationSubject     = "donation_events"
	SponsorshipSubject  = "sponsorship_events"
	VolunteerSubject    = "volunteer_events"
	StorySubject        = "story_events"
	MessageSubject      = "message_events"
)

type EventType string

const (
	// Standardized event types in format: <resource>.<action>
	UserCreated EventType = "user.created"
	UserUpdated EventType = "user.updated"
	UserDeleted EventType = "user.deleted"

	NotificationCreated EventType = "notification.created"
	NotificationRead    EventType = "notification.read"
	NotificationDeleted EventType = "notification.deleted"

	EventCreated      EventType = "event.created"
	EventUpdated      EventType = "event.updated"
	EventDeleted      EventType = "event.deleted"
	EventRegistered   EventType = "event.registered"
	EventUnregistered EventType = "event.unregistered"

	DonationCreated   EventType = "donation.created"
	DonationCompleted EventType = "donation.completed"
	DonationFailed    EventType = "donation.failed"

	SponsorshipCreated EventType = "sponsorship.created"
	SponsorshipUpdated EventType = "sponsorship.updated"

	VolunteerApplied  EventType = "volunteer.applied"
	VolunteerApproved EventType = "volunteer.approved"
	VolunteerRejected EventType = "volunteer.rejected"

	StoryPublished EventType = "story.published"

	MessageReceived EventType = "message.received"
)

// SubjectForEntity maps an outbox entity name to its broker subject
func SubjectForEntity(entity string) string {
	switch entity {
	case "user":
		return UserSubject
	case "notification":
		return NotificationSubject
	case "event":
		return EventSubject
	case "donation":
		return DonationSubject
	case "sponsorship":
		return SponsorshipSubject
	case "volunteer":
		return VolunteerSubject
	case "story":
		return StorySubject
	case "message":
		return MessageSubject
	default:
		return NotificationSubject
	}
}

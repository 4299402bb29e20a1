package ports

// SummaryJobKind discriminates summary-queue payloads.
type SummaryJobKind string

const (
	SummaryReserved SummaryJobKind = "reserved"
	SummaryRated    SummaryJobKind = "rated"
)

// SummaryJob is a deferred update to the denormalized reservation summaries
// stored on the user document.
type SummaryJob struct {
	Kind    SummaryJobKind
	UserID  string
	RoomID  string
	HotelID string
	Rating  int
	Review  string
}

// SummaryQueue accepts summary jobs for asynchronous application.
type SummaryQueue interface {
	Enqueue(job SummaryJob)
}

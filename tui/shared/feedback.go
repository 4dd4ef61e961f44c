package shared

// FeedbackLevel controls toast styling.
type FeedbackLevel int

const (
	FeedbackInfo    FeedbackLevel = iota
	FeedbackSuccess               // green styled
	FeedbackError                 // red styled
)

func (l FeedbackLevel) String() string {
	switch l {
	case FeedbackSuccess:
		return "success"
	case FeedbackError:
		return "error"
	default:
		return "info"
	}
}

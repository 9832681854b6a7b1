package nlp

type Intent string

const (
	IntentUnknown     Intent = "unknown"
	IntentOrder       Intent = "order"
	IntentMenu        Intent = "menu"
	IntentReservation Intent = "reservation"
	IntentIssue       Intent = "issue"
)

// IssueRoute is the sub-flow an issue report is dispatched to.
type IssueRoute string

const (
	IssueRouteOrder             IssueRoute = "order_issue"
	IssueRouteReservationCancel IssueRoute = "reservation_cancel"
	IssueRouteGeneral           IssueRoute = "general_issue"
)

// OrderAction is what a caller wants done to an existing order.
type OrderAction string

const (
	OrderActionNone   OrderAction = "none"
	OrderActionCancel OrderAction = "cancel"
	OrderActionUpdate OrderAction = "update"
)

type IntentResult struct {
	Intent         Intent `json:"intent"`
	Normalized     string `json:"normalized"`
	Keyword        string `json:"keyword,omitempty"`
	ProcessingTime string `json:"processing_time"`
}

type IntentMapping struct {
	Intent      Intent   `json:"intent"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

type INLPProcessor interface {
	Normalize(text string) string
	ClassifyMenuChoice(text string) *IntentResult
	RouteIssue(text string) IssueRoute
	OrderAction(issueText string) OrderAction
	IsAffirmative(text string) bool
	ParsePartySize(text string) int
	GetAllMappings() []IntentMapping
}

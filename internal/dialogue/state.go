package dialogue

// State names the turn the machine runs next. Each state performs at most one
// prompt/capture exchange (plus any remote call) and returns its successor.
type State int

const (
	StateIdle State = iota
	StateWelcome
	StateMainMenu

	StateOrderName
	StateOrderPhone
	StateOrderItem
	StateOrderMoreItem
	StateOrderAnother
	StateOrderSubmit
	StateOrderContinue

	StateMenuAsk
	StateMenuContinue

	StateReservationName
	StateReservationSize
	StateReservationTime
	StateReservationSubmit
	StateReservationContinue

	StateIssueAsk
	StateIssueRoute
	StateOrderIssueNumber
	StateOrderIssueVerify
	StateOrderIssueUpdate
	StateReservationCancelInfo
	StateGeneralIssueSubmit
	StateGeneralIssueRetry

	StateAskContinue
)

var stateNames = map[State]string{
	StateIdle:                  "idle",
	StateWelcome:               "welcome",
	StateMainMenu:              "main_menu",
	StateOrderName:             "order_name",
	StateOrderPhone:            "order_phone",
	StateOrderItem:             "order_item",
	StateOrderMoreItem:         "order_more_item",
	StateOrderAnother:          "order_another",
	StateOrderSubmit:           "order_submit",
	StateOrderContinue:         "order_continue",
	StateMenuAsk:               "menu_ask",
	StateMenuContinue:          "menu_continue",
	StateReservationName:       "reservation_name",
	StateReservationSize:       "reservation_size",
	StateReservationTime:       "reservation_time",
	StateReservationSubmit:     "reservation_submit",
	StateReservationContinue:   "reservation_continue",
	StateIssueAsk:              "issue_ask",
	StateIssueRoute:            "issue_route",
	StateOrderIssueNumber:      "order_issue_number",
	StateOrderIssueVerify:      "order_issue_verify",
	StateOrderIssueUpdate:      "order_issue_update",
	StateReservationCancelInfo: "reservation_cancel_info",
	StateGeneralIssueSubmit:    "general_issue_submit",
	StateGeneralIssueRetry:     "general_issue_retry",
	StateAskContinue:           "ask_continue",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the session has nothing left to run.
func (s State) Terminal() bool {
	return s == StateIdle
}

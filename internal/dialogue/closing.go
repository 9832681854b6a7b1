package dialogue

import "context"

// closingTurn is the yes/no question that ends a flow.
type closingTurn struct {
	prompt  string
	goodbye string
	abort   string
	again   State
}

var closings = map[State]closingTurn{
	StateOrderContinue:       {prompt: msgOrderContinue, goodbye: msgOrderGoodbye, abort: msgOrderCompleted, again: StateMainMenu},
	StateMenuContinue:        {prompt: msgMenuContinue, goodbye: msgMenuGoodbye, abort: msgMenuCompleted, again: StateMenuAsk},
	StateReservationContinue: {prompt: msgContinue, goodbye: msgReservationGoodbye, abort: msgReservationCompleted, again: StateMainMenu},
	StateAskContinue:         {prompt: msgContinue, goodbye: msgGoodbye, abort: msgContinueError, again: StateMainMenu},
	StateGeneralIssueRetry:   {prompt: msgIssueRetry, goodbye: msgIssueGoodbye, abort: msgIssueAborted, again: StateIssueAsk},
}

// closing treats anything other than a recognised yes as no.
func (m *Machine) closing(c closingTurn) stepFunc {
	return func(ctx context.Context) State {
		answer, err := m.turn.Ask(ctx, c.prompt)
		if err != nil {
			return m.abort(ctx, c.abort, err)
		}

		if m.nlp.IsAffirmative(answer) {
			return c.again
		}
		return m.end(ctx, c.goodbye)
	}
}

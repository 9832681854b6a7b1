package dialogue

import (
	"context"

	"SonicSavor/pkg/nlp"
	"github.com/sirupsen/logrus"
)

func (m *Machine) issueAsk(ctx context.Context) State {
	m.session.Issue.Reset()

	text, err := m.turn.Ask(ctx, msgIssueAsk)
	if err != nil {
		return m.abort(ctx, msgIssueAborted, err)
	}

	m.session.Issue.Text = text
	return StateIssueRoute
}

func (m *Machine) issueRoute(_ context.Context) State {
	switch m.nlp.RouteIssue(m.session.Issue.Text) {
	case nlp.IssueRouteOrder:
		return StateOrderIssueNumber
	case nlp.IssueRouteReservationCancel:
		return StateReservationCancelInfo
	default:
		return StateGeneralIssueSubmit
	}
}

// orderIssueNumber loops until the answer contains at least one digit.
func (m *Machine) orderIssueNumber(ctx context.Context) State {
	answer, err := m.turn.Ask(ctx, msgOrderIssueNumber)
	if err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}

	number := nlp.ExtractDigits(answer)
	if number == "" {
		if err := m.turn.Prompt(ctx, msgOrderIssueBadNumber); err != nil {
			return m.abort(ctx, msgOrderAborted, err)
		}
		return StateOrderIssueNumber
	}

	m.session.Issue.OrderNumber = number
	return StateOrderIssueVerify
}

func (m *Machine) orderIssueVerify(ctx context.Context) State {
	name, err := m.turn.Ask(ctx, msgOrderIssueVerify)
	if err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}
	m.session.Issue.CustomerName = name

	switch m.nlp.OrderAction(m.session.Issue.Text) {
	case nlp.OrderActionCancel:
		return m.cancelOrder(ctx)
	case nlp.OrderActionUpdate:
		return StateOrderIssueUpdate
	default:
		return StateAskContinue
	}
}

// cancelOrder submits the ownership-checked cancellation. A rejection is
// mapped by status code and ends the session.
func (m *Machine) cancelOrder(ctx context.Context) State {
	issue := m.session.Issue

	var message string
	err := m.call(ctx, "cancel_order", func(c context.Context) error {
		var err error
		message, err = m.backend.CancelOrder(c, issue.OrderNumber, issue.CustomerName)
		return err
	})
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"session_id":   m.session.ID,
			"order_number": issue.OrderNumber,
			"error":        err.Error(),
		}).Warn("Order cancellation rejected")
		return m.end(ctx, orderIssueMessage(err, issue.OrderNumber))
	}

	if message == "" {
		message = msgOrderCancelled(issue.OrderNumber)
	}
	if err := m.turn.Prompt(ctx, message); err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}
	return StateAskContinue
}

func (m *Machine) orderIssueUpdate(ctx context.Context) State {
	details, err := m.turn.Ask(ctx, msgOrderIssueUpdate)
	if err != nil {
		return m.abort(ctx, msgUpdateAborted, err)
	}
	m.session.Issue.UpdateDetails = details

	m.log.WithFields(logrus.Fields{
		"session_id":   m.session.ID,
		"order_number": m.session.Issue.OrderNumber,
		"details":      details,
	}).Info("Order update request noted")

	if err := m.turn.Prompt(ctx, msgUpdateNoted(m.session.Issue.OrderNumber)); err != nil {
		return m.abort(ctx, msgUpdateAborted, err)
	}
	return StateAskContinue
}

// reservationCancelInfo only acknowledges; cancellation is handled by staff.
func (m *Machine) reservationCancelInfo(ctx context.Context) State {
	if _, err := m.turn.Ask(ctx, msgReservationCancelAsk); err != nil {
		return m.abort(ctx, msgReservationAborted, err)
	}

	if err := m.turn.Prompt(ctx, msgReservationCancelAck); err != nil {
		return m.abort(ctx, msgReservationAborted, err)
	}
	return StateAskContinue
}

func (m *Machine) generalIssueSubmit(ctx context.Context) State {
	if err := m.turn.Prompt(ctx, msgCheckingIssue); err != nil {
		return m.abort(ctx, msgIssueAborted, err)
	}

	var answer string
	err := m.call(ctx, "resolve_issue", func(c context.Context) error {
		var err error
		answer, err = m.backend.ResolveIssue(c, m.session.Issue.Text)
		return err
	})
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"session_id": m.session.ID,
			"error":      err.Error(),
		}).Error("Issue resolution failed")
		if err := m.turn.Prompt(ctx, msgIssueFailed); err != nil {
			return m.abort(ctx, msgIssueAborted, err)
		}
		return StateGeneralIssueRetry
	}

	if err := m.turn.Prompt(ctx, answer); err != nil {
		return m.abort(ctx, msgIssueAborted, err)
	}
	return StateAskContinue
}

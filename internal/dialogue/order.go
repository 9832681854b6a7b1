package dialogue

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

func (m *Machine) orderName(ctx context.Context) State {
	name, err := m.turn.Ask(ctx, msgOrderName)
	if err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}

	m.session.Order.CustomerName = name
	return StateOrderPhone
}

func (m *Machine) orderPhone(ctx context.Context) State {
	phone, err := m.turn.Ask(ctx, msgOrderPhone)
	if err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}

	m.session.Order.PhoneNumber = phone
	return StateOrderItem
}

func (m *Machine) orderItem(prompt string) stepFunc {
	return func(ctx context.Context) State {
		item, err := m.turn.Ask(ctx, prompt)
		if err != nil {
			return m.abort(ctx, msgOrderAborted, err)
		}

		m.session.Order.AddItem(item)
		return StateOrderAnother
	}
}

// orderAnother is fail-open: any answer that is not a yes submits the order.
func (m *Machine) orderAnother(ctx context.Context) State {
	items := m.session.Order.Items
	last := ""
	if len(items) > 0 {
		last = items[len(items)-1]
	}

	answer, err := m.turn.Ask(ctx, msgItemAdded(last))
	if err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}

	if m.nlp.IsAffirmative(answer) {
		return StateOrderMoreItem
	}
	return StateOrderSubmit
}

func (m *Machine) orderSubmit(ctx context.Context) State {
	draft := m.session.Order
	draft.CustomerName = strings.TrimSpace(draft.CustomerName)
	draft.PhoneNumber = strings.TrimSpace(draft.PhoneNumber)

	if !draft.Complete() {
		m.session.Order.Reset()
		if err := m.turn.Prompt(ctx, msgOrderMissingInfo); err != nil {
			return m.abort(ctx, msgOrderAborted, err)
		}
		return StateWelcome
	}

	var orderID string
	err := m.call(ctx, "place_order", func(c context.Context) error {
		var err error
		orderID, err = m.backend.PlaceOrder(c, draft.CustomerName, draft.PhoneNumber, draft.Items)
		return err
	})
	m.session.Order.Reset()

	if err != nil {
		m.log.WithFields(logrus.Fields{
			"session_id": m.session.ID,
			"error":      err.Error(),
		}).Error("Failed to place order")
		return m.end(ctx, msgOrderFailed)
	}

	if err := m.turn.Prompt(ctx, msgOrderSummary(strings.Join(draft.Items, ", "), orderID)); err != nil {
		return m.abort(ctx, msgOrderAborted, err)
	}
	return StateOrderContinue
}

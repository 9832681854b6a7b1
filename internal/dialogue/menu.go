package dialogue

import (
	"context"

	"github.com/sirupsen/logrus"
)

func (m *Machine) menuAsk(ctx context.Context) State {
	question, err := m.turn.Ask(ctx, msgMenuAsk)
	if err != nil {
		return m.abort(ctx, msgMenuAborted, err)
	}

	var answer string
	err = m.call(ctx, "menu_inquiry", func(c context.Context) error {
		var err error
		answer, err = m.backend.MenuInquiry(c, question)
		return err
	})
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"session_id": m.session.ID,
			"error":      err.Error(),
		}).Error("Menu inquiry failed")
		return m.end(ctx, msgMenuFailed)
	}

	if err := m.turn.Prompt(ctx, answer); err != nil {
		return m.abort(ctx, msgMenuAborted, err)
	}
	return StateMenuContinue
}

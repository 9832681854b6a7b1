package dialogue

import (
	"context"

	"github.com/sirupsen/logrus"
)

func (m *Machine) reservationName(ctx context.Context) State {
	m.session.Reservation.Reset()

	name, err := m.turn.Ask(ctx, msgReservationName)
	if err != nil {
		return m.abort(ctx, msgReservationAborted, err)
	}

	m.session.Reservation.CustomerName = name
	return StateReservationSize
}

// reservationSize never rejects: an unparsable answer books one person.
func (m *Machine) reservationSize(ctx context.Context) State {
	people, err := m.turn.Ask(ctx, msgReservationSize(m.session.Reservation.CustomerName))
	if err != nil {
		return m.abort(ctx, msgReservationAborted, err)
	}

	m.session.Reservation.PartySize = m.nlp.ParsePartySize(people)
	return StateReservationTime
}

func (m *Machine) reservationTime(ctx context.Context) State {
	timeSlot, err := m.turn.Ask(ctx, msgReservationTime)
	if err != nil {
		return m.abort(ctx, msgReservationAborted, err)
	}

	m.session.Reservation.TimeSlot = timeSlot
	return StateReservationSubmit
}

func (m *Machine) reservationSubmit(ctx context.Context) State {
	draft := m.session.Reservation
	if draft.PartySize < 1 {
		draft.PartySize = 1
	}

	var reservationID string
	err := m.call(ctx, "create_reservation", func(c context.Context) error {
		var err error
		reservationID, err = m.backend.CreateReservation(c, draft.CustomerName, draft.TimeSlot, draft.PartySize)
		return err
	})
	m.session.Reservation.Reset()

	if err != nil {
		m.log.WithFields(logrus.Fields{
			"session_id": m.session.ID,
			"error":      err.Error(),
		}).Error("Failed to create reservation")
		return m.end(ctx, msgReservationFailed)
	}

	summary := msgReservationSummary(draft.CustomerName, draft.PartySize, draft.TimeSlot, reservationID)
	if err := m.turn.Prompt(ctx, summary); err != nil {
		return m.abort(ctx, msgReservationAborted, err)
	}
	return StateReservationContinue
}

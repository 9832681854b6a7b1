package reservationRepository

const (
	queryNextReservationSeq = `SELECT nextval('reservation_code_seq')`

	queryCreateReservation = `
INSERT INTO reservations (code, customer_name, time_slot, people, created_at)
VALUES (:code, :customer_name, :time_slot, :people, :created_at)
RETURNING id, code, customer_name, time_slot, people, created_at`

	queryListReservations = `
SELECT id, code, customer_name, time_slot, people, created_at
FROM reservations
ORDER BY created_at DESC, id DESC`
)

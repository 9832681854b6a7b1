package reservationService

import (
	"context"
	"strings"
	"time"

	"SonicSavor/internal/api/reservation"
	reservationRepository "SonicSavor/internal/api/reservation/repository"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/smtp"
	"SonicSavor/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ReservationService interface {
	CreateReservation(c context.Context, req reservation.CreateReservationRequest) (reservation.CreateReservationResponse, error)
	ListReservations(c context.Context) ([]entity.Reservation, error)
}

type reservationService struct {
	log      *logrus.Logger
	repo     reservationRepository.Repository
	mailer   smtp.ItfSmtp
	utils    utils.IUtils
	notifyTo string
	now      func() time.Time
}

// New builds the service. mailer may be nil; notices are only sent when both
// a mailer and a notifyTo address are present.
func New(log *logrus.Logger, repo reservationRepository.Repository, mailer smtp.ItfSmtp, utils utils.IUtils, notifyTo string) ReservationService {
	return &reservationService{
		log:      log,
		repo:     repo,
		mailer:   mailer,
		utils:    utils,
		notifyTo: notifyTo,
		now:      time.Now,
	}
}

func (s *reservationService) CreateReservation(c context.Context, req reservation.CreateReservationRequest) (res reservation.CreateReservationResponse, err error) {
	requestID := contextPkg.GetRequestID(c)

	if req.People < 1 {
		return reservation.CreateReservationResponse{}, reservation.ErrInvalidPartySize
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return reservation.CreateReservationResponse{}, err
	}
	defer func() {
		if err != nil {
			_ = repo.Rollback()
		}
	}()

	seq, err := repo.Reservations.NextSequence(c)
	if err != nil {
		return reservation.CreateReservationResponse{}, err
	}

	now := s.now()
	created, err := repo.Reservations.Create(c, entity.Reservation{
		Code:         s.utils.ReservationCode(now, seq),
		CustomerName: strings.TrimSpace(req.CustomerName),
		TimeSlot:     strings.TrimSpace(req.TimeSlot),
		People:       req.People,
		CreatedAt:    now,
	})
	if err != nil {
		return reservation.CreateReservationResponse{}, err
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit reservation")
		return reservation.CreateReservationResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"reservation_id": created.Code,
		"people":         created.People,
	}).Info("Reservation created")

	s.sendNotice(requestID, created)

	return reservation.CreateReservationResponse{
		Message:       "Reservation created successfully",
		ReservationID: created.Code,
	}, nil
}

func (s *reservationService) sendNotice(requestID string, r entity.Reservation) {
	if s.mailer == nil || s.notifyTo == "" {
		return
	}

	if err := s.mailer.SendReservationNotice(s.notifyTo, r); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"reservation_id": r.Code,
			"error":          err.Error(),
		}).Warn("Failed to send reservation notice")
	}
}

func (s *reservationService) ListReservations(c context.Context) ([]entity.Reservation, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Reservations.List(c)
}

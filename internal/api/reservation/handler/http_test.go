package reservationHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"SonicSavor/internal/api/reservation"
	"SonicSavor/internal/entity"
	"SonicSavor/internal/middleware"
	"SonicSavor/pkg/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	got []reservation.CreateReservationRequest
}

func (f *fakeService) CreateReservation(_ context.Context, req reservation.CreateReservationRequest) (reservation.CreateReservationResponse, error) {
	f.got = append(f.got, req)
	return reservation.CreateReservationResponse{Message: "Reservation created successfully", ReservationID: "RES-20261018-0001"}, nil
}

func (f *fakeService) ListReservations(context.Context) ([]entity.Reservation, error) {
	return nil, nil
}

func newTestApp(svc *fakeService) *fiber.App {
	logger := log.NewDiscardLogger()
	mw := middleware.New(logger, nil)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, svc, validator.New(), mw).Start(app.Group("/api/v1"))
	return app
}

func TestCreateReservation(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservation?customer_name=Sam&time_slot=7%20pm&people=4", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]string
	require.NoError(t, jsoniter.Unmarshal(raw, &body))
	assert.Equal(t, "RES-20261018-0001", body["reservation_id"])

	require.Len(t, svc.got, 1)
	assert.Equal(t, "7 pm", svc.got[0].TimeSlot)
	assert.Equal(t, 4, svc.got[0].People)
}

func TestCreateReservation_MissingPeople(t *testing.T) {
	app := newTestApp(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservation?customer_name=Sam&time_slot=7pm", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListReservations_Unauthorized(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/avikhr/SalonBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{ID: 15, Status: "pending"}}

	rec := doRequest(t, uc, `{"serviceId": 2, "date": "2026-09-01", "time": "10:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createBooking.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(15), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	// Уведомления включены по умолчанию
	require.NotNil(t, uc.req)
	assert.True(t, uc.req.TelegramNotification)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}

	rec := doRequest(t, uc, `{"serviceId": 2, "date": "2026-09-01", "time": "10:00"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"serviceId": 2, "date": "01.09.2026", "time": "10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrServiceNotFound}

	rec := doRequest(t, uc, `{"serviceId": 99, "date": "2026-09-01", "time": "10:00"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_DisabledNotifications(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{ID: 1}}

	rec := doRequest(t, uc, `{"serviceId": 2, "date": "2026-09-01", "time": "10:00", "telegramNotification": false}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.req)
	assert.False(t, uc.req.TelegramNotification)
}

package parking_spaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spacesService "github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f fakeService) Create(_ context.Context, req *models.CreateSpaceRequest) (*domain.ParkingSpace, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ParkingSpace{ID: 1, Number: req.Number, TypeID: req.TypeID}, nil
}

func (f fakeService) GetByID(_ context.Context, id int64) (*domain.ParkingSpace, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ParkingSpace{ID: id, Number: "A-1", TypeID: 1}, nil
}

func (f fakeService) List(context.Context) ([]*domain.ParkingSpace, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.ParkingSpace{{ID: 1, Number: "A-1", TypeID: 1}}, nil
}

func (f fakeService) Update(context.Context, int64, *models.UpdateSpaceRequest) error {
	return f.err
}

func (f fakeService) Delete(context.Context, int64) error {
	return f.err
}

func serve(svc SpaceService, method, path, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/parking-spaces", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/parking-spaces", h.List).Methods(http.MethodGet)
	r.HandleFunc("/parking-spaces/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/parking-spaces/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/parking-spaces/{id}", h.Delete).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestList(t *testing.T) {
	rec := serve(fakeService{}, http.MethodGet, "/parking-spaces", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []SpaceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "A-1", body[0].Number)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "number taken", err: spacesService.ErrNumberTaken, method: http.MethodPost, path: "/parking-spaces", body: `{"number":"A-1","type_id":1}`, wantStatus: http.StatusConflict},
		{name: "unknown type", err: spacesService.ErrUnknownType, method: http.MethodPost, path: "/parking-spaces", body: `{"number":"A-1","type_id":9}`, wantStatus: http.StatusNotFound},
		{name: "in use", err: spacesService.ErrSpaceInUse, method: http.MethodDelete, path: "/parking-spaces/1", wantStatus: http.StatusConflict},
		{name: "not found", err: spacesService.ErrSpaceNotFound, method: http.MethodPut, path: "/parking-spaces/1", body: `{"number":"B"}`, wantStatus: http.StatusNotFound},
		{name: "invalid", err: spacesService.ErrInvalidInput, method: http.MethodPost, path: "/parking-spaces", body: `{"number":""}`, wantStatus: http.StatusBadRequest},
		{name: "negative id", method: http.MethodGet, path: "/parking-spaces/-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(fakeService{err: tt.err}, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

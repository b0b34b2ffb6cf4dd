package frontdesk_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/infras/otel/mocks"
	frontDeskMocks "hostel/internal/domains/frontdesk/mocks"
	"hostel/internal/domains/frontdesk/model/dto"
	roomMocks "hostel/internal/domains/room/mocks"
	roomModel "hostel/internal/domains/room/model"
	roomDto "hostel/internal/domains/room/model/dto"
	"hostel/internal/handlers/frontdesk"
	"hostel/internal/handlers/room"
	"hostel/shared/failure"
)

type body struct {
	Success bool                 `json:"success"`
	Kind    string               `json:"kind"`
	Error   string               `json:"error"`
	Data    roomDto.RoomResponse `json:"data"`
}

func newRouter(service *frontDeskMocks.MockFrontDesk, rooms *roomMocks.MockRoomService) http.Handler {
	router := chi.NewRouter()

	roomHandler := room.New(rooms, mocks.NewOtel())
	roomHandler.Router(router)

	frontDeskHandler := frontdesk.New(service, mocks.NewOtel())
	frontDeskHandler.Router(router)

	return router
}

func serve(t *testing.T, handler http.Handler, method, path, payload string) (int, body) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(payload))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	var res body
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	return recorder.Code, res
}

func TestHandler_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := frontDeskMocks.NewMockFrontDesk(ctrl)
	router := newRouter(service, roomMocks.NewMockRoomService(ctrl))

	occupied := roomDto.RoomResponse{ID: "r1", Number: "101", Status: string(roomModel.StatusOccupied), Occupants: 1}
	free := roomDto.RoomResponse{ID: "r1", Number: "101", Status: string(roomModel.StatusFree)}

	tests := []struct {
		name       string
		method     string
		path       string
		payload    string
		setupMock  func()
		wantCode   int
		wantKind   string
		wantStatus string
	}{
		{
			name:    "check in",
			method:  http.MethodPost,
			path:    "/rooms/r1/check-in",
			payload: `{"guest1":{"name":"Ana"},"company":"ACME"}`,
			setupMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "r1", dto.CheckInRequest{Guest1: dto.GuestRequest{Name: "Ana"}, Company: "ACME"}).
					Return(occupied, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: string(roomModel.StatusOccupied),
		},
		{
			name:      "check in without guest name",
			method:    http.MethodPost,
			path:      "/rooms/r1/check-in",
			payload:   `{"guest1":{}}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantKind:  string(failure.KindValidation),
		},
		{
			name:    "check in into occupied room",
			method:  http.MethodPost,
			path:    "/rooms/r1/check-in",
			payload: `{"guest1":{"name":"Ana"}}`,
			setupMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "r1", gomock.Any()).
					Return(roomDto.RoomResponse{}, failure.Conflict("room is not free"))
			},
			wantCode: http.StatusConflict,
			wantKind: string(failure.KindStateConflict),
		},
		{
			name:    "second guest requires checkin date",
			method:  http.MethodPost,
			path:    "/rooms/r1/check-in/second-guest",
			payload: `{"name":"Bo"}`,
			setupMock: func() {
			},
			wantCode: http.StatusBadRequest,
			wantKind: string(failure.KindValidation),
		},
		{
			name:   "check out unknown room",
			method: http.MethodPost,
			path:   "/rooms/missing/check-out",
			setupMock: func() {
				service.EXPECT().
					CheckoutRoom(gomock.Any(), "missing").
					Return(roomDto.RoomResponse{}, failure.NotFound("room"))
			},
			wantCode: http.StatusNotFound,
			wantKind: string(failure.KindNotFound),
		},
		{
			name:   "mark clean",
			method: http.MethodPost,
			path:   "/rooms/r1/clean",
			setupMock: func() {
				service.EXPECT().MarkClean(gomock.Any(), "r1").Return(free, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: string(roomModel.StatusFree),
		},
		{
			name:      "status outside the enum",
			method:    http.MethodPatch,
			path:      "/rooms/r1/status",
			payload:   `{"status":"Broken"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantKind:  string(failure.KindValidation),
		},
		{
			name:    "manual status override",
			method:  http.MethodPatch,
			path:    "/rooms/r1/status",
			payload: `{"status":"Free"}`,
			setupMock: func() {
				service.EXPECT().
					UpdateRoomStatus(gomock.Any(), "r1", dto.UpdateStatusRequest{Status: roomModel.StatusFree}).
					Return(free, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: string(roomModel.StatusFree),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			code, res := serve(t, router, tt.method, tt.path, tt.payload)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantKind, res.Kind)

			if tt.wantStatus != "" {
				assert.True(t, res.Success)
				assert.Equal(t, tt.wantStatus, res.Data.Status)
			}
		})
	}
}

func TestHandler_SharesRoomPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roomMocks.NewMockRoomService(ctrl)
	router := newRouter(frontDeskMocks.NewMockFrontDesk(ctrl), rooms)

	rooms.EXPECT().Get(gomock.Any(), "r1").Return(roomDto.RoomResponse{ID: "r1", Number: "101"}, nil)

	code, res := serve(t, router, http.MethodGet, "/rooms/r1", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "101", res.Data.Number)
}

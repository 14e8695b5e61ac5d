package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/mocks"
)

func TestTrackSignal(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantType   domain.SignalType
	}{
		{
			name: "app open",
			payload: map[string]interface{}{
				"type":  "app_open",
				"value": 1,
			},
			wantStatus: http.StatusCreated,
			wantType:   domain.SignalAppOpen,
		},
		{
			name: "late night usage",
			payload: map[string]interface{}{
				"type":  "late_night_usage",
				"value": 1,
			},
			wantStatus: http.StatusCreated,
			wantType:   domain.SignalLateNightUsage,
		},
		{
			name: "response delay carries seconds",
			payload: map[string]interface{}{
				"type":  "response_delay",
				"value": 42.5,
			},
			wantStatus: http.StatusCreated,
			wantType:   domain.SignalResponseDelay,
		},
		{
			name: "missed checkin",
			payload: map[string]interface{}{
				"type":  "missed_checkin",
				"value": 1,
			},
			wantStatus: http.StatusCreated,
			wantType:   domain.SignalMissedCheckin,
		},
		{
			name: "unknown type",
			payload: map[string]interface{}{
				"type":  "doomscrolling",
				"value": 1,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing type",
			payload: map[string]interface{}{
				"value": 1,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative value",
			payload: map[string]interface{}{
				"type":  "response_delay",
				"value": -3,
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signalStore := &mocks.MockSignalStore{}
			handler := NewSignalHandler(signalStore)

			req := postJSON(t, "/api/signals/track", tt.payload)
			recorder := httptest.NewRecorder()
			handler.TrackSignal(recorder, authedRequest(userID, req))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				require.Len(t, signalStore.Events, 1)
				assert.Equal(t, userID, signalStore.Events[0].UserID)
				assert.Equal(t, tt.wantType, signalStore.Events[0].Type)

				var resp TrackSignalResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, string(tt.wantType), resp.Type)
			} else {
				assert.Empty(t, signalStore.Events)
			}
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		handler := NewSignalHandler(&mocks.MockSignalStore{})

		req := postJSON(t, "/api/signals/track", map[string]interface{}{
			"type":  "app_open",
			"value": 1,
		})
		recorder := httptest.NewRecorder()
		handler.TrackSignal(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

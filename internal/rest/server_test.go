package rest_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/moddeck/moddeck/internal/database/types"
	"github.com/moddeck/moddeck/internal/database/types/enum"
	"github.com/moddeck/moddeck/internal/moderation"
	"github.com/moddeck/moddeck/internal/rest"
	restTypes "github.com/moddeck/moddeck/internal/rest/types"
	"github.com/moddeck/moddeck/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-key"

// stubStore is a minimal in-memory sanction store for endpoint tests.
type stubStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*types.SanctionRecord
}

func newStubStore() *stubStore {
	return &stubStore{records: make(map[uuid.UUID]*types.SanctionRecord)}
}

func (s *stubStore) Insert(_ context.Context, record *types.SanctionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.Kind == enum.SanctionKindBan && record.Status == enum.SanctionStatusActive {
		for _, existing := range s.records {
			if existing.Kind == enum.SanctionKindBan &&
				existing.Status == enum.SanctionStatusActive &&
				existing.GuildID == record.GuildID &&
				existing.UserID == record.UserID {
				return types.ErrDuplicateActiveBan
			}
		}
	}

	s.records[record.ID] = record

	return nil
}

func (s *stubStore) Get(_ context.Context, id uuid.UUID) (*types.SanctionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return nil, types.ErrSanctionNotFound
	}

	return record, nil
}

func (s *stubStore) ListActiveByGuild(_ context.Context, guildID string) ([]*types.SanctionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []*types.SanctionRecord

	for _, record := range s.records {
		if record.GuildID == guildID && record.Status == enum.SanctionStatusActive {
			records = append(records, record)
		}
	}

	return records, nil
}

func (s *stubStore) ListByGuildUser(_ context.Context, guildID, userID string) ([]*types.SanctionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []*types.SanctionRecord

	for _, record := range s.records {
		if record.GuildID == guildID && record.UserID == userID {
			records = append(records, record)
		}
	}

	return records, nil
}

func (s *stubStore) Reverse(_ context.Context, original, reversal *types.SanctionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[original.ID]
	if !ok {
		return types.ErrSanctionNotFound
	}

	if stored.Status != enum.SanctionStatusActive {
		return types.ErrSanctionNotActive
	}

	s.records[reversal.ID] = reversal
	stored.Status = enum.SanctionStatusReversed
	stored.RelatedRecordID = &reversal.ID

	return nil
}

// stubGateway always reports successful enforcement.
type stubGateway struct{}

func (stubGateway) Apply(
	_ context.Context, _, _ string, _ enum.SanctionKind, _ moderation.EnforcementParams,
) moderation.EnforcementOutcome {
	return moderation.EnforcementOutcome{Succeeded: true}
}

func (stubGateway) Revoke(_ context.Context, _, _ string, _ enum.SanctionKind) moderation.EnforcementOutcome {
	return moderation.EnforcementOutcome{Succeeded: true}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	engine := moderation.NewEngine(newStubStore(), stubGateway{}, zap.NewNop())

	return rest.NewServer(engine, zap.NewNop(), &config.APIConfig{
		APIKeys: []string{testAPIKey},
	})
}

func doRequest(t *testing.T, server http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, sonic.ConfigDefault.NewEncoder(&reader).Encode(body))
	}

	req := httptest.NewRequest(method, target, &reader)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, sonic.ConfigDefault.NewDecoder(recorder.Body).Decode(&value))

	return value
}

func TestServer_RejectsMissingAPIKey(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/moderation/active?guildId=100", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestServer_RejectsWrongAPIKey(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/moderation/active?guildId=100", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestServer_PunishCreatesRecord(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/punish", restTypes.PunishRequest{
		GuildID:         "100",
		UserID:          "200",
		ModeratorID:     "300",
		Kind:            "timeout",
		Reason:          "spamming",
		DurationSeconds: 600,
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	response := decodeBody[restTypes.SanctionResponse](t, recorder)
	assert.True(t, response.EnforcementSucceeded)
	assert.Equal(t, restTypes.SanctionKindTimeout, response.Record.Kind)
	assert.Equal(t, restTypes.SanctionStatusActive, response.Record.Status)
	require.NotNil(t, response.Record.DurationSeconds)
	assert.Equal(t, int64(600), *response.Record.DurationSeconds)
	require.NotNil(t, response.Record.ExpiresAt)
}

func TestServer_PunishValidationFailure(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/punish", restTypes.PunishRequest{
		GuildID: "100",
		Kind:    "mute",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeBody[restTypes.ValidationErrorResponse](t, recorder)
	assert.NotEmpty(t, response.Errors)
}

func TestServer_PunishUnknownKind(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/punish", restTypes.PunishRequest{
		GuildID:     "100",
		UserID:      "200",
		ModeratorID: "300",
		Kind:        "banish",
		Reason:      "spamming",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeBody[restTypes.ValidationErrorResponse](t, recorder)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "kind", response.Errors[0].Field)
}

func TestServer_PunishDuplicateBan(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	body := restTypes.PunishRequest{
		GuildID:     "100",
		UserID:      "200",
		ModeratorID: "300",
		Kind:        "ban",
		Reason:      "spamming",
	}

	recorder := doRequest(t, server, http.MethodPost, "/moderation/punish", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(t, server, http.MethodPost, "/moderation/punish", body)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestServer_ActiveRequiresGuildID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/moderation/active", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_HistoryRequiresIdentifiers(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/moderation/history?guildId=100", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_ReverseRoundTrip(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/punish", restTypes.PunishRequest{
		GuildID:     "100",
		UserID:      "200",
		ModeratorID: "300",
		Kind:        "ban",
		Reason:      "spamming",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := decodeBody[restTypes.SanctionResponse](t, recorder)

	recorder = doRequest(t, server, http.MethodPost, "/moderation/reverse/"+created.Record.ID, restTypes.ReverseRequest{
		ModeratorID: "301",
		Reason:      "appeal accepted",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	reversed := decodeBody[restTypes.SanctionResponse](t, recorder)
	assert.Equal(t, restTypes.SanctionKindUnBan, reversed.Record.Kind)
	require.NotNil(t, reversed.Record.RelatedRecordID)
	assert.Equal(t, created.Record.ID, *reversed.Record.RelatedRecordID)

	// The original is no longer active once reversed.
	recorder = doRequest(t, server, http.MethodGet, "/moderation/active?guildId=100", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	active := decodeBody[[]restTypes.SanctionRecord](t, recorder)
	assert.Empty(t, active)
}

func TestServer_ReverseRequiresModeratorID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/punish", restTypes.PunishRequest{
		GuildID:     "100",
		UserID:      "200",
		ModeratorID: "300",
		Kind:        "ban",
		Reason:      "spamming",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := decodeBody[restTypes.SanctionResponse](t, recorder)

	recorder = doRequest(t, server, http.MethodPost, "/moderation/reverse/"+created.Record.ID, restTypes.ReverseRequest{
		Reason: "appeal accepted",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeBody[restTypes.ValidationErrorResponse](t, recorder)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "moderatorId", response.Errors[0].Field)
}

func TestServer_ReverseInvalidRecordID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/reverse/not-a-uuid", restTypes.ReverseRequest{
		ModeratorID: "301",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_ReverseUnknownRecord(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/moderation/reverse/"+uuid.NewString(), restTypes.ReverseRequest{
		ModeratorID: "301",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/moddeck/moddeck/internal/moderation"
	"github.com/moddeck/moddeck/internal/rest/convert"
	restTypes "github.com/moddeck/moddeck/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ModerationHandler handles moderation-related REST endpoints.
type ModerationHandler struct {
	engine *moderation.Engine
	logger *zap.Logger
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(engine *moderation.Engine, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		engine: engine,
		logger: logger,
	}
}

// Punish issues a sanction against a user. The 201 response reports the
// enforcement outcome; a failed enforcement call still persists the record.
func (h *ModerationHandler) Punish(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.PunishRequest
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(&body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "malformed request body"})
	}

	// An unknown kind string flows through as an invalid kind so the
	// validator reports it together with any other violations.
	kind, _ := convert.ParseSanctionKind(body.Kind)

	record, err := h.engine.Issue(req.Context(), moderation.SanctionRequest{
		GuildID:         body.GuildID,
		UserID:          body.UserID,
		ModeratorID:     body.ModeratorID,
		Kind:            kind,
		Reason:          body.Reason,
		DurationSeconds: body.DurationSeconds,
	})
	if err != nil {
		return h.writeEngineError(w, err, "Failed to issue sanction")
	}

	return writeJSON(w, http.StatusCreated, restTypes.SanctionResponse{
		EnforcementSucceeded: record.EnforcementSucceeded,
		Record:               convert.SanctionRecord(record),
	})
}

// Active returns the guild's sanctions that are still in effect, with
// expired time-boxed entries already filtered out.
func (h *ModerationHandler) Active(w http.ResponseWriter, req bunrouter.Request) error {
	guildID := req.URL.Query().Get("guildId")
	if guildID == "" {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "guildId is required"})
	}

	records, err := h.engine.ListActive(req.Context(), guildID)
	if err != nil {
		h.logger.Error("Failed to list active sanctions", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, convert.SanctionRecords(records))
}

// History returns the complete audit trail for a user in a guild.
func (h *ModerationHandler) History(w http.ResponseWriter, req bunrouter.Request) error {
	guildID := req.URL.Query().Get("guildId")
	userID := req.URL.Query().Get("userId")

	if guildID == "" || userID == "" {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "guildId and userId are required"})
	}

	records, err := h.engine.History(req.Context(), guildID, userID)
	if err != nil {
		h.logger.Error("Failed to load sanction history", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, convert.SanctionRecords(records))
}

// Reverse undoes an active sanction, creating a linked reversal record.
func (h *ModerationHandler) Reverse(w http.ResponseWriter, req bunrouter.Request) error {
	recordID, err := uuid.Parse(req.Param("recordId"))
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid record ID"})
	}

	var body restTypes.ReverseRequest
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(&body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "malformed request body"})
	}

	reversal, err := h.engine.Reverse(req.Context(), recordID, body.ModeratorID, body.Reason)
	if err != nil {
		return h.writeEngineError(w, err, "Failed to reverse sanction")
	}

	return writeJSON(w, http.StatusOK, restTypes.SanctionResponse{
		EnforcementSucceeded: reversal.EnforcementSucceeded,
		Record:               convert.SanctionRecord(reversal),
	})
}

// writeEngineError maps engine error kinds to their HTTP equivalents.
func (h *ModerationHandler) writeEngineError(w http.ResponseWriter, err error, logMsg string) error {
	var (
		validationErr   *moderation.ValidationError
		conflictErr     *moderation.ConflictError
		notFoundErr     *moderation.NotFoundError
		invalidStateErr *moderation.InvalidStateError
	)

	switch {
	case errors.As(err, &validationErr):
		fieldErrors := make([]restTypes.FieldError, len(validationErr.Violations))
		for i, v := range validationErr.Violations {
			fieldErrors[i] = restTypes.FieldError{Field: v.Field, Reason: v.Reason}
		}

		return writeJSON(w, http.StatusBadRequest, restTypes.ValidationErrorResponse{Errors: fieldErrors})
	case errors.As(err, &conflictErr):
		return writeJSON(w, http.StatusConflict, restTypes.ErrorResponse{Error: conflictErr.Message})
	case errors.As(err, &notFoundErr):
		return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &invalidStateErr):
		return writeJSON(w, http.StatusConflict, restTypes.ErrorResponse{Error: invalidStateErr.Message})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, value any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return sonic.ConfigDefault.NewEncoder(w).Encode(value)
}

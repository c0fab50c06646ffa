package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"redactsync/internal/core"
	"redactsync/internal/decrypt"
	"redactsync/internal/events"
	"redactsync/internal/http/handler/middleware"
	"redactsync/internal/http/payload"
	"redactsync/internal/token"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	PostConfirmation = "POST /sync/confirmations"
	PostSession      = "POST /sync/session"
	GetSnapshot      = "GET /sync/{chain}/{account}"
	PostDecrypt      = "POST /sync/decrypt"
	GetSearch        = "GET /sync/{chain}/search/{address}"
	PostArbitrary    = "POST /sync/arbitrary"
	DeleteArbitrary  = "DELETE /sync/{chain}/arbitrary/{address}"
)

type SyncHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	sync             SyncService
	notices          NoticeHandler
	permits          PermitStore
}

func NewSyncHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, syncService SyncService, notices NoticeHandler, permits PermitStore) *SyncHandler {
	return &SyncHandler{
		logs:             logger,
		requestValidator: requestValidator,
		sync:             syncService,
		notices:          notices,
		permits:          permits,
	}
}

func (h *SyncHandler) HandleConfirmation(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.ConfirmationRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, msgConfirmationRejected, fmt.Errorf("invalid request payload: %w", err), PostConfirmation, requestId)
		return
	}

	notice, err := req.ToNotice()
	if err != nil {
		h.badRequest(w, msgConfirmationRejected, err, PostConfirmation, requestId)
		return
	}

	if err := h.notices.Handle(r.Context(), notice); err != nil {
		resp := Response{Message: msgConfirmationFailed}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrUnknownKind),
			errors.Is(err, core.ErrMissingToken),
			errors.Is(err, core.ErrMissingHandle),
			errors.Is(err, core.ErrNoSession),
			errors.Is(err, events.ErrUnknownStatus),
			errors.Is(err, events.ErrMissingTxHash):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to apply confirmation",
			"error", err,
			"kind", notice.Kind,
			"tx", notice.TxHash,
			"handler", PostConfirmation,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "ok"}, http.StatusAccepted, requestId)
}

func (h *SyncHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.SessionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, msgSessionRejected, fmt.Errorf("invalid request payload: %w", err), PostSession, requestId)
		return
	}

	session := req.ToSession()
	previous := h.sync.Session()
	if previous.Account != (common.Address{}) && previous.Account != session.Account {
		h.permits.RemovePermit(previous.Account)
	}
	if req.Permit != "" {
		h.permits.SetPermit(session.Account, req.Permit)
	}
	changed := h.sync.SetSession(session)

	h.logs.Infow("session set",
		"chain", session.Chain,
		"account", session.Account.Hex(),
		"changed", changed,
		"handler", PostSession,
		"request_id", requestId)

	h.respond(w, Response{Data: map[string]bool{"changed": changed}}, http.StatusOK, requestId)
}

func (h *SyncHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	params := payload.Params{
		Chain:   r.PathValue("chain"),
		Account: r.PathValue("account"),
	}
	if err := params.Validate(); err != nil {
		h.badRequest(w, msgRequestFailed, fmt.Errorf("validate path parameters: %w", err), GetSnapshot, requestId)
		return
	}

	snapshot := h.sync.Snapshot(params.ChainID(), params.AccountAddress())
	h.respond(w, snapshot, http.StatusOK, requestId)
}

func (h *SyncHandler) HandleDecrypt(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.DecryptRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, msgDecryptRejected, fmt.Errorf("invalid request payload: %w", err), PostDecrypt, requestId)
		return
	}

	handle, valueType, account, err := req.Parse()
	if err != nil {
		h.badRequest(w, msgDecryptRejected, err, PostDecrypt, requestId)
		return
	}

	result, ok := h.sync.RequestDecrypt(r.Context(), handle, valueType, account)
	if !ok {
		h.respond(w, Response{
			Message: msgDecryptRateLimited,
			Error:   "an unseal for this handle was attempted recently",
		}, http.StatusTooManyRequests, requestId)
		return
	}

	httpCode := http.StatusOK
	if result.State == decrypt.StatePending {
		httpCode = http.StatusAccepted
	}
	h.respond(w, result, httpCode, requestId)
}

func (h *SyncHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	params := payload.Params{
		Chain:   r.PathValue("chain"),
		Address: r.PathValue("address"),
		Account: r.URL.Query().Get("account"),
	}
	if err := params.Validate(); err != nil || params.Address == "" {
		h.badRequest(w, msgSearchFailed, fmt.Errorf("validate parameters: %w", errors.Join(err, requiredAddress(params.Address))), GetSearch, requestId)
		return
	}

	found, err := h.sync.SearchArbitrary(r.Context(), params.ChainID(), params.AccountAddress(), params.TokenAddress())
	if err != nil {
		h.searchFailed(w, err, GetSearch, requestId)
		return
	}

	h.respond(w, found, http.StatusOK, requestId)
}

// HandleAddArbitrary searches the token again and stores the result, so
// clients never submit pair metadata themselves.
func (h *SyncHandler) HandleAddArbitrary(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.ArbitraryRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, msgTokenRejected, fmt.Errorf("invalid request payload: %w", err), PostArbitrary, requestId)
		return
	}

	params := payload.Params{Account: req.Account, Address: req.Token}
	found, err := h.sync.SearchArbitrary(r.Context(), req.Chain, params.AccountAddress(), params.TokenAddress())
	if err != nil {
		h.searchFailed(w, err, PostArbitrary, requestId)
		return
	}

	h.sync.AddArbitrary(req.Chain, params.AccountAddress(), found)
	h.logs.Infow("arbitrary token added",
		"chain", req.Chain,
		"token", found.Pair.PublicToken.Address.Hex(),
		"handler", PostArbitrary,
		"request_id", requestId)

	h.respond(w, found, http.StatusCreated, requestId)
}

func (h *SyncHandler) HandleRemoveArbitrary(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	params := payload.Params{
		Chain:   r.PathValue("chain"),
		Address: r.PathValue("address"),
	}
	if err := params.Validate(); err != nil || params.Address == "" {
		h.badRequest(w, msgRequestFailed, fmt.Errorf("validate path parameters: %w", errors.Join(err, requiredAddress(params.Address))), DeleteArbitrary, requestId)
		return
	}

	h.sync.RemoveArbitrary(params.ChainID(), params.TokenAddress())
	h.respond(w, Response{Message: "ok"}, http.StatusOK, requestId)
}

func requiredAddress(address string) error {
	if address == "" {
		return errors.New("address: cannot be blank")
	}
	return nil
}

func (h *SyncHandler) searchFailed(w http.ResponseWriter, err error, handler string, requestId string) {
	resp := Response{Message: msgSearchFailed}
	httpCode := http.StatusBadGateway
	if errors.Is(err, token.ErrNotConnected) {
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	} else {
		resp.Error = "token could not be read from chain"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("failed to search token",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *SyncHandler) badRequest(w http.ResponseWriter, message string, err error, handler string, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *SyncHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/damage"
	"github.com/distrohub/distro-backend-go/internal/handler/http/middleware"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DamageHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	InitiateReplacement(w http.ResponseWriter, r *http.Request)
	CompleteReplacement(w http.ResponseWriter, r *http.Request)
}

type DamageHandlerImpl struct {
	claimService damage.ClaimService
}

func NewDamageHandler(claimService damage.ClaimService) DamageHandler {
	return &DamageHandlerImpl{claimService: claimService}
}

// List implements DamageHandler. An optional ?status= filter narrows the
// result to one claim status.
func (h *DamageHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *damage.ClaimStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := damage.ParseClaimStatus(raw)
		if !ok {
			response.BadRequest(w, "Unknown claim status: "+raw, nil)
			return
		}
		status = &parsed
	}

	claims, err := h.claimService.List(r.Context(), status)
	if err != nil {
		slog.Error("Claim list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, claims)
}

// Get implements DamageHandler.
func (h *DamageHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	claim, err := h.claimService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Claim get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, claim)
}

// Create implements DamageHandler.
func (h *DamageHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq damage.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Claim create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Claim create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	claim, err := h.claimService.Create(r.Context(), createReq, actor.ID)
	if err != nil {
		slog.Error("Claim create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Damage claim created", "claim_id", claim.ID, "claim_number", claim.ClaimNumber)
	response.Created(w, "Damage claim created successfully", claim)
}

// Resolve implements DamageHandler.
func (h *DamageHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var resolveReq damage.ResolveClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&resolveReq); err != nil {
		slog.Error("Claim resolve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	claim, err := h.claimService.Resolve(r.Context(), chi.URLParam(r, "id"), resolveReq, actor)
	if err != nil {
		slog.Error("Claim resolve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Damage claim resolved", "claim_id", claim.ID, "status", claim.Status)
	response.SuccessWithMessage(w, "Damage claim resolved successfully", claim)
}

// InitiateReplacement implements DamageHandler.
func (h *DamageHandlerImpl) InitiateReplacement(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	claim, err := h.claimService.InitiateReplacement(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		slog.Error("Replacement initiate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Replacement initiated", "claim_id", claim.ID)
	response.SuccessWithMessage(w, "Replacement initiated successfully", claim)
}

// CompleteReplacement implements DamageHandler.
func (h *DamageHandlerImpl) CompleteReplacement(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	claim, err := h.claimService.CompleteReplacement(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		slog.Error("Replacement complete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Replacement completed", "claim_id", claim.ID)
	response.SuccessWithMessage(w, "Replacement completed successfully", claim)
}

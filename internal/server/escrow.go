package server

import (
	"net/http"

	"github.com/chumchon-net/chumchon/internal/service"
)

func (s server) createEscrow(w http.ResponseWriter, r *http.Request) {
	var req CreateEscrowRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.CreateEscrow(r.Context(), service.CreateEscrowRequest{
		Initiator:             req.Initiator,
		Counterparty:          req.Counterparty,
		Group:                 req.Group,
		InitiatorTokenAccount: req.InitiatorTokenAccount,
		InitiatorAmount:       req.InitiatorAmount,
		CounterpartyToken:     req.CounterpartyToken,
		CounterpartyAmount:    req.CounterpartyAmount,
		CreatedAt:             req.CreatedAt,
		ExpiresAt:             req.ExpiresAt,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) getEscrow(w http.ResponseWriter, r *http.Request) {
	escrow, err := pathAddress(r, "escrow")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.s.GetEscrow(r.Context(), escrow)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toEscrow(e))
}

func (s server) acceptEscrow(w http.ResponseWriter, r *http.Request) {
	escrow, err := pathAddress(r, "escrow")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req EscrowPartyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.AcceptEscrow(r.Context(), service.AcceptEscrowRequest{
		Escrow:       escrow,
		Counterparty: req.Caller,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) completeEscrow(w http.ResponseWriter, r *http.Request) {
	escrow, err := pathAddress(r, "escrow")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req EscrowPartyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.CompleteEscrow(r.Context(), service.CompleteEscrowRequest{
		Escrow:    escrow,
		Initiator: req.Caller,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

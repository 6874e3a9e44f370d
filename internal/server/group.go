package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/chumchon-net/chumchon/internal/service"
)

func (s server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.CreateGroup(r.Context(), service.CreateGroupRequest{
		Creator:               req.Creator,
		Name:                  req.Name,
		Description:           req.Description,
		IsChannel:             req.IsChannel,
		IsWhaleGroup:          req.IsWhaleGroup,
		RequiredToken:         req.RequiredToken,
		RequiredAmount:        req.RequiredAmount,
		RequiredNFTCollection: req.RequiredNFTCollection,
		RequiredSolBalance:    req.RequiredSolBalance,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) getGroup(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := s.s.GetGroup(r.Context(), group)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toGroup(g))
}

func (s server) listGroupMembers(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.ListGroupMembers(r.Context(), group)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Member, len(list))
	for i, v := range list {
		out[i] = toMember(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) joinGroup(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req JoinGroupRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.JoinGroup(r.Context(), service.JoinGroupRequest{
		Group:        group,
		Member:       req.Member,
		TokenAccount: req.TokenAccount,
		NFTAccount:   req.NFTAccount,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) listGroupInvites(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.ListGroupInvites(r.Context(), group)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	now := s.now().Unix()
	out := make([]Invite, len(list))
	for i, v := range list {
		out[i] = toInvite(v, now)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createInvite(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateInviteRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.CreateInvite(r.Context(), service.CreateInviteRequest{
		Group:     group,
		Creator:   req.Creator,
		Code:      req.Code,
		MaxUses:   req.MaxUses,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) useInvite(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req MemberRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.UseInvite(r.Context(), service.UseInviteRequest{
		Group:  group,
		Code:   chi.URLParam(r, "code"),
		Member: req.Member,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) getInvite(w http.ResponseWriter, r *http.Request) {
	invite, err := pathAddress(r, "invite")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	i, err := s.s.GetInvite(r.Context(), invite)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toInvite(i, s.now().Unix()))
}

func (s server) listGroupMessages(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.ListGroupMessages(r.Context(), group)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Message, len(list))
	for i, v := range list {
		out[i] = toMessage(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	group, err := pathAddress(r, "group")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req SendMessageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.SendMessage(r.Context(), service.SendMessageRequest{
		Group:   group,
		Sender:  req.Sender,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) getMessage(w http.ResponseWriter, r *http.Request) {
	message, err := pathAddress(r, "message")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.s.GetMessage(r.Context(), message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toMessage(m))
}

func (s server) tipMessage(w http.ResponseWriter, r *http.Request) {
	message, err := pathAddress(r, "message")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req TipRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.TipMessage(r.Context(), service.TipMessageRequest{
		Message:   message,
		Tipper:    req.Tipper,
		Recipient: req.Recipient,
		Amount:    req.Amount,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package server

import (
	"net/http"

	"github.com/chumchon-net/chumchon/internal/service"
)

func (s server) createUserProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.CreateUserProfile(r.Context(), service.CreateUserProfileRequest{
		Owner:       req.Owner,
		Username:    req.Username,
		Bio:         req.Bio,
		ShowBalance: req.ShowBalance,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) getUserProfile(w http.ResponseWriter, r *http.Request) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.GetUserProfile(r.Context(), owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toProfile(p))
}

func (s server) updateUserProfile(w http.ResponseWriter, r *http.Request) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.UpdateUserProfile(r.Context(), service.UpdateUserProfileRequest{
		Owner:             owner,
		Username:          req.Username,
		Bio:               req.Bio,
		ProfilePictureURL: req.ProfilePictureURL,
		ShowBalance:       req.ShowBalance,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) completeTutorial(w http.ResponseWriter, r *http.Request) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req TutorialRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.CompleteTutorial(r.Context(), service.CompleteTutorialRequest{
		Owner:      owner,
		TutorialID: req.TutorialID,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) setProfileNFT(w http.ResponseWriter, r *http.Request) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ProfileNFTRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.SetProfileNFT(r.Context(), service.SetProfileNFTRequest{
		Owner:        owner,
		Mint:         req.Mint,
		TokenAccount: req.TokenAccount,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

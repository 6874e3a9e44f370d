package server

import (
	"net/http"

	"github.com/chumchon-net/chumchon/internal/service"
)

func (s server) createMemeChallenge(w http.ResponseWriter, r *http.Request) {
	var req CreateChallengeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.CreateMemeChallenge(r.Context(), service.CreateMemeChallengeRequest{
		Creator:      req.Creator,
		Title:        req.Title,
		Description:  req.Description,
		Prompt:       req.Prompt,
		RewardAmount: req.RewardAmount,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) getMemeChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, err := pathAddress(r, "challenge")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.GetMemeChallenge(r.Context(), challenge)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toChallenge(c, s.now().Unix()))
}

// listSubmissions returns standings of the challenge, most voted first.
func (s server) listSubmissions(w http.ResponseWriter, r *http.Request) {
	challenge, err := pathAddress(r, "challenge")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.ListSubmissions(r.Context(), challenge)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Submission, len(list))
	for i, v := range list {
		out[i] = toSubmission(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) submitMeme(w http.ResponseWriter, r *http.Request) {
	challenge, err := pathAddress(r, "challenge")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req SubmitMemeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.SubmitMeme(r.Context(), service.SubmitMemeRequest{
		Challenge:   challenge,
		Submitter:   req.Submitter,
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) voteForMeme(w http.ResponseWriter, r *http.Request) {
	submission, err := pathAddress(r, "submission")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req VoteRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := s.s.VoteForMeme(r.Context(), service.VoteForMemeRequest{
		Submission: submission,
		Voter:      req.Voter,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, CreatedResponse{Address: addr})
}

func (s server) endMemeChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, err := pathAddress(r, "challenge")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req EndChallengeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.EndMemeChallenge(r.Context(), service.EndMemeChallengeRequest{
		Challenge: challenge,
		Creator:   req.Creator,
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

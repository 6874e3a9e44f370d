package server

import "net/http"

func (s server) getBalance(w http.ResponseWriter, r *http.Request) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := s.s.GetBalance(r.Context(), owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, BalanceResponse{Owner: owner, Lamports: b})
}

func (s server) getTokenAccount(w http.ResponseWriter, r *http.Request) {
	account, err := pathAddress(r, "account")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.s.GetTokenAccount(r.Context(), account)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toTokenAccount(account, a))
}

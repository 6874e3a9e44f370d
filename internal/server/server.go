// Package server Chumchon
//
// The Chumchon is a service which keeps social records (profiles, groups, invites,
// messages, escrows and meme challenges) and applies signed transitions to them.
//
//     BasePath: /v1
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/chumchon-net/chumchon/internal/middleware"
	"github.com/chumchon-net/chumchon/internal/service"
)

const maxBodySize = 8 * 1024

const standingsTTL = 5 * time.Second

const signatureWindow = 5 * time.Minute

type server struct {
	s   service.Service
	now func() time.Time
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		mm.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
		mm.Authenticate(signatureWindow),
	)

	srv := server{
		s:   s,
		now: time.Now,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/profiles", srv.createUserProfile)
		r.Get("/profiles/{owner}", srv.getUserProfile)
		r.Put("/profiles/{owner}", srv.updateUserProfile)
		r.Post("/profiles/{owner}/tutorials", srv.completeTutorial)
		r.Put("/profiles/{owner}/nft", srv.setProfileNFT)

		r.Post("/groups", srv.createGroup)
		r.Get("/groups/{group}", srv.getGroup)
		r.Get("/groups/{group}/members", srv.listGroupMembers)
		r.Post("/groups/{group}/members", srv.joinGroup)
		r.Get("/groups/{group}/invites", srv.listGroupInvites)
		r.Post("/groups/{group}/invites", srv.createInvite)
		r.Post("/groups/{group}/invites/{code}/use", srv.useInvite)
		r.Get("/groups/{group}/messages", srv.listGroupMessages)
		r.Post("/groups/{group}/messages", srv.sendMessage)
		r.Get("/invites/{invite}", srv.getInvite)
		r.Get("/messages/{message}", srv.getMessage)
		r.Post("/messages/{message}/tips", srv.tipMessage)

		r.Post("/escrows", srv.createEscrow)
		r.Get("/escrows/{escrow}", srv.getEscrow)
		r.Post("/escrows/{escrow}/accept", srv.acceptEscrow)
		r.Post("/escrows/{escrow}/complete", srv.completeEscrow)

		r.Post("/challenges", srv.createMemeChallenge)
		r.Get("/challenges/{challenge}", srv.getMemeChallenge)
		r.Get("/challenges/{challenge}/submissions", mm.Cached(standingsTTL, srv.listSubmissions))
		r.Post("/challenges/{challenge}/submissions", srv.submitMeme)
		r.Post("/challenges/{challenge}/end", srv.endMemeChallenge)
		r.Post("/submissions/{submission}/votes", srv.voteForMeme)

		r.Get("/accounts/{owner}/balance", srv.getBalance)
		r.Get("/token-accounts/{account}", srv.getTokenAccount)
	})
}

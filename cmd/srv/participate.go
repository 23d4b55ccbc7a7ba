package main

import (
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) getBalance(cctx *cli.Context) error {
	s.loadChain()
	resp, session, err := s.walletDomain.GetBalance(s.ctx, wallet.Session{}, &model.GetBalanceRequest{})
	if err != nil {
		return err
	}
	defer s.signOut(session)

	return printJSON(cctx, resp)
}

func (s *srv) joinGame(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return cli.Exit("expected exactly one game address", 1)
	}

	s.loadChain()
	resp, session, err := s.gameDomain.Join(s.ctx, wallet.Session{}, &model.JoinGameRequest{
		ID: cctx.Args().First(),
	})
	defer s.signOut(session)
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}

func (s *srv) endorseGame(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return cli.Exit("expected exactly one game address", 1)
	}

	s.loadChain()
	resp, session, err := s.gameDomain.Endorse(s.ctx, wallet.Session{}, &model.EndorseGameRequest{
		ID: cctx.Args().First(),
	})
	defer s.signOut(session)
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}

// signOut locks the keystore account again when the command is done.
func (s *srv) signOut(session wallet.Session) {
	if !session.Authorized {
		return
	}

	if _, err := s.walletDomain.SignOut(s.ctx, session); err != nil {
		xcontext.Logger(s.ctx).Warnf("Cannot sign out: %v", err)
	}
}

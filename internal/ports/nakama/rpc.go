package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"coup/internal/app"
	"coup/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

type createSessionResponse struct {
	Code string `json:"code"`
}

type sessionRequest struct {
	Code string `json:"code"`
}

type declareActionRequest struct {
	Code      string            `json:"code"`
	Action    domain.ActionType `json:"action"`
	TargetUid string            `json:"target_uid,omitempty"`
}

type challengeRequest struct {
	Code           string `json:"code"`
	BlockChallenge bool   `json:"block_challenge"`
}

type blockRequest struct {
	Code string      `json:"code"`
	Role domain.Role `json:"role"`
}

type revealCardRequest struct {
	Code      string `json:"code"`
	CardIndex int    `json:"card_index"`
}

type exchangeCardsRequest struct {
	Code        string `json:"code"`
	KeptIndices []int  `json:"kept_indices"`
}

// RegisterRPCs binds the session engine's operations to Nakama RPC ids.
func RegisterRPCs(initializer runtime.Initializer, svc *app.Service) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcCreateSession: rpcCreateSession(svc),
		RpcJoinSession:   rpcJoinSession(svc),
		RpcStartSession:  rpcStartSession(svc),
		RpcDeclareAction: rpcDeclareAction(svc),
		RpcChallenge:     rpcChallenge(svc),
		RpcBlock:         rpcBlock(svc),
		RpcRevealCard:    rpcRevealCard(svc),
		RpcExchangeCards: rpcExchangeCards(svc),
		RpcSessionState:  rpcSessionState(svc),
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

// callerFromContext resolves the authenticated caller. Server-to-server RPC
// invocations carry no user and are rejected.
func callerFromContext(ctx context.Context) (uid, username string, err error) {
	uid, _ = ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if uid == "" {
		return "", "", runtime.NewError("rpc requires an authenticated user", app.CodePermissionDenied)
	}
	username, _ = ctx.Value(runtime.RUNTIME_CTX_USERNAME).(string)
	if username == "" {
		username = uid
	}
	return uid, username, nil
}

func unmarshalPayload(payload string, dst any) error {
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return runtime.NewError("invalid request payload", app.CodeInvalidArgument)
	}
	return nil
}

// subscribeToSession puts the caller's socket on the session's event stream.
func subscribeToSession(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, code, uid string) {
	sessionID, _ := ctx.Value(runtime.RUNTIME_CTX_SESSION_ID).(string)
	if sessionID == "" {
		return
	}
	if _, err := nk.StreamUserJoin(StreamModeSession, code, "", StreamLabelGame, uid, sessionID, false, false, ""); err != nil {
		logger.Warn("failed to subscribe user %s to session %s stream: %v", uid, code, err)
	}
}

func rpcCreateSession(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, username, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		sess, err := svc.CreateSession(ctx, uid, username)
		if err != nil {
			return "", toRuntimeError(err)
		}
		subscribeToSession(ctx, logger, nk, sess.Code, uid)
		resp, _ := json.Marshal(createSessionResponse{Code: sess.Code})
		return string(resp), nil
	}
}

func rpcJoinSession(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, username, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req sessionRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.JoinSession(ctx, req.Code, uid, username); err != nil {
			return "", toRuntimeError(err)
		}
		subscribeToSession(ctx, logger, nk, req.Code, uid)
		return sessionViewResponse(ctx, svc, req.Code, uid)
	}
}

func rpcStartSession(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req sessionRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.StartSession(ctx, req.Code, uid); err != nil {
			return "", toRuntimeError(err)
		}
		return "{}", nil
	}
}

func rpcDeclareAction(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req declareActionRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.DeclareAction(ctx, req.Code, uid, req.Action, req.TargetUid); err != nil {
			return "", toRuntimeError(err)
		}
		return "{}", nil
	}
}

func rpcChallenge(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req challengeRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.Challenge(ctx, req.Code, uid, req.BlockChallenge); err != nil {
			return "", toRuntimeError(err)
		}
		return "{}", nil
	}
}

func rpcBlock(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req blockRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.Block(ctx, req.Code, uid, req.Role); err != nil {
			return "", toRuntimeError(err)
		}
		return "{}", nil
	}
}

func rpcRevealCard(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req revealCardRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.RevealCard(ctx, req.Code, uid, req.CardIndex); err != nil {
			return "", toRuntimeError(err)
		}
		return "{}", nil
	}
}

func rpcExchangeCards(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req exchangeCardsRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		if err := svc.ExchangeCards(ctx, req.Code, uid, req.KeptIndices); err != nil {
			return "", toRuntimeError(err)
		}
		return "{}", nil
	}
}

func rpcSessionState(svc *app.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		uid, _, err := callerFromContext(ctx)
		if err != nil {
			return "", err
		}
		var req sessionRequest
		if err := unmarshalPayload(payload, &req); err != nil {
			return "", err
		}
		return sessionViewResponse(ctx, svc, req.Code, uid)
	}
}

func sessionViewResponse(ctx context.Context, svc *app.Service, code, viewerUid string) (string, error) {
	sess, err := svc.SessionState(ctx, code)
	if err != nil {
		return "", toRuntimeError(err)
	}
	resp, err := json.Marshal(NewSessionView(sess, viewerUid))
	if err != nil {
		return "", toRuntimeError(err)
	}
	return string(resp), nil
}

package app

// Suggested status codes for validation failures, following gRPC numbering so
// the transport adapter can pass them straight through.
const (
	CodeInvalidArgument    = 3
	CodeNotFound           = 5
	CodePermissionDenied   = 7
	CodeFailedPrecondition = 9
	CodeConflict           = 10
	CodeInternal           = 13
)

// Reason is a closed set of validation failure causes.
type Reason string

const (
	ReasonNotYourTurn          Reason = "not_your_turn"
	ReasonPlayerEliminated     Reason = "player_eliminated"
	ReasonActionPending        Reason = "action_pending"
	ReasonInsufficientCoins    Reason = "insufficient_coins"
	ReasonMustCoup             Reason = "must_coup"
	ReasonInvalidTarget        Reason = "invalid_target"
	ReasonTargetEliminated     Reason = "target_eliminated"
	ReasonTargetHasNoCoins     Reason = "target_has_no_coins"
	ReasonNoPendingAction      Reason = "no_pending_action"
	ReasonNotChallengeable     Reason = "action_not_challengeable"
	ReasonNotBlockable         Reason = "action_not_blockable"
	ReasonWindowClosed         Reason = "window_closed"
	ReasonNotActor             Reason = "cannot_act_on_own_action"
	ReasonWrongPhase           Reason = "wrong_phase"
	ReasonInvalidBlockingRole  Reason = "invalid_blocking_role"
	ReasonUnknownAction        Reason = "unknown_action"
	ReasonUnknownPlayer        Reason = "unknown_player"
	ReasonNotYourDecision      Reason = "not_your_decision"
	ReasonInvalidCardIndex     Reason = "invalid_card_index"
	ReasonCardAlreadyRevealed  Reason = "card_already_revealed"
	ReasonWrongChoiceCount     Reason = "wrong_choice_count"
	ReasonDuplicateChoice      Reason = "duplicate_choice"
	ReasonSessionNotFound      Reason = "session_not_found"
	ReasonSessionNotInProgress Reason = "session_not_in_progress"
	ReasonSessionNotWaiting    Reason = "session_not_waiting"
	ReasonSessionFull          Reason = "session_full"
	ReasonAlreadyJoined        Reason = "already_joined"
	ReasonNotHost              Reason = "not_host"
	ReasonTooFewPlayers        Reason = "too_few_players"
)

// Error is a typed validation failure. Validators are side-effect free, so a
// returned Error means the session was not mutated and the caller may retry.
type Error struct {
	Reason  Reason
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(reason Reason, code int, message string) *Error {
	return &Error{Reason: reason, Code: code, Message: message}
}

var (
	ErrNotYourTurn          = newError(ReasonNotYourTurn, CodePermissionDenied, "it is not your turn")
	ErrPlayerEliminated     = newError(ReasonPlayerEliminated, CodePermissionDenied, "you have been eliminated")
	ErrActionPending        = newError(ReasonActionPending, CodeConflict, "another decision is pending resolution")
	ErrInsufficientCoins    = newError(ReasonInsufficientCoins, CodeInvalidArgument, "insufficient coins for this action")
	ErrMustCoup             = newError(ReasonMustCoup, CodeInvalidArgument, "you must coup when you have 10 or more coins")
	ErrInvalidTarget        = newError(ReasonInvalidTarget, CodeInvalidArgument, "invalid target for this action")
	ErrTargetEliminated     = newError(ReasonTargetEliminated, CodeInvalidArgument, "target player has been eliminated")
	ErrTargetHasNoCoins     = newError(ReasonTargetHasNoCoins, CodeInvalidArgument, "target has no coins to steal")
	ErrNoPendingAction      = newError(ReasonNoPendingAction, CodeConflict, "no action to challenge or block")
	ErrNotChallengeable     = newError(ReasonNotChallengeable, CodeInvalidArgument, "this action cannot be challenged")
	ErrNotBlockable         = newError(ReasonNotBlockable, CodeInvalidArgument, "this action cannot be blocked")
	ErrWindowClosed         = newError(ReasonWindowClosed, CodeFailedPrecondition, "decision window has closed")
	ErrNotActor             = newError(ReasonNotActor, CodeInvalidArgument, "you cannot act on your own claim")
	ErrWrongPhase           = newError(ReasonWrongPhase, CodeFailedPrecondition, "not the right phase for that response")
	ErrInvalidBlockingRole  = newError(ReasonInvalidBlockingRole, CodeInvalidArgument, "that role cannot block this action")
	ErrUnknownAction        = newError(ReasonUnknownAction, CodeInvalidArgument, "unknown action type")
	ErrUnknownPlayer        = newError(ReasonUnknownPlayer, CodeNotFound, "player not found in session")
	ErrNotYourDecision      = newError(ReasonNotYourDecision, CodePermissionDenied, "this decision belongs to another player")
	ErrInvalidCardIndex     = newError(ReasonInvalidCardIndex, CodeInvalidArgument, "invalid card index")
	ErrCardAlreadyRevealed  = newError(ReasonCardAlreadyRevealed, CodeInvalidArgument, "card is already revealed")
	ErrWrongChoiceCount     = newError(ReasonWrongChoiceCount, CodeInvalidArgument, "wrong number of cards chosen")
	ErrDuplicateChoice      = newError(ReasonDuplicateChoice, CodeInvalidArgument, "cannot choose the same card twice")
	ErrSessionNotFound      = newError(ReasonSessionNotFound, CodeNotFound, "session not found")
	ErrSessionNotInProgress = newError(ReasonSessionNotInProgress, CodeFailedPrecondition, "session is not in progress")
	ErrSessionNotWaiting    = newError(ReasonSessionNotWaiting, CodeFailedPrecondition, "session has already started")
	ErrSessionFull          = newError(ReasonSessionFull, CodeFailedPrecondition, "session is full")
	ErrAlreadyJoined        = newError(ReasonAlreadyJoined, CodeConflict, "player already joined this session")
	ErrNotHost              = newError(ReasonNotHost, CodePermissionDenied, "only the host can start the session")
	ErrTooFewPlayers        = newError(ReasonTooFewPlayers, CodeFailedPrecondition, "not enough players to start")
)

package domain

// Role identifies one of the five court cards.
type Role string

const (
	RoleDuke       Role = "duke"
	RoleAssassin   Role = "assassin"
	RoleAmbassador Role = "ambassador"
	RoleCaptain    Role = "captain"
	RoleContessa   Role = "contessa"
)

// Roles lists every role in canonical deck order.
var Roles = []Role{RoleDuke, RoleAssassin, RoleAmbassador, RoleCaptain, RoleContessa}

// CopiesPerRole is how many copies of each role the deck holds.
const CopiesPerRole = 3

// DeckSize is the total number of cards in a fresh deck.
const DeckSize = 15

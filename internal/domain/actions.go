package domain

// ActionType identifies one of the seven declarable actions.
type ActionType string

const (
	ActionIncome      ActionType = "income"
	ActionForeignAid  ActionType = "foreign_aid"
	ActionCoup        ActionType = "coup"
	ActionTax         ActionType = "tax"
	ActionAssassinate ActionType = "assassinate"
	ActionSteal       ActionType = "steal"
	ActionExchange    ActionType = "exchange"
)

// ActionConfig describes the static rules attached to an action type.
type ActionConfig struct {
	Challengeable bool
	Blockable     bool
	// ClaimedRole is the role asserted when declaring the action; empty when
	// the action carries no claim.
	ClaimedRole    Role
	BlockingRoles  []Role
	Cost           int
	RequiresTarget bool
	// MinCoins is the balance required to declare the action.
	MinCoins int
}

// MustCoupAt is the coin threshold at which coup becomes the only legal action.
const MustCoupAt = 10

var actionConfigs = map[ActionType]ActionConfig{
	ActionIncome: {},
	ActionForeignAid: {
		Blockable:     true,
		BlockingRoles: []Role{RoleDuke},
	},
	ActionCoup: {
		Cost:           7,
		RequiresTarget: true,
		MinCoins:       7,
	},
	ActionTax: {
		Challengeable: true,
		ClaimedRole:   RoleDuke,
	},
	ActionAssassinate: {
		Challengeable:  true,
		Blockable:      true,
		ClaimedRole:    RoleAssassin,
		BlockingRoles:  []Role{RoleContessa},
		Cost:           3,
		RequiresTarget: true,
		MinCoins:       3,
	},
	ActionSteal: {
		Challengeable:  true,
		Blockable:      true,
		ClaimedRole:    RoleCaptain,
		BlockingRoles:  []Role{RoleCaptain, RoleAmbassador},
		RequiresTarget: true,
	},
	ActionExchange: {
		Challengeable: true,
		ClaimedRole:   RoleAmbassador,
	},
}

// ConfigFor returns the static rules for an action type. The second return is
// false for unknown types.
func ConfigFor(action ActionType) (ActionConfig, bool) {
	cfg, ok := actionConfigs[action]
	return cfg, ok
}

// CanBlock reports whether a claim of the given role blocks the given action.
func CanBlock(action ActionType, role Role) bool {
	cfg, ok := actionConfigs[action]
	if !ok || !cfg.Blockable {
		return false
	}
	for _, r := range cfg.BlockingRoles {
		if r == role {
			return true
		}
	}
	return false
}

package domain

import "testing"

func TestConfigFor(t *testing.T) {
	tests := []struct {
		action        ActionType
		challengeable bool
		blockable     bool
		claimed       Role
		cost          int
		needsTarget   bool
	}{
		{ActionIncome, false, false, "", 0, false},
		{ActionForeignAid, false, true, "", 0, false},
		{ActionCoup, false, false, "", 7, true},
		{ActionTax, true, false, RoleDuke, 0, false},
		{ActionAssassinate, true, true, RoleAssassin, 3, true},
		{ActionSteal, true, true, RoleCaptain, 0, true},
		{ActionExchange, true, false, RoleAmbassador, 0, false},
	}
	for _, tt := range tests {
		cfg, ok := ConfigFor(tt.action)
		if !ok {
			t.Errorf("%s: expected config", tt.action)
			continue
		}
		if cfg.Challengeable != tt.challengeable {
			t.Errorf("%s: challengeable = %v", tt.action, cfg.Challengeable)
		}
		if cfg.Blockable != tt.blockable {
			t.Errorf("%s: blockable = %v", tt.action, cfg.Blockable)
		}
		if cfg.ClaimedRole != tt.claimed {
			t.Errorf("%s: claimed role = %q", tt.action, cfg.ClaimedRole)
		}
		if cfg.Cost != tt.cost {
			t.Errorf("%s: cost = %d", tt.action, cfg.Cost)
		}
		if cfg.RequiresTarget != tt.needsTarget {
			t.Errorf("%s: requires target = %v", tt.action, cfg.RequiresTarget)
		}
	}

	if _, ok := ConfigFor("bribe"); ok {
		t.Error("unknown action should have no config")
	}
}

func TestCanBlock(t *testing.T) {
	tests := []struct {
		action ActionType
		role   Role
		want   bool
	}{
		{ActionForeignAid, RoleDuke, true},
		{ActionForeignAid, RoleCaptain, false},
		{ActionAssassinate, RoleContessa, true},
		{ActionAssassinate, RoleDuke, false},
		{ActionSteal, RoleCaptain, true},
		{ActionSteal, RoleAmbassador, true},
		{ActionSteal, RoleContessa, false},
		{ActionTax, RoleDuke, false},
		{ActionIncome, RoleDuke, false},
	}
	for _, tt := range tests {
		if got := CanBlock(tt.action, tt.role); got != tt.want {
			t.Errorf("CanBlock(%s, %s) = %v, want %v", tt.action, tt.role, got, tt.want)
		}
	}
}

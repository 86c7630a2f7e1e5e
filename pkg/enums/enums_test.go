package enums

import "testing"

func TestParseAssetType(t *testing.T) {
	got, err := ParseAssetType("Carbon credits")
	if err != nil {
		t.Fatalf("parse asset type: %v", err)
	}
	if got != AssetTypeCarbonCredits {
		t.Fatalf("unexpected asset type %q", got)
	}
	if _, err := ParseAssetType("Timeshares"); err == nil {
		t.Fatal("expected error for unknown asset type")
	}
}

func TestParseChainNetwork(t *testing.T) {
	got, err := ParseChainNetwork("Polygon")
	if err != nil {
		t.Fatalf("parse chain network: %v", err)
	}
	if got != ChainNetworkPolygon {
		t.Fatalf("unexpected network %q", got)
	}
	if _, err := ParseChainNetwork("Dogechain"); err == nil {
		t.Fatal("expected error for unknown network")
	}
}

func TestParseProjectRole(t *testing.T) {
	for _, role := range []string{"CREATOR", "LEGAL", "ADMIN_OPS", "AUDITOR"} {
		got, err := ParseProjectRole(role)
		if err != nil {
			t.Fatalf("parse role %s: %v", role, err)
		}
		if !got.IsValid() {
			t.Fatalf("role %s should be valid", role)
		}
	}
	if _, err := ParseProjectRole("owner"); err == nil {
		t.Fatal("expected error for lowercase role")
	}
}

func TestProjectRoleLabels(t *testing.T) {
	if got := ProjectRoleCreator.Label(); got != "Creator (Issuer)" {
		t.Fatalf("unexpected creator label %q", got)
	}
	if got := ProjectRoleAdminOps.Label(); got != "Admin & Ops" {
		t.Fatalf("unexpected ops label %q", got)
	}
}

func TestRevenueModelEnums(t *testing.T) {
	if _, err := ParseRevenueMode("Fixed return"); err != nil {
		t.Fatalf("parse revenue mode: %v", err)
	}
	if _, err := ParseCapitalProfile("Open-ended"); err != nil {
		t.Fatalf("parse capital profile: %v", err)
	}
	if _, err := ParseDistributionPolicy("Reinvest"); err != nil {
		t.Fatalf("parse distribution policy: %v", err)
	}
	if _, err := ParsePayoutFrequency("Event-based"); err != nil {
		t.Fatalf("parse payout frequency: %v", err)
	}
	if _, err := ParsePayoutFrequency("Weekly"); err == nil {
		t.Fatal("expected error for unknown payout frequency")
	}
}

func TestInvitationStatus(t *testing.T) {
	if !InvitationStatusPending.IsValid() || !InvitationStatusAccepted.IsValid() {
		t.Fatal("expected invitation statuses to be valid")
	}
	if InvitationStatus("DECLINED").IsValid() {
		t.Fatal("unexpected valid status")
	}
}

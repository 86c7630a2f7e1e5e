package enums

import "fmt"

// RevenueMode describes how a project generates investor returns.
type RevenueMode string

const (
	RevenueModeFixed    RevenueMode = "Fixed return"
	RevenueModeVariable RevenueMode = "Variable / performance-based return"
	RevenueModeHybrid   RevenueMode = "Hybrid / structured return"
	RevenueModeOther    RevenueMode = "Other"
)

var validRevenueModes = []RevenueMode{
	RevenueModeFixed,
	RevenueModeVariable,
	RevenueModeHybrid,
	RevenueModeOther,
}

// String implements fmt.Stringer.
func (r RevenueMode) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RevenueMode.
func (r RevenueMode) IsValid() bool {
	for _, candidate := range validRevenueModes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRevenueMode converts raw input into a RevenueMode.
func ParseRevenueMode(value string) (RevenueMode, error) {
	for _, candidate := range validRevenueModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid revenue mode %q", value)
}

// CapitalProfile describes the repayment shape of invested capital.
type CapitalProfile string

const (
	CapitalProfileBullet     CapitalProfile = "Bullet"
	CapitalProfileAmortizing CapitalProfile = "Amortizing"
	CapitalProfilePerpetual  CapitalProfile = "Perpetual"
	CapitalProfileOpenEnded  CapitalProfile = "Open-ended"
)

var validCapitalProfiles = []CapitalProfile{
	CapitalProfileBullet,
	CapitalProfileAmortizing,
	CapitalProfilePerpetual,
	CapitalProfileOpenEnded,
}

// String implements fmt.Stringer.
func (c CapitalProfile) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CapitalProfile.
func (c CapitalProfile) IsValid() bool {
	for _, candidate := range validCapitalProfiles {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCapitalProfile converts raw input into a CapitalProfile.
func ParseCapitalProfile(value string) (CapitalProfile, error) {
	for _, candidate := range validCapitalProfiles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid capital profile %q", value)
}

// DistributionPolicy describes what happens to generated revenue.
type DistributionPolicy string

const (
	DistributionPolicyDistribute DistributionPolicy = "Distribute"
	DistributionPolicyReinvest   DistributionPolicy = "Reinvest"
	DistributionPolicyMixed      DistributionPolicy = "Mixed"
)

var validDistributionPolicies = []DistributionPolicy{
	DistributionPolicyDistribute,
	DistributionPolicyReinvest,
	DistributionPolicyMixed,
}

// String implements fmt.Stringer.
func (d DistributionPolicy) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DistributionPolicy.
func (d DistributionPolicy) IsValid() bool {
	for _, candidate := range validDistributionPolicies {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDistributionPolicy converts raw input into a DistributionPolicy.
func ParseDistributionPolicy(value string) (DistributionPolicy, error) {
	for _, candidate := range validDistributionPolicies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid distribution policy %q", value)
}

// PayoutFrequency describes how often distributions occur.
type PayoutFrequency string

const (
	PayoutFrequencyMonthly    PayoutFrequency = "Monthly"
	PayoutFrequencyQuarterly  PayoutFrequency = "Quarterly"
	PayoutFrequencySemiAnnual PayoutFrequency = "Semi-annual"
	PayoutFrequencyAnnual     PayoutFrequency = "Annual"
	PayoutFrequencyEventBased PayoutFrequency = "Event-based"
)

var validPayoutFrequencies = []PayoutFrequency{
	PayoutFrequencyMonthly,
	PayoutFrequencyQuarterly,
	PayoutFrequencySemiAnnual,
	PayoutFrequencyAnnual,
	PayoutFrequencyEventBased,
}

// String implements fmt.Stringer.
func (p PayoutFrequency) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PayoutFrequency.
func (p PayoutFrequency) IsValid() bool {
	for _, candidate := range validPayoutFrequencies {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePayoutFrequency converts raw input into a PayoutFrequency.
func ParsePayoutFrequency(value string) (PayoutFrequency, error) {
	for _, candidate := range validPayoutFrequencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payout frequency %q", value)
}

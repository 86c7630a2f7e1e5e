package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PortalSettings holds the investor-portal publishing state persisted as JSONB.
// Fields are explicit and typed; absent settings fall back to zero values.
type PortalSettings struct {
	Published    bool    `json:"published"`
	Slug         *string `json:"slug,omitempty"`
	HeroTitle    *string `json:"hero_title,omitempty"`
	HeroSubtitle *string `json:"hero_subtitle,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ThemeColor   *string `json:"theme_color,omitempty"`
}

// Value marshals the settings into JSON for Postgres.
func (p PortalSettings) Value() (driver.Value, error) {
	buf, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the settings record.
func (p *PortalSettings) Scan(value interface{}) error {
	if value == nil {
		*p = PortalSettings{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("portal settings: unsupported scan type %T", value)
	}

	var result PortalSettings
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*p = result
	return nil
}

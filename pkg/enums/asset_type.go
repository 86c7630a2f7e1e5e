package enums

import "fmt"

// AssetType classifies the real-world asset backing a project.
type AssetType string

const (
	AssetTypePrivateEquity      AssetType = "Private equity stakes"
	AssetTypeVentureCapital     AssetType = "Venture capital investments"
	AssetTypeDebtInstruments    AssetType = "Debt instruments"
	AssetTypeArtCollectibles    AssetType = "Art & collectibles"
	AssetTypeCommodities        AssetType = "Commodities"
	AssetTypeIntellectualProp   AssetType = "Intellectual property"
	AssetTypeRevenueStreams     AssetType = "Revenue streams"
	AssetTypeInfrastructure     AssetType = "Infrastructure products"
	AssetTypeSportsTeams        AssetType = "Sports teams and clubs"
	AssetTypeCarbonCredits      AssetType = "Carbon credits"
	AssetTypeMusicFilmRights    AssetType = "Music and film rights"
	AssetTypeLuxuryGoods        AssetType = "Luxury goods"
	AssetTypePreciousMetals     AssetType = "Precious metals"
	AssetTypeAgriculturalAssets AssetType = "Agricultural assets"
	AssetTypeGaming             AssetType = "Gaming"
	AssetTypeHealthcare         AssetType = "Healthcare"
	AssetTypeOthers             AssetType = "Others"
)

var validAssetTypes = []AssetType{
	AssetTypePrivateEquity,
	AssetTypeVentureCapital,
	AssetTypeDebtInstruments,
	AssetTypeArtCollectibles,
	AssetTypeCommodities,
	AssetTypeIntellectualProp,
	AssetTypeRevenueStreams,
	AssetTypeInfrastructure,
	AssetTypeSportsTeams,
	AssetTypeCarbonCredits,
	AssetTypeMusicFilmRights,
	AssetTypeLuxuryGoods,
	AssetTypePreciousMetals,
	AssetTypeAgriculturalAssets,
	AssetTypeGaming,
	AssetTypeHealthcare,
	AssetTypeOthers,
}

// String implements fmt.Stringer.
func (a AssetType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AssetType.
func (a AssetType) IsValid() bool {
	for _, candidate := range validAssetTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAssetType converts raw input into an AssetType.
func ParseAssetType(value string) (AssetType, error) {
	for _, candidate := range validAssetTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid asset type %q", value)
}

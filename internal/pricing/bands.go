// Package pricing computes PLUS and PRO service quotes from a bidder's
// assets and the tender's process value, using the band tables of the
// hybrid monetization model. All amounts are Colombian pesos.
package pricing

// AssetBand groups bidders by declared total assets.
type AssetBand string

const (
	AssetBandA0 AssetBand = "A0" // not informed
	AssetBandA1 AssetBand = "A1" // up to $200M
	AssetBandA2 AssetBand = "A2" // $200M - $1,000M
	AssetBandA3 AssetBand = "A3" // above $1,000M
)

// ProcessBand groups tenders by process value.
type ProcessBand string

const (
	ProcessBandV1 ProcessBand = "V1" // up to $50M
	ProcessBandV2 ProcessBand = "V2" // $50M - $200M
	ProcessBandV3 ProcessBand = "V3" // $200M - $800M
	ProcessBandV4 ProcessBand = "V4" // $800M - $2,500M
	ProcessBandV5 ProcessBand = "V5" // above $2,500M
)

// UserType selects social-discount eligibility.
type UserType string

const (
	UserProductor       UserType = "productor"
	UserEconomiaPopular UserType = "economia_popular"
	UserAsociacion      UserType = "asociacion"
	UserRegular         UserType = "regular"
)

// AssetBandFor maps an asset value onto its band. Zero means the bidder
// did not inform assets.
func AssetBandFor(assets int64) AssetBand {
	switch {
	case assets <= 0:
		return AssetBandA0
	case assets < 200_000_000:
		return AssetBandA1
	case assets < 1_000_000_000:
		return AssetBandA2
	default:
		return AssetBandA3
	}
}

// ProcessBandFor maps a process value onto its band.
func ProcessBandFor(processValue int64) ProcessBand {
	switch {
	case processValue < 50_000_000:
		return ProcessBandV1
	case processValue < 200_000_000:
		return ProcessBandV2
	case processValue < 800_000_000:
		return ProcessBandV3
	case processValue < 2_500_000_000:
		return ProcessBandV4
	default:
		return ProcessBandV5
	}
}

var plusMinimumByAssets = map[AssetBand]int64{
	AssetBandA0: 19_900,
	AssetBandA1: 29_900,
	AssetBandA2: 49_900,
	AssetBandA3: 79_900,
}

// plusPercentageByBand holds the per-band percentage; V1 additionally has
// a floor on the percentage-based price.
var plusPercentageByBand = map[ProcessBand]float64{
	ProcessBandV1: 0.0008,
	ProcessBandV2: 0.0006,
	ProcessBandV3: 0.0005,
	ProcessBandV4: 0.0004,
	ProcessBandV5: 0.0003,
}

const plusV1Floor = 19_900

var proMinimumByAssets = map[AssetBand]int64{
	AssetBandA0: 49_900,
	AssetBandA1: 79_900,
	AssetBandA2: 149_900,
	AssetBandA3: 249_900,
}

var proPercentageByBand = map[ProcessBand]float64{
	ProcessBandV1: 0.0018,
	ProcessBandV2: 0.0014,
	ProcessBandV3: 0.0010,
	ProcessBandV4: 0.0008,
	ProcessBandV5: 0.0006,
}

// PRO annex pricing: the first annexes are included, extras are billed per
// file or in packs of ten, whichever is cheaper.
const (
	proIncludedAnnexes  = 10
	proAnnexPrice       = 4_900
	proAnnexPackPrice   = 39_900
	proAnnexPackCount   = 10
	proCeiling          = 1_490_000
	socialDiscountShare = 0.30
)

// eligibleForSocialDiscount reports whether all three social-discount
// criteria hold: a social user type, assets at most band A1 and a process
// value at most band V2.
func eligibleForSocialDiscount(user UserType, assets AssetBand, process ProcessBand) bool {
	switch user {
	case UserProductor, UserEconomiaPopular, UserAsociacion:
	default:
		return false
	}

	if assets != AssetBandA0 && assets != AssetBandA1 {
		return false
	}

	return process == ProcessBandV1 || process == ProcessBandV2
}

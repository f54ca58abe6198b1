package pricing

import "math"

// Quote is a priced offer for one service tier.
type Quote struct {
	Service              string      `json:"service"`
	AssetBand            AssetBand   `json:"asset_band"`
	ProcessBand          ProcessBand `json:"process_band"`
	MinimumByAssets      int64       `json:"minimum_by_assets"`
	PercentageBasedPrice int64       `json:"percentage_based_price"`
	BasePrice            int64       `json:"base_price"`
	AnnexesSurcharge     int64       `json:"annexes_surcharge,omitempty"`
	DiscountApplied      bool        `json:"discount_applied"`
	DiscountAmount       int64       `json:"discount_amount"`
	FinalPrice           int64       `json:"final_price"`
	CeilingExceeded      bool        `json:"ceiling_exceeded,omitempty"`
}

// Plus prices the quick-validation tier:
// max(minimum by assets, percentage of process value).
func Plus(assets, processValue int64, user UserType) Quote {
	assetBand := AssetBandFor(assets)
	processBand := ProcessBandFor(processValue)

	minimum := plusMinimumByAssets[assetBand]
	percentPrice := roundCurrency(float64(processValue) * plusPercentageByBand[processBand])
	if processBand == ProcessBandV1 && percentPrice < plusV1Floor {
		percentPrice = plusV1Floor
	}

	base := minimum
	if percentPrice > base {
		base = percentPrice
	}

	q := Quote{
		Service:              "PLUS",
		AssetBand:            assetBand,
		ProcessBand:          processBand,
		MinimumByAssets:      minimum,
		PercentageBasedPrice: percentPrice,
		BasePrice:            base,
		FinalPrice:           base,
	}
	applySocialDiscount(&q, user)

	return q
}

// Pro prices the complete-analysis tier:
// max(minimum by assets, percentage of process value) plus the annex
// surcharge, capped at the PRO ceiling.
func Pro(assets, processValue int64, numAnnexes int, user UserType) Quote {
	assetBand := AssetBandFor(assets)
	processBand := ProcessBandFor(processValue)

	minimum := proMinimumByAssets[assetBand]
	percentPrice := roundCurrency(float64(processValue) * proPercentageByBand[processBand])

	base := minimum
	if percentPrice > base {
		base = percentPrice
	}

	surcharge := annexSurcharge(numAnnexes)

	price := base + surcharge
	exceeded := price > proCeiling
	if exceeded {
		price = proCeiling
	}

	q := Quote{
		Service:              "PRO",
		AssetBand:            assetBand,
		ProcessBand:          processBand,
		MinimumByAssets:      minimum,
		PercentageBasedPrice: percentPrice,
		BasePrice:            base,
		AnnexesSurcharge:     surcharge,
		FinalPrice:           price,
		CeilingExceeded:      exceeded,
	}
	applySocialDiscount(&q, user)

	return q
}

// annexSurcharge bills annexes beyond the included count, choosing the
// cheaper of per-file billing and ten-packs.
func annexSurcharge(numAnnexes int) int64 {
	if numAnnexes <= proIncludedAnnexes {
		return 0
	}

	extra := int64(numAnnexes - proIncludedAnnexes)

	packs := extra / proAnnexPackCount
	rest := extra % proAnnexPackCount
	packed := packs*proAnnexPackPrice + rest*proAnnexPrice
	individual := extra * proAnnexPrice

	if packed < individual {
		return packed
	}
	return individual
}

func applySocialDiscount(q *Quote, user UserType) {
	if !eligibleForSocialDiscount(user, q.AssetBand, q.ProcessBand) {
		return
	}
	q.DiscountAmount = roundCurrency(float64(q.FinalPrice) * socialDiscountShare)
	q.DiscountApplied = q.DiscountAmount > 0
	q.FinalPrice -= q.DiscountAmount
}

func roundCurrency(v float64) int64 {
	return int64(math.Round(v))
}

package scoring

// KeyProductDurability identifies the product durability indicator.
const KeyProductDurability = "productDurability"

// ProductDurabilityIndicator scores product lifespan combined with
// repairability. The top tier requires both a lifespan strictly above three
// years and a repairable product.
type ProductDurabilityIndicator struct {
	Confidence float64
}

func (i *ProductDurabilityIndicator) Key() string  { return KeyProductDurability }
func (i *ProductDurabilityIndicator) Name() string { return "Product durability" }

func (i *ProductDurabilityIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	lifespan := sub.ProductLifespanYears
	if lifespan == nil || *lifespan == 0 {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	var score float64
	switch {
	case *lifespan > 3 && sub.ProductRepairability:
		score = 10
	case *lifespan >= 1 && *lifespan <= 3:
		score = 6
	case *lifespan < 1 && *lifespan > 0:
		score = 3
	}

	return IndicatorResult{Score: score, Confidence: i.Confidence}
}

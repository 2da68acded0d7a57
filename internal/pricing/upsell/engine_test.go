package upsell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Services: []*domain.Service{
			{ID: "manicure", Name: "Маникюр", DurationMinutes: 60, Price: 1000, IsActive: true},
			{ID: "design", Name: "Дизайн ногтей", DurationMinutes: 20, Price: 500, IsActive: true},
			{ID: "pedicure", Name: "Педикюр", DurationMinutes: 90, Price: 2000, IsActive: true},
			{ID: "spa", Name: "SPA-уход", DurationMinutes: 30, Price: 700, IsActive: true},
		},
		Bundles: []*domain.Bundle{
			{ID: "mani-pedi", Name: "Маникюр + педикюр", ServiceIDs: []string{"manicure", "pedicure"}, DiscountPercent: 10, IsActive: true},
			{ID: "premium", Name: "Премиум", ServiceIDs: []string{"manicure", "spa"}, DiscountPercent: 0, IsActive: true},
			{ID: "archived", Name: "Архивный", ServiceIDs: []string{"manicure", "design"}, DiscountPercent: 50, IsActive: false},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestComputeTotals_BaseOnly(t *testing.T) {
	e := NewEngine(nil)

	got := e.ComputeTotals(Input{BasePrice: 1000, BaseDuration: 60, Catalog: testCatalog()})

	assert.Equal(t, domain.Totals{TotalPrice: 1000, TotalDuration: 60, Discount: 0}, got)
}

func TestComputeTotals_AdditionalServiceAddsPriceAndDuration(t *testing.T) {
	e := NewEngine(nil)
	base := Input{BasePrice: 1000, BaseDuration: 60, Catalog: testCatalog()}
	with := base
	with.Selection = domain.UpsellSelection{AdditionalServiceIDs: []string{"design"}}

	before := e.ComputeTotals(base)
	after := e.ComputeTotals(with)

	assert.Equal(t, before.TotalPrice+500, after.TotalPrice)
	assert.Equal(t, before.TotalDuration+20, after.TotalDuration)
}

func TestComputeTotals_TimeExtension(t *testing.T) {
	e := NewEngine(nil)

	got := e.ComputeTotals(Input{
		BasePrice:    1000,
		BaseDuration: 60,
		Selection:    domain.UpsellSelection{TimeExtension: true},
		Catalog:      testCatalog(),
	})

	assert.Equal(t, domain.Totals{TotalPrice: 900, TotalDuration: 75, Discount: 100}, got)
}

func TestComputeTotals_TimeExtensionDiscountOnRunningTotal(t *testing.T) {
	e := NewEngine(nil)

	got := e.ComputeTotals(Input{
		BasePrice:    1000,
		BaseDuration: 60,
		Selection:    domain.UpsellSelection{TimeExtension: true, AdditionalServiceIDs: []string{"design"}},
		Catalog:      testCatalog(),
	})

	assert.Equal(t, domain.Totals{TotalPrice: 1350, TotalDuration: 95, Discount: 150}, got)
}

func TestComputeTotals_RoundsOnlyAtTheEnd(t *testing.T) {
	e := NewEngine(nil)
	catalog := domain.Catalog{Services: []*domain.Service{{ID: "x", DurationMinutes: 10, Price: 0.4}}}

	// 1000.4 + 0.4 = 1000.8; -10% = 900.72 -> 901, скидка 100.08 -> 100
	got := e.ComputeTotals(Input{
		BasePrice:    1000.4,
		BaseDuration: 60,
		Selection:    domain.UpsellSelection{TimeExtension: true, AdditionalServiceIDs: []string{"x"}},
		Catalog:      catalog,
	})

	assert.Equal(t, 901, got.TotalPrice)
	assert.Equal(t, 100, got.Discount)
}

func TestComputeTotals_BundleReplacesBase(t *testing.T) {
	e := NewEngine(nil)

	got := e.ComputeTotals(Input{
		BasePrice:    1000,
		BaseDuration: 60,
		Selection:    domain.UpsellSelection{SelectedBundleID: strPtr("mani-pedi")},
		Catalog:      testCatalog(),
	})

	// (1000 + 2000) * 0.9
	assert.Equal(t, domain.Totals{TotalPrice: 2700, TotalDuration: 150, Discount: 300}, got)
}

func TestComputeTotals_BundleIgnoresAddOns(t *testing.T) {
	e := NewEngine(nil)
	plain := Input{
		BasePrice:    1000,
		BaseDuration: 60,
		Selection:    domain.UpsellSelection{SelectedBundleID: strPtr("mani-pedi")},
		Catalog:      testCatalog(),
	}
	noisy := plain
	noisy.Selection = domain.UpsellSelection{
		SelectedBundleID:     strPtr("mani-pedi"),
		TimeExtension:        true,
		AdditionalServiceIDs: []string{"design", "spa"},
	}

	assert.Equal(t, e.ComputeTotals(plain), e.ComputeTotals(noisy))
}

func TestComputeTotals_BundleWithoutSavingsReportsZeroDiscount(t *testing.T) {
	e := NewEngine(markupPricer{})

	got := e.ComputeTotals(Input{
		BasePrice: 1000,
		Selection: domain.UpsellSelection{SelectedBundleID: strPtr("premium")},
		Catalog:   testCatalog(),
	})

	assert.Equal(t, 1870, got.TotalPrice)
	assert.Equal(t, 0, got.Discount)
}

func TestComputeTotals_InactiveBundleFallsBackToBase(t *testing.T) {
	e := NewEngine(nil)

	got := e.ComputeTotals(Input{
		BasePrice:    1000,
		BaseDuration: 60,
		Selection:    domain.UpsellSelection{SelectedBundleID: strPtr("archived")},
		Catalog:      testCatalog(),
	})

	assert.Equal(t, domain.Totals{TotalPrice: 1000, TotalDuration: 60}, got)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	e := NewEngine(nil)
	in := Input{
		BasePrice:    1500,
		BaseDuration: 45,
		Selection:    domain.UpsellSelection{TimeExtension: true, AdditionalServiceIDs: []string{"spa", "design"}},
		Catalog:      testCatalog(),
	}
	reordered := in
	reordered.Selection.AdditionalServiceIDs = []string{"design", "spa"}

	first := e.ComputeTotals(in)
	assert.Equal(t, first, e.ComputeTotals(in))
	assert.Equal(t, first, e.ComputeTotals(reordered))
}

func TestComputeTotals_Monotonic(t *testing.T) {
	e := NewEngine(nil)
	base := Input{BasePrice: 1000, BaseDuration: 60, Catalog: testCatalog()}

	full := base
	full.Selection = domain.UpsellSelection{TimeExtension: true, AdditionalServiceIDs: []string{"design", "spa"}}
	noExtension := full
	noExtension.Selection = domain.UpsellSelection{AdditionalServiceIDs: []string{"design", "spa"}}
	lessServices := full
	lessServices.Selection = domain.UpsellSelection{TimeExtension: true, AdditionalServiceIDs: []string{"design"}}

	fullTotals := e.ComputeTotals(full)
	for _, in := range []Input{noExtension, lessServices} {
		got := e.ComputeTotals(in)
		assert.Less(t, got.TotalDuration, fullTotals.TotalDuration)
	}
	assert.Less(t, e.ComputeTotals(lessServices).TotalPrice, fullTotals.TotalPrice)
}

func TestComputeTotals_UnknownServicePanics(t *testing.T) {
	e := NewEngine(nil)

	assert.Panics(t, func() {
		e.ComputeTotals(Input{
			BasePrice: 1000,
			Selection: domain.UpsellSelection{AdditionalServiceIDs: []string{"missing"}},
			Catalog:   testCatalog(),
		})
	})
}

// markupPricer комплекс дороже суммы услуг на 10%
type markupPricer struct{}

func (markupPricer) Price(b *domain.Bundle, c domain.Catalog) float64 {
	return IndividualTotal(b, c) * 1.1
}

func (markupPricer) Duration(b *domain.Bundle, c domain.Catalog) int {
	return DefaultBundlePricer{}.Duration(b, c)
}

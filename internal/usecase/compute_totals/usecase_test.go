package compute_totals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/internal/pricing/upsell"
	"github.com/m04kA/SMC-SalonAdmin/pkg/logger"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

type fakeCatalog struct {
	catalog domain.Catalog
	err     error
}

func (f fakeCatalog) Snapshot(context.Context) (domain.Catalog, error) {
	return f.catalog, f.err
}

type fakeAppointments struct {
	items []*domain.Appointment
	calls int
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.calls++
	out := make([]*domain.Appointment, 0)
	for _, a := range f.items {
		if a.ResourceID == *filter.ResourceID && a.End.After(*filter.From) && a.Start.Before(*filter.To) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fixedPlan domain.PlanTier

func (p fixedPlan) GetPlanWithGracefulDegradation(context.Context, string) domain.PlanTier {
	return domain.PlanTier(p)
}

type recorder struct{ features []string }

func (r *recorder) ObserveFeatureLocked(feature string) {
	r.features = append(r.features, feature)
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Services: []*domain.Service{
			{ID: "haircut", Name: "Стрижка", DurationMinutes: 60, Price: 1800, IsActive: true},
			{ID: "styling", Name: "Укладка", DurationMinutes: 30, Price: 900, IsActive: true},
			{ID: "coloring", Name: "Окрашивание", DurationMinutes: 90, Price: 3500, IsActive: true},
			{ID: "perm", Name: "Химическая завивка", DurationMinutes: 120, Price: 4000, IsActive: false},
		},
		Bundles: []*domain.Bundle{
			{ID: "full", Name: "Полный образ", ServiceIDs: []string{"haircut", "styling"}, DiscountPercent: 10, IsActive: true},
			{ID: "broken", Name: "Битый", ServiceIDs: []string{"haircut", "missing"}, DiscountPercent: 10, IsActive: true},
		},
	}
}

var day = time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

func newUseCase(plan domain.PlanTier, appts *fakeAppointments, rec *recorder) *UseCase {
	if appts == nil {
		appts = &fakeAppointments{}
	}
	if rec == nil {
		rec = &recorder{}
	}
	return NewUseCase(fakeCatalog{catalog: testCatalog()}, appts, fixedPlan(plan), upsell.NewEngine(nil), rec, logger.NewNop())
}

func TestUseCase_Execute_BaseOnly(t *testing.T) {
	resp, err := newUseCase(domain.PlanFree, nil, nil).Execute(context.Background(), &Request{
		UserID:        "u-1",
		BaseServiceID: "haircut",
	})
	require.NoError(t, err)
	assert.Equal(t, 1800, resp.TotalPrice)
	assert.Equal(t, 60, resp.TotalDuration)
	assert.Equal(t, 0, resp.Discount)
	assert.Equal(t, domain.PlanFree, resp.Plan)
	assert.Nil(t, resp.End)
}

func TestUseCase_Execute_AdditionalAndExtension(t *testing.T) {
	resp, err := newUseCase(domain.PlanPro, nil, nil).Execute(context.Background(), &Request{
		UserID:        "u-1",
		BaseServiceID: "haircut",
		Selection: domain.UpsellSelection{
			TimeExtension:        true,
			AdditionalServiceIDs: []string{"styling"},
		},
	})
	require.NoError(t, err)
	// (1800 + 900) * 0.9
	assert.Equal(t, 2430, resp.TotalPrice)
	assert.Equal(t, 105, resp.TotalDuration)
	assert.Equal(t, 270, resp.Discount)
}

func TestUseCase_Execute_Bundle(t *testing.T) {
	resp, err := newUseCase(domain.PlanPremium, nil, nil).Execute(context.Background(), &Request{
		UserID:        "u-1",
		BaseServiceID: "haircut",
		Selection:     domain.UpsellSelection{SelectedBundleID: ptr.Ptr("full")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2430, resp.TotalPrice)
	assert.Equal(t, 90, resp.TotalDuration)
	assert.Equal(t, 270, resp.Discount)
}

func TestUseCase_Execute_FeatureLocked(t *testing.T) {
	tests := []struct {
		name      string
		plan      domain.PlanTier
		selection domain.UpsellSelection
		feature   domain.Feature
	}{
		{
			name:      "bundle on free",
			plan:      domain.PlanFree,
			selection: domain.UpsellSelection{SelectedBundleID: ptr.Ptr("full")},
			feature:   domain.FeatureBundles,
		},
		{
			name:      "extension on basic",
			plan:      domain.PlanBasic,
			selection: domain.UpsellSelection{TimeExtension: true},
			feature:   domain.FeatureTimeExtension,
		},
		{
			name:      "additional on free",
			plan:      domain.PlanFree,
			selection: domain.UpsellSelection{AdditionalServiceIDs: []string{"styling"}},
			feature:   domain.FeatureAdditionalServices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			_, err := newUseCase(tt.plan, nil, rec).Execute(context.Background(), &Request{
				UserID:        "u-1",
				BaseServiceID: "haircut",
				Selection:     tt.selection,
			})
			require.ErrorIs(t, err, ErrFeatureLocked)

			var locked *FeatureLockedError
			require.True(t, errors.As(err, &locked))
			assert.Equal(t, tt.feature, locked.Feature)
			assert.Equal(t, []string{string(tt.feature)}, rec.features)
		})
	}
}

func TestUseCase_Execute_UnknownReferences(t *testing.T) {
	uc := newUseCase(domain.PlanPro, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{BaseServiceID: "nope"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		BaseServiceID: "haircut",
		Selection:     domain.UpsellSelection{AdditionalServiceIDs: []string{"nope"}},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// комплекс со ссылкой на отсутствующую услугу отфильтрован из каталога
	_, err = uc.Execute(context.Background(), &Request{
		BaseServiceID: "haircut",
		Selection:     domain.UpsellSelection{SelectedBundleID: ptr.Ptr("broken")},
	})
	assert.ErrorIs(t, err, ErrBundleNotFound)
}

func TestUseCase_Execute_InactiveServices(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "inactive base", req: &Request{UserID: "u-1", BaseServiceID: "perm"}},
		{name: "inactive additional", req: &Request{
			UserID:        "u-1",
			BaseServiceID: "haircut",
			Selection:     domain.UpsellSelection{AdditionalServiceIDs: []string{"styling", "perm"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newUseCase(domain.PlanPro, nil, nil).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrServiceNotFound)
			assert.Nil(t, resp)
		})
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newUseCase(domain.PlanPro, nil, nil)

	tests := []struct {
		name string
		req  Request
	}{
		{name: "no base service", req: Request{}},
		{
			name: "bundle with extension",
			req: Request{BaseServiceID: "haircut", Selection: domain.UpsellSelection{
				SelectedBundleID: ptr.Ptr("full"), TimeExtension: true,
			}},
		},
		{
			name: "base service as additional",
			req: Request{BaseServiceID: "haircut", Selection: domain.UpsellSelection{
				AdditionalServiceIDs: []string{"haircut"},
			}},
		},
		{
			name: "start without resource",
			req:  Request{BaseServiceID: "haircut", Start: ptr.Ptr(at(10, 0))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ExtensionNeedsFreeSlot(t *testing.T) {
	appts := &fakeAppointments{items: []*domain.Appointment{
		{ID: "self", ResourceID: "m1", Start: at(10, 0), End: at(11, 0), Status: domain.StatusConfirmed},
		{ID: "next", ResourceID: "m1", Start: at(11, 0), End: at(12, 0), Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(domain.PlanPro, appts, nil)

	req := &Request{
		UserID:        "u-1",
		BaseServiceID: "haircut",
		Selection:     domain.UpsellSelection{TimeExtension: true},
		ResourceID:    ptr.Ptr("m1"),
		Start:         ptr.Ptr(at(10, 0)),
		AppointmentID: ptr.Ptr("self"),
	}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrExtensionUnavailable)

	// у соседнего мастера продление доступно
	req.ResourceID = ptr.Ptr("m2")
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.End)
	assert.Equal(t, at(11, 15), *resp.End)
}

func TestUseCase_Execute_CatalogFailure(t *testing.T) {
	uc := NewUseCase(fakeCatalog{err: errors.New("db down")}, &fakeAppointments{}, fixedPlan(domain.PlanPro),
		upsell.NewEngine(nil), nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{BaseServiceID: "haircut"})
	assert.ErrorIs(t, err, ErrInternal)
}

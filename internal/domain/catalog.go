package domain

// Service услуга из каталога салона
type Service struct {
	ID              string
	Name            string
	DurationMinutes int     // > 0
	Price           float64 // >= 0
	IsActive        bool
}

// Bundle комплекс услуг, продаваемый как один апсейл
// Цена и длительность не хранятся, а всегда вычисляются из состава
type Bundle struct {
	ID              string
	Name            string
	ServiceIDs      []string // упорядоченный, непустой
	DiscountPercent float64  // 0..100
	IsActive        bool
}

// Contains проверяет, входит ли услуга в комплекс
func (b *Bundle) Contains(serviceID string) bool {
	for _, id := range b.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Catalog снимок каталога, передаваемый в расчет цены
type Catalog struct {
	Services []*Service
	Bundles  []*Bundle
}

// ServiceByID ищет услугу в снимке
func (c Catalog) ServiceByID(id string) (*Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// BundleByID ищет комплекс в снимке
func (c Catalog) BundleByID(id string) (*Bundle, bool) {
	for _, b := range c.Bundles {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// IsResolvable все услуги комплекса есть в снимке
func (c Catalog) IsResolvable(b *Bundle) bool {
	for _, id := range b.ServiceIDs {
		if _, ok := c.ServiceByID(id); !ok {
			return false
		}
	}
	return len(b.ServiceIDs) > 0
}

package domain

import "errors"

// ErrBundleSelected возвращается при попытке добавить услугу или продление,
// когда уже выбран комплекс
var ErrBundleSelected = errors.New("domain: bundle is selected, add-ons are not allowed")

// UpsellSelection выбор клиента на экране подтверждения записи
// Комплекс взаимоисключающий с продлением и дополнительными услугами
type UpsellSelection struct {
	TimeExtension        bool
	AdditionalServiceIDs []string
	SelectedBundleID     *string
}

// HasBundle выбран ли комплекс
func (s *UpsellSelection) HasBundle() bool {
	return s.SelectedBundleID != nil && *s.SelectedBundleID != ""
}

// SelectBundle выбирает комплекс и сбрасывает продление и доп. услуги
// Повторный выбор того же комплекса снимает выбор
func (s *UpsellSelection) SelectBundle(bundleID string) {
	if s.HasBundle() && *s.SelectedBundleID == bundleID {
		s.SelectedBundleID = nil
		return
	}
	id := bundleID
	s.SelectedBundleID = &id
	s.TimeExtension = false
	s.AdditionalServiceIDs = nil
}

// ToggleTimeExtension включает или выключает продление на 15 минут
func (s *UpsellSelection) ToggleTimeExtension() error {
	if s.HasBundle() {
		return ErrBundleSelected
	}
	s.TimeExtension = !s.TimeExtension
	return nil
}

// ToggleAdditionalService добавляет услугу или убирает её, если она уже выбрана
func (s *UpsellSelection) ToggleAdditionalService(serviceID string) error {
	if s.HasBundle() {
		return ErrBundleSelected
	}
	for i, id := range s.AdditionalServiceIDs {
		if id == serviceID {
			s.AdditionalServiceIDs = append(s.AdditionalServiceIDs[:i:i], s.AdditionalServiceIDs[i+1:]...)
			return nil
		}
	}
	s.AdditionalServiceIDs = append(s.AdditionalServiceIDs, serviceID)
	return nil
}

// IsExclusive проверяет инвариант взаимоисключения
func (s *UpsellSelection) IsExclusive() bool {
	if !s.HasBundle() {
		return true
	}
	return !s.TimeExtension && len(s.AdditionalServiceIDs) == 0
}

// Totals итог для экрана подтверждения
type Totals struct {
	TotalPrice    int // в рублях, округлено
	TotalDuration int // в минутах
	Discount      int // в рублях, округлено, не отрицательная
}

package models

import (
	"appointment-skill/internal/pkg/constvars"
	"fmt"
	"strings"
)

type Profile struct {
	Name         string
	Email        string
	MobileNumber *MobileNumber
}

type MobileNumber struct {
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

func (m *MobileNumber) IsEmpty() bool {
	return m == nil || strings.TrimSpace(m.PhoneNumber) == ""
}

// String renders the number as +<countryCode><phoneNumber>.
func (m *MobileNumber) String() string {
	if m.IsEmpty() {
		return ""
	}
	countryCode := strings.TrimPrefix(strings.TrimSpace(m.CountryCode), "+")
	return fmt.Sprintf(constvars.ProfileMobileNumberFormat, countryCode, strings.TrimSpace(m.PhoneNumber))
}

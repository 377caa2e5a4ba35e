package model

import "time"

const (
	ContactTypeSocietyOffice     = "society-office"
	ContactTypeSecurityDesk      = "security-desk"
	ContactTypeFire              = "fire"
	ContactTypeAmbulance         = "ambulance"
	ContactTypePolice            = "police"
	ContactTypeEmergencyWhatsapp = "emergency-whatsapp"
)

type EmergencyContact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Phone     string    `json:"phone"`
	IsEnabled bool      `json:"is_enabled"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidContactType(t string) bool {
	switch t {
	case ContactTypeSocietyOffice, ContactTypeSecurityDesk, ContactTypeFire,
		ContactTypeAmbulance, ContactTypePolice, ContactTypeEmergencyWhatsapp:
		return true
	}
	return false
}

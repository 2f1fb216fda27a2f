package models

import "fmt"

// SettlementMethod is a mobile payment channel offered at checkout.
type SettlementMethod string

const (
	SettlementBKash  SettlementMethod = "bKash"
	SettlementNagad  SettlementMethod = "Nagad"
	SettlementRocket SettlementMethod = "Rocket"
)

// SettlementMethods returns the supported methods in display order.
func SettlementMethods() []SettlementMethod {
	return []SettlementMethod{SettlementBKash, SettlementNagad, SettlementRocket}
}

// ParseSettlementMethod matches s against the supported methods.
func ParseSettlementMethod(s string) (SettlementMethod, error) {
	for _, m := range SettlementMethods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("settlement method %q is not supported", s)
}

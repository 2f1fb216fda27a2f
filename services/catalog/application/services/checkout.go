package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/graphicoglobal/atelier/services/catalog/domain"
	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
	domainsvcs "github.com/graphicoglobal/atelier/services/catalog/domain/services"
)

// RocketNotice reminds Rocket payers to append the account-type digit.
const RocketNotice = "For Rocket, add 4 at the end"

// Checkout is a prepared messaging deep link for one item.
type Checkout struct {
	Method  models.SettlementMethod
	Price   string // customer-facing label
	Notice  string // empty unless the method needs one
	Message string
	URL     string
}

// CheckoutService composes the order message handed off to the messenger.
type CheckoutService struct {
	phone string
}

// NewCheckoutService returns a CheckoutService addressing phone.
func NewCheckoutService(phone string) *CheckoutService {
	return &CheckoutService{phone: phone}
}

// Compose builds the checkout for item paid with method, priced at now.
func (c *CheckoutService) Compose(item *models.Item, method string, now time.Time) (Checkout, error) {
	m, err := models.ParseSettlementMethod(method)
	if err != nil {
		return Checkout{}, fmt.Errorf("%w: %w", domain.ErrUnknownSettlementMethod, err)
	}
	label := domainsvcs.Resolve(item, now).Label()

	var b strings.Builder
	fmt.Fprintf(&b, "I want to get the [%s] wallpaper.\n", item.Title)
	fmt.Fprintf(&b, "Category: %s\n", item.Category)
	fmt.Fprintf(&b, "Price: %s\n", label)
	fmt.Fprintf(&b, "Payment method: %s", m)

	out := Checkout{Method: m, Price: label}
	if m == models.SettlementRocket {
		out.Notice = RocketNotice
		fmt.Fprintf(&b, "\nNote: %s", RocketNotice)
	}
	out.Message = b.String()
	out.URL = "https://wa.me/" + c.phone + "?text=" + encodeText(out.Message)
	return out, nil
}

// encodeText percent-encodes s for a query value with spaces as %20.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

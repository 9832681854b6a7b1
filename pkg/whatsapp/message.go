package whatsapp

import (
	"fmt"
	"os"
	"strings"
)

func countryCode() string {
	return strings.TrimPrefix(os.Getenv("WHATSAPP_COUNTRY_CODE"), "+")
}

// OrderConfirmation is the text sent to the caller after an order is placed.
func OrderConfirmation(customerName string, orderID int64, items string) string {
	return fmt.Sprintf("Hi %s, we received your order #%d: %s. We'll let you know when it's ready.", customerName, orderID, items)
}

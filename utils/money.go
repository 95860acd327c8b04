package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ReceiptNumber generates a human-quotable receipt id:
// RCP-YYYYMMDD-<8 hex chars>.
func ReceiptNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("RCP-%s-%s", time.Now().Format("20060102"), short)
}

// InvoiceNumber generates a batch invoice id: INV-YYYYMMDD-<8 hex chars>.
func InvoiceNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), short)
}

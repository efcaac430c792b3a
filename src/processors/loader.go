// backend/src/processors/loader.go
package processors

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/username/affiliatereports/backend/src/logger"
	"github.com/username/affiliatereports/backend/src/models"
)

type orderLoaderImpl struct{}

func NewOrderLoader() OrderLoader {
	return &orderLoaderImpl{}
}

// Process removes exact duplicate rows (first occurrence wins) and replaces
// missing, empty or literal "none" affiliate IDs with the Unknown sentinel.
// Duplicate detection runs on the raw rows, before normalization, so two rows
// that differ only in how the affiliate ID is absent both survive.
func (l *orderLoaderImpl) Process(orders []models.Order) []models.Order {
	seen := make(map[string]bool, len(orders))
	cleaned := make([]models.Order, 0, len(orders))

	for _, o := range orders {
		hash := orderRowHash(o)
		if seen[hash] {
			logger.L.Debug("Dropping exact duplicate order row", "orderNumber", o.OrderNumber)
			continue
		}
		seen[hash] = true

		if o.AffiliateID == "" || o.AffiliateID == "none" {
			o.AffiliateID = models.UnknownAffiliateID
		}

		cleaned = append(cleaned, o)
	}

	return cleaned
}

// orderRowHash builds a sha256 identity over every field of the row,
// including passthrough columns, so only field-exact duplicates collide.
func orderRowHash(o models.Order) string {
	keys := make([]string, 0, len(o.Extra))
	for k := range o.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s|%s|%s|%s|%s",
		o.OrderNumber, o.OrderDate.Format("2006-01-02"), o.AffiliateID,
		o.Amount.String(), o.Currency, o.Status)
	for _, k := range keys {
		fmt.Fprintf(&sb, "|%s=%s", k, o.Extra[k])
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

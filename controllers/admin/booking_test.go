package admin

import (
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/models"
)

// dryRunDB opens the postgres dialector without connecting, so tests can
// inspect generated SQL.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(postgres.Open(""), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("failed to open dialector: %v", err)
	}
	return gdb
}

func TestProviderBookingScopesByProvider(t *testing.T) {
	gdb := dryRunDB(t)

	query := gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var booking models.Booking
		return providerBooking(tx, 3, "7", &booking)
	})

	if !strings.Contains(query, "provider_id") {
		t.Fatalf("expected booking lookup to be scoped to the provider, got %q", query)
	}
	if !strings.Contains(query, "3") {
		t.Fatalf("expected the provider id in the query, got %q", query)
	}
}

package workflow

import (
	"strings"

	"merchant-portal.backend/internal/domain/entities"
)

// Registration wizard step names, as reported in validation errors
const (
	StepBusinessInfo  = "business info"
	StepLocationInfo  = "location info"
	StepOwnerInfo     = "owner info"
	StepContactPerson = "contact person"
)

// MissingSteps returns the wizard steps that still lack their required data.
// A record is submittable for review only when this returns an empty slice:
// a named business, at least one location, at least one owner and one contact.
func MissingSteps(agg *entities.MerchantAggregate) []string {
	var missing []string
	if agg.BusinessInfo == nil || strings.TrimSpace(agg.BusinessInfo.BusinessName) == "" {
		missing = append(missing, StepBusinessInfo)
	}
	if len(agg.Locations) == 0 {
		missing = append(missing, StepLocationInfo)
	}
	if len(agg.Owners) == 0 {
		missing = append(missing, StepOwnerInfo)
	}
	if len(agg.Contacts) == 0 {
		missing = append(missing, StepContactPerson)
	}
	return missing
}

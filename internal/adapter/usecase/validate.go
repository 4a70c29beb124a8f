package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"campaign-editor/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateTree checks every payload a save would send, before any backend
// call is made. Identifiers are not known yet and are left empty.
func validateTree(c *domain.Campaign) error {
	if err := validate.Struct(campaignPayload(c)); err != nil {
		return validationError(domain.KindCampaign, c.Name, err)
	}
	for i := range c.AdGroups {
		g := &c.AdGroups[i]
		if err := validate.Struct(adGroupPayload("", g)); err != nil {
			return validationError(domain.KindAdGroup, g.Name, err)
		}
		for j := range g.Creatives {
			cr := &g.Creatives[j]
			if err := validate.Struct(creativePayload("", "", cr)); err != nil {
				return validationError(domain.KindCreative, cr.Name, err)
			}
		}
	}
	return nil
}

func validationError(kind domain.NodeKind, name string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		if fe.Param() != "" {
			reasons = append(reasons, fmt.Sprintf("field '%s' failed rule '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			reasons = append(reasons, fmt.Sprintf("field '%s' failed rule '%s'", fe.Field(), fe.Tag()))
		}
	}
	return &domain.ValidationError{
		Entity: kind,
		Name:   name,
		Fields: fields,
		Reason: strings.Join(reasons, "; "),
	}
}

package usecases

import (
	"time"

	"github.com/resumelift/resumelift/internal/domain/conversion"
	"github.com/resumelift/resumelift/internal/domain/subscription"
)

// ConversionDTO is the public view of one completed conversion.
type ConversionDTO struct {
	SID        string    `json:"sid"`
	TargetRole string    `json:"target_role"`
	ResultText string    `json:"result_text"`
	ResultHTML string    `json:"result_html,omitempty"`
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateConversionResult pairs the new conversion with the entitlement left
// after consuming the unit, so clients can show remaining quota immediately.
type CreateConversionResult struct {
	Conversion  ConversionDTO            `json:"conversion"`
	Entitlement subscription.Entitlement `json:"entitlement"`
}

func toConversionDTO(c *conversion.Conversion, resultHTML string) ConversionDTO {
	return ConversionDTO{
		SID:        c.SID(),
		TargetRole: c.TargetRole(),
		ResultText: c.ResultText(),
		ResultHTML: resultHTML,
		Model:      c.Model(),
		CreatedAt:  c.CreatedAt(),
	}
}

// Package conversion models a single CV rewrite performed for a user.
package conversion

import (
	"fmt"
	"time"

	"github.com/resumelift/resumelift/internal/shared/id"
)

// Conversion is one CV rewrite: the sanitized input, the target role it was
// rewritten for, and the rewritten markdown produced by the AI collaborator.
type Conversion struct {
	id         uint
	sid        string
	userID     uint
	targetRole string
	sourceText string
	resultText string
	model      string
	createdAt  time.Time
}

// NewConversion creates a completed conversion record.
func NewConversion(userID uint, targetRole, sourceText, resultText, model string, now time.Time) (*Conversion, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if targetRole == "" {
		return nil, fmt.Errorf("target role is required")
	}
	if sourceText == "" {
		return nil, fmt.Errorf("source text is required")
	}

	return &Conversion{
		sid:        id.MustGenerateWithPrefix(id.PrefixConversion, id.DefaultLength),
		userID:     userID,
		targetRole: targetRole,
		sourceText: sourceText,
		resultText: resultText,
		model:      model,
		createdAt:  now,
	}, nil
}

// ReconstructConversion rebuilds a conversion from persistence.
func ReconstructConversion(cid uint, sid string, userID uint, targetRole, sourceText, resultText, model string, createdAt time.Time) (*Conversion, error) {
	if cid == 0 {
		return nil, fmt.Errorf("conversion ID cannot be zero")
	}

	return &Conversion{
		id:         cid,
		sid:        sid,
		userID:     userID,
		targetRole: targetRole,
		sourceText: sourceText,
		resultText: resultText,
		model:      model,
		createdAt:  createdAt,
	}, nil
}

func (c *Conversion) ID() uint             { return c.id }
func (c *Conversion) SID() string          { return c.sid }
func (c *Conversion) UserID() uint         { return c.userID }
func (c *Conversion) TargetRole() string   { return c.targetRole }
func (c *Conversion) SourceText() string   { return c.sourceText }
func (c *Conversion) ResultText() string   { return c.resultText }
func (c *Conversion) Model() string        { return c.model }
func (c *Conversion) CreatedAt() time.Time { return c.createdAt }

// GetOwnerID implements authorization.OwnedResource.
func (c *Conversion) GetOwnerID() uint { return c.userID }

// SetID sets the conversion ID (only for persistence layer use)
func (c *Conversion) SetID(newID uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversion ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("conversion ID cannot be zero")
	}
	c.id = newID
	return nil
}

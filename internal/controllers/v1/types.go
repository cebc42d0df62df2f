package v1

import (
	"github.com/fingoal/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

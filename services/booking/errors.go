package booking

import "errors"

var (
	ErrUnknownTreatment = errors.New("unknown treatment")
	ErrSlotNotOffered   = errors.New("slot is not offered for this treatment")
	ErrForbidden        = errors.New("forbidden access")
)

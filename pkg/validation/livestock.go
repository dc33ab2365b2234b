package validation

import "agriai/entities"

type livestockCreate struct {
	Type  *string `json:"type" validate:"required,livestock_type"`
	Count *int    `json:"count" validate:"required,min=0"`
}

// LivestockPatch is a validated partial update; nil members are left unchanged.
type LivestockPatch struct {
	Type  *string `json:"type" validate:"omitnil,livestock_type"`
	Count *int    `json:"count" validate:"omitnil,min=0"`
}

func ParseLivestockCreate(raw []byte, userID string) (*entities.Livestock, error) {
	var in livestockCreate
	if err := decode(raw, &in); err != nil {
		return nil, err
	}
	return &entities.Livestock{
		UserID: userID,
		Type:   entities.LivestockType(*in.Type),
		Count:  *in.Count,
	}, nil
}

func ParseLivestockPatch(raw []byte) (*LivestockPatch, error) {
	var p LivestockPatch
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *LivestockPatch) Empty() bool { return p.Type == nil && p.Count == nil }

func (p *LivestockPatch) Apply(l *entities.Livestock) {
	if p.Type != nil {
		l.Type = entities.LivestockType(*p.Type)
	}
	if p.Count != nil {
		l.Count = *p.Count
	}
}

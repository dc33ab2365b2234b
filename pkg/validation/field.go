package validation

import "agriai/entities"

type fieldCreate struct {
	Name      *string `json:"name" validate:"required,min=1"`
	Latitude  *string `json:"latitude" validate:"required,latitude"`
	Longitude *string `json:"longitude" validate:"required,longitude"`
	Area      *string `json:"area" validate:"required,hectares"`
	CropType  *string `json:"cropType" validate:"required,crop_type"`
}

// FieldPatch is a validated partial update; nil members are left unchanged.
type FieldPatch struct {
	Name      *string `json:"name" validate:"omitnil,min=1"`
	Latitude  *string `json:"latitude" validate:"omitnil,latitude"`
	Longitude *string `json:"longitude" validate:"omitnil,longitude"`
	Area      *string `json:"area" validate:"omitnil,hectares"`
	CropType  *string `json:"cropType" validate:"omitnil,crop_type"`
}

// ParseFieldCreate validates a creation payload and returns the record to
// persist, owned by userID. Any owner in the payload is ignored.
func ParseFieldCreate(raw []byte, userID string) (*entities.Field, error) {
	var in fieldCreate
	if err := decode(raw, &in); err != nil {
		return nil, err
	}
	return &entities.Field{
		UserID:    userID,
		Name:      *in.Name,
		Latitude:  *in.Latitude,
		Longitude: *in.Longitude,
		Area:      *in.Area,
		CropType:  entities.CropType(*in.CropType),
	}, nil
}

// ParseFieldPatch validates only the keys present in raw. An empty object is
// a valid no-op.
func ParseFieldPatch(raw []byte) (*FieldPatch, error) {
	var p FieldPatch
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Empty reports whether the patch changes nothing.
func (p *FieldPatch) Empty() bool {
	return p.Name == nil && p.Latitude == nil && p.Longitude == nil && p.Area == nil && p.CropType == nil
}

// Apply copies the supplied members onto f. Id and owner are never touched.
func (p *FieldPatch) Apply(f *entities.Field) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Latitude != nil {
		f.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		f.Longitude = *p.Longitude
	}
	if p.Area != nil {
		f.Area = *p.Area
	}
	if p.CropType != nil {
		f.CropType = entities.CropType(*p.CropType)
	}
}

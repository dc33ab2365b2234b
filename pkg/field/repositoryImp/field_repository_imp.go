package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agriai/entities"
	"agriai/pkg/apperr"
	"agriai/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) ListByUser(ctx context.Context, uid string) ([]entities.Field, error) {
	out := []entities.Field{}
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fieldRepo) FindByID(ctx context.Context, id, uid string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Update writes the mutable columns of f. Id and owner are only used to
// select the row.
func (r *fieldRepo) Update(ctx context.Context, f *entities.Field) error {
	res := r.db.WithContext(ctx).Model(&entities.Field{}).
		Where("id = ? AND user_id = ?", f.ID, f.UserID).
		Updates(map[string]any{
			"name":      f.Name,
			"latitude":  f.Latitude,
			"longitude": f.Longitude,
			"area":      f.Area,
			"crop_type": f.CropType,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *fieldRepo) Delete(ctx context.Context, id, uid string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Field{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

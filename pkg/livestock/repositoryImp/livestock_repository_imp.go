package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agriai/entities"
	"agriai/pkg/apperr"
	"agriai/pkg/livestock/repository"
)

type livestockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LivestockRepository { return &livestockRepo{db} }

func (r *livestockRepo) ListByUser(ctx context.Context, uid string) ([]entities.Livestock, error) {
	out := []entities.Livestock{}
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *livestockRepo) Create(ctx context.Context, l *entities.Livestock) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *livestockRepo) FindByID(ctx context.Context, id, uid string) (*entities.Livestock, error) {
	var l entities.Livestock
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Update writes type and count; a map keeps a zero count from being skipped.
func (r *livestockRepo) Update(ctx context.Context, l *entities.Livestock) error {
	res := r.db.WithContext(ctx).Model(&entities.Livestock{}).
		Where("id = ? AND user_id = ?", l.ID, l.UserID).
		Updates(map[string]any{"type": l.Type, "count": l.Count})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *livestockRepo) Delete(ctx context.Context, id, uid string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Livestock{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

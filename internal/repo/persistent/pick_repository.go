package persistent

import (
	"fmt"

	"commune/internal/entity"
	"commune/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PickRepository interface {
	ExistsForWeek(weekStart string) (bool, error)
	Insert(pick *entity.ClubPick) error
	ListForWeek(weekStart string) ([]*entity.ClubPick, error)
}

type pickRepository struct {
	db *gorm.DB
}

func NewPickRepository(db *gorm.DB) PickRepository {
	return &pickRepository{db: db}
}

func (r *pickRepository) ExistsForWeek(weekStart string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ClubPickModel{}).Where("week_start = ?", weekStart).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: count picks: %v", entity.ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

// Insert writes one pick; the unique (week_start, media_key) index makes a
// concurrent duplicate synthesis collapse to a no-op.
func (r *pickRepository) Insert(pick *entity.ClubPick) error {
	pickModel := ToClubPickModel(pick)
	if pickModel.ID == "" {
		pickModel.ID = uuid.New().String()
	}

	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(pickModel).Error
	if err != nil {
		return fmt.Errorf("%w: insert pick: %v", entity.ErrStoreUnavailable, err)
	}

	*pick = *ToClubPickEntity(pickModel)
	return nil
}

func (r *pickRepository) ListForWeek(weekStart string) ([]*entity.ClubPick, error) {
	var pickModels []model.ClubPickModel
	err := r.db.Where("week_start = ?", weekStart).Order("created_at").Find(&pickModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list picks: %v", entity.ErrStoreUnavailable, err)
	}

	picks := make([]*entity.ClubPick, len(pickModels))
	for i := range pickModels {
		picks[i] = ToClubPickEntity(&pickModels[i])
	}
	return picks, nil
}

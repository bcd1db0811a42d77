package persistent

import (
	"errors"
	"fmt"

	"commune/internal/entity"
	"commune/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaveRepository interface {
	FindByUserAndPost(userID, postID string) (*entity.Save, error)
	Create(save *entity.Save) error
	ListByUser(userID string) ([]*entity.Save, error)
	Delete(saveID string) error
}

type saveRepository struct {
	db *gorm.DB
}

func NewSaveRepository(db *gorm.DB) SaveRepository {
	return &saveRepository{db: db}
}

// FindByUserAndPost returns nil, nil when no save exists for the pair.
func (r *saveRepository) FindByUserAndPost(userID, postID string) (*entity.Save, error) {
	var saveModel model.SaveModel
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&saveModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find save: %v", entity.ErrStoreUnavailable, err)
	}
	return ToSaveEntity(&saveModel), nil
}

func (r *saveRepository) Create(save *entity.Save) error {
	saveModel := ToSaveModel(save)
	if saveModel.ID == "" {
		saveModel.ID = uuid.New().String()
	}

	if err := r.db.Create(saveModel).Error; err != nil {
		return fmt.Errorf("%w: create save: %v", entity.ErrStoreUnavailable, err)
	}

	*save = *ToSaveEntity(saveModel)
	return nil
}

func (r *saveRepository) ListByUser(userID string) ([]*entity.Save, error) {
	var saveModels []model.SaveModel
	err := r.db.Where("user_id = ?", userID).Order("saved_at DESC").Find(&saveModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list saves: %v", entity.ErrStoreUnavailable, err)
	}

	saves := make([]*entity.Save, len(saveModels))
	for i := range saveModels {
		saves[i] = ToSaveEntity(&saveModels[i])
	}
	return saves, nil
}

func (r *saveRepository) Delete(saveID string) error {
	err := r.db.Delete(&model.SaveModel{}, "id = ?", saveID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: delete save: %v", entity.ErrStoreUnavailable, err)
	}
	return nil
}

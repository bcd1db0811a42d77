package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"commune/internal/entity"
	"commune/internal/repo/persistent"
	"commune/pkg/logger"
)

type SaveUseCase interface {
	Save(userID, postID string, mediaType entity.MediaType, mediaData json.RawMessage) (*entity.Save, bool, error)
	ListSaves(userID string) ([]*entity.Save, error)
	Unsave(saveID string) error
}

type saveUseCase struct {
	saveRepo persistent.SaveRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewSaveUseCase(saveRepo persistent.SaveRepository, log *logger.Logger) SaveUseCase {
	return &saveUseCase{
		saveRepo: saveRepo,
		logger:   log,
		now:      time.Now,
	}
}

// Save is idempotent per (user, post): a repeat request returns the
// existing save unchanged. The returned bool reports whether the save
// already existed.
func (uc *saveUseCase) Save(userID, postID string, mediaType entity.MediaType, mediaData json.RawMessage) (*entity.Save, bool, error) {
	if userID == "" || postID == "" {
		return nil, false, fmt.Errorf("%w: missing user or post id", entity.ErrValidation)
	}

	existing, err := uc.saveRepo.FindByUserAndPost(userID, postID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	if len(mediaData) == 0 {
		mediaData = json.RawMessage("{}")
	}

	save := &entity.Save{
		UserID:    userID,
		PostID:    postID,
		MediaType: mediaType,
		MediaData: mediaData,
		SavedAt:   uc.now(),
	}
	if err := uc.saveRepo.Create(save); err != nil {
		return nil, false, err
	}
	return save, false, nil
}

func (uc *saveUseCase) ListSaves(userID string) ([]*entity.Save, error) {
	return uc.saveRepo.ListByUser(userID)
}

func (uc *saveUseCase) Unsave(saveID string) error {
	return uc.saveRepo.Delete(saveID)
}

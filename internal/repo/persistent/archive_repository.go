package persistent

import (
	"fmt"

	"commune/internal/entity"
	"commune/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArchiveRepository interface {
	Insert(entry *entity.ArchiveEntry) (bool, error)
	ListByUser(userID string) ([]*entity.ArchiveEntry, error)
	Overlap(user1, user2 string) ([]entity.OverlapItem, error)
	TopShared(limit int) ([]entity.PopularMedia, error)
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

// Insert records a share fact idempotently: the (user_id, media_key)
// primary key plus ON CONFLICT DO NOTHING make re-runs of the sweep
// safe. Returns whether a row was actually written.
func (r *archiveRepository) Insert(entry *entity.ArchiveEntry) (bool, error) {
	archiveModel := ToArchiveModel(entry)

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(archiveModel)
	if result.Error != nil {
		return false, fmt.Errorf("%w: insert archive entry: %v", entity.ErrStoreUnavailable, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *archiveRepository) ListByUser(userID string) ([]*entity.ArchiveEntry, error) {
	var archiveModels []model.ArchiveModel
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&archiveModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list archive: %v", entity.ErrStoreUnavailable, err)
	}

	entries := make([]*entity.ArchiveEntry, len(archiveModels))
	for i := range archiveModels {
		entries[i] = ToArchiveEntity(&archiveModels[i])
	}
	return entries, nil
}

func (r *archiveRepository) Overlap(user1, user2 string) ([]entity.OverlapItem, error) {
	var items []entity.OverlapItem
	err := r.db.Raw(`
		SELECT a1.media_key, a1.media_title
		FROM archive a1
		INNER JOIN archive a2 ON a1.media_key = a2.media_key
		WHERE a1.user_id = ? AND a2.user_id = ?
		GROUP BY a1.media_key, a1.media_title`,
		user1, user2).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: archive overlap: %v", entity.ErrStoreUnavailable, err)
	}
	return items, nil
}

// TopShared ranks archived items by how many distinct users shared them,
// randomizing ties so the same perennial favorites don't lock in a fixed
// order week after week.
func (r *archiveRepository) TopShared(limit int) ([]entity.PopularMedia, error) {
	var rows []entity.PopularMedia
	err := r.db.Raw(`
		SELECT media_key, media_type, media_title, COUNT(DISTINCT user_id) AS user_count
		FROM archive
		GROUP BY media_key, media_type, media_title
		HAVING COUNT(DISTINCT user_id) >= 1
		ORDER BY user_count DESC, RANDOM()
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: top shared: %v", entity.ErrStoreUnavailable, err)
	}
	return rows, nil
}

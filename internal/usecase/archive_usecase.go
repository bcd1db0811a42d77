package usecase

import (
	"fmt"
	"time"

	"commune/internal/entity"
	"commune/internal/repo/persistent"
	"commune/pkg/logger"
)

type ArchiveUseCase interface {
	Sweep() (*entity.SweepSummary, error)
	ListArchive(userID string) ([]*entity.ArchiveEntry, error)
	Overlap(user1, user2 string) (int, []entity.OverlapItem, error)
}

type archiveUseCase struct {
	feedRepo         persistent.FeedRepository
	archiveRepo      persistent.ArchiveRepository
	logger           *logger.Logger
	visibilityWindow time.Duration
	now              func() time.Time
}

func NewArchiveUseCase(
	feedRepo persistent.FeedRepository,
	archiveRepo persistent.ArchiveRepository,
	log *logger.Logger,
	visibilityWindow time.Duration,
) ArchiveUseCase {
	return &archiveUseCase{
		feedRepo:         feedRepo,
		archiveRepo:      archiveRepo,
		logger:           log,
		visibilityWindow: visibilityWindow,
		now:              time.Now,
	}
}

// Sweep migrates expired posts' share facts into the archive, then purges
// the posts and their reactions. Every step is idempotent: a crashed or
// repeated run re-selects the same expired set and the archive insert
// ignores rows that already exist, so nothing is lost or double-counted.
func (uc *archiveUseCase) Sweep() (*entity.SweepSummary, error) {
	cutoff := uc.now().Add(-uc.visibilityWindow)

	expired, err := uc.feedRepo.FindExpired(cutoff)
	if err != nil {
		return nil, err
	}

	summary := &entity.SweepSummary{}
	for _, post := range expired {
		entry := archiveEntryFor(post)

		// Archive before delete: a failure here leaves the post in
		// place for the next run.
		inserted, err := uc.archiveRepo.Insert(entry)
		if err != nil {
			return summary, err
		}
		if inserted {
			summary.Archived++
		}

		if err := uc.feedRepo.DeletePost(post.ID); err != nil {
			return summary, err
		}
		summary.Deleted++
	}

	return summary, nil
}

// archiveEntryFor derives the permanent fact from an expiring post. Posts
// whose media never resolved to a key get a per-post fallback so the
// share is still remembered.
func archiveEntryFor(post *entity.Post) *entity.ArchiveEntry {
	key := post.MediaKey
	if key == "" {
		key = fmt.Sprintf("%s-%s", post.MediaType, post.ID)
	}

	title := ""
	if media, err := entity.ParseMedia(post.Media); err == nil {
		title = media.DisplayTitle()
	}

	return &entity.ArchiveEntry{
		UserID:     post.AuthorID,
		MediaType:  post.MediaType,
		MediaKey:   key,
		MediaTitle: title,
		CreatedAt:  post.CreatedAt,
	}
}

func (uc *archiveUseCase) ListArchive(userID string) ([]*entity.ArchiveEntry, error) {
	return uc.archiveRepo.ListByUser(userID)
}

func (uc *archiveUseCase) Overlap(user1, user2 string) (int, []entity.OverlapItem, error) {
	items, err := uc.archiveRepo.Overlap(user1, user2)
	if err != nil {
		return 0, nil, err
	}
	return len(items), items, nil
}

package persistent

import (
	"encoding/json"

	"commune/internal/entity"
	"commune/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Text:      m.Body,
		MediaType: entity.MediaType(m.MediaType),
		MediaKey:  m.MediaKey,
		Media:     json.RawMessage(m.MediaData),
		CreatedAt: m.CreatedAt,
		Reactions: make([]entity.Reaction, len(m.Reactions)),
	}

	for i := range m.Reactions {
		post.Reactions[i] = ToReactionEntity(&m.Reactions[i])
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		AuthorID:  e.AuthorID,
		Body:      e.Text,
		MediaType: string(e.MediaType),
		MediaKey:  e.MediaKey,
		MediaData: string(e.Media),
		CreatedAt: e.CreatedAt,
	}
}

func ToReactionEntity(m *model.ReactionModel) entity.Reaction {
	if m == nil {
		return entity.Reaction{}
	}

	return entity.Reaction{
		ID:     m.ID,
		PostID: m.PostID,
		UserID: m.UserID,
		Emoji:  m.Emoji,
	}
}

func ToArchiveEntity(m *model.ArchiveModel) *entity.ArchiveEntry {
	if m == nil {
		return nil
	}

	return &entity.ArchiveEntry{
		UserID:     m.UserID,
		MediaType:  entity.MediaType(m.MediaType),
		MediaKey:   m.MediaKey,
		MediaTitle: m.MediaTitle,
		CreatedAt:  m.CreatedAt,
	}
}

func ToArchiveModel(e *entity.ArchiveEntry) *model.ArchiveModel {
	if e == nil {
		return nil
	}

	return &model.ArchiveModel{
		UserID:     e.UserID,
		MediaType:  string(e.MediaType),
		MediaKey:   e.MediaKey,
		MediaTitle: e.MediaTitle,
		CreatedAt:  e.CreatedAt,
	}
}

func ToClubPickEntity(m *model.ClubPickModel) *entity.ClubPick {
	if m == nil {
		return nil
	}

	return &entity.ClubPick{
		ID:        m.ID,
		MediaKey:  m.MediaKey,
		MediaType: entity.MediaType(m.MediaType),
		MediaData: json.RawMessage(m.MediaData),
		WeekStart: m.WeekStart,
		CreatedAt: m.CreatedAt,
	}
}

func ToClubPickModel(e *entity.ClubPick) *model.ClubPickModel {
	if e == nil {
		return nil
	}

	return &model.ClubPickModel{
		ID:        e.ID,
		MediaKey:  e.MediaKey,
		MediaType: string(e.MediaType),
		MediaData: string(e.MediaData),
		WeekStart: e.WeekStart,
		CreatedAt: e.CreatedAt,
	}
}

func ToSaveEntity(m *model.SaveModel) *entity.Save {
	if m == nil {
		return nil
	}

	return &entity.Save{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		MediaType: entity.MediaType(m.MediaType),
		MediaData: json.RawMessage(m.MediaData),
		SavedAt:   m.SavedAt,
	}
}

func ToSaveModel(e *entity.Save) *model.SaveModel {
	if e == nil {
		return nil
	}

	return &model.SaveModel{
		ID:        e.ID,
		UserID:    e.UserID,
		PostID:    e.PostID,
		MediaType: string(e.MediaType),
		MediaData: string(e.MediaData),
		SavedAt:   e.SavedAt,
	}
}

func ToMemberEntity(m *model.MemberModel) *entity.Member {
	if m == nil {
		return nil
	}

	return &entity.Member{
		ID:        m.ID,
		Name:      m.Name,
		Emoji:     m.Emoji,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

package persistent

import (
	"fmt"

	"commune/internal/entity"
	"commune/internal/model"

	"gorm.io/gorm"
)

type MemberRepository interface {
	List() ([]*entity.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) List() ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	err := r.db.Order("name").Find(&memberModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list members: %v", entity.ErrStoreUnavailable, err)
	}

	members := make([]*entity.Member, len(memberModels))
	for i := range memberModels {
		members[i] = ToMemberEntity(&memberModels[i])
	}
	return members, nil
}

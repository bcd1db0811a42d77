package usecase

import (
	"commune/internal/entity"
	"commune/internal/repo/persistent"
)

type MemberUseCase interface {
	ListMembers() ([]*entity.Member, error)
}

type memberUseCase struct {
	memberRepo persistent.MemberRepository
}

func NewMemberUseCase(memberRepo persistent.MemberRepository) MemberUseCase {
	return &memberUseCase{memberRepo: memberRepo}
}

func (uc *memberUseCase) ListMembers() ([]*entity.Member, error) {
	return uc.memberRepo.List()
}

package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.Profile) error {
	if p.TargetCalories < 0 || p.TargetProtein < 0 || p.TargetCarbs < 0 || p.TargetFats < 0 {
		return fmt.Errorf("targets must not be negative")
	}
	return s.profiles.Upsert(ctx, p)
}

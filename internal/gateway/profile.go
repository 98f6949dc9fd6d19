package gateway

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

const avatarsBucket = "avatars"

func (g *Gateway) GetProfile(ctx context.Context) (models.Profile, error) {
	return attempt(ctx, g, "GetProfile", func(ctx context.Context, s repo.Store, owner string) (models.Profile, error) {
		return s.GetProfile(ctx, owner)
	})
}

func (g *Gateway) UpdateProfile(ctx context.Context, u models.ProfileUpdate) (models.Profile, error) {
	return g.editProfile(ctx, "UpdateProfile", func(_ context.Context, _ repo.Store, _ string, p *models.Profile) error {
		*p = u.Apply(*p)
		return nil
	})
}

func (g *Gateway) UpdateProfileAvatar(ctx context.Context, file Upload) (models.Profile, error) {
	return g.editProfile(ctx, "UpdateProfileAvatar", func(ctx context.Context, s repo.Store, owner string, p *models.Profile) error {
		url, err := s.PutObject(ctx, owner, file.object(avatarsBucket, owner, "avatar"))
		if err != nil {
			return err
		}
		p.AvatarURL = url
		return nil
	})
}

func (g *Gateway) AddRecruit(ctx context.Context, name, joinDate string) (models.Profile, error) {
	return g.editProfile(ctx, "AddRecruit", func(_ context.Context, _ repo.Store, _ string, p *models.Profile) error {
		p.Recruits = append(p.Recruits, models.Recruit{ID: "r_" + uuid.NewString(), Name: name, JoinDate: joinDate})
		return nil
	})
}

func (g *Gateway) RemoveRecruit(ctx context.Context, id string) (models.Profile, error) {
	return g.editProfile(ctx, "RemoveRecruit", func(_ context.Context, _ repo.Store, _ string, p *models.Profile) error {
		i := slices.IndexFunc(p.Recruits, func(r models.Recruit) bool { return r.ID == id })
		if i < 0 {
			return repo.ErrRecruitNotFound
		}
		p.Recruits = slices.Delete(p.Recruits, i, i+1)
		return nil
	})
}

// editProfile reads the profile, applies edit and saves the result on the same store.
func (g *Gateway) editProfile(ctx context.Context, op string, edit func(context.Context, repo.Store, string, *models.Profile) error) (models.Profile, error) {
	return attempt(ctx, g, op, func(ctx context.Context, s repo.Store, owner string) (models.Profile, error) {
		p, err := s.GetProfile(ctx, owner)
		if err != nil {
			return models.Profile{}, err
		}
		if err := edit(ctx, s, owner, &p); err != nil {
			return models.Profile{}, err
		}
		return s.SaveProfile(ctx, owner, p)
	})
}

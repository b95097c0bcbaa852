package client

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/common"
	pb "github.com/dmitrijs2005/securevault/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func fromPBUser(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{ID: u.Id, Email: u.Email}
}

func fromPBSession(s *pb.Session) *models.Session {
	if s == nil {
		return nil
	}
	return &models.Session{
		User:         fromPBUser(s.User),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt.AsTime(),
	}
}

func cloneSession(s *models.Session) *models.Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return &c
}

func fromPBKey(k *pb.SecurityKey) *models.SecurityKey {
	return &models.SecurityKey{
		ID:          k.Id,
		UserID:      k.UserId,
		Name:        k.Name,
		Type:        models.KeyType(k.Type),
		Description: k.Description,
		Value:       k.Value,
		URL:         k.Url,
		Username:    k.Username,
		Tags:        slices.Clone(k.Tags),
		ExpiresAt:   fromPBTime(k.ExpiresAt),
		CreatedAt:   k.CreatedAt.AsTime(),
		UpdatedAt:   k.UpdatedAt.AsTime(),
	}
}

func toPBInput(in models.KeyInput) *pb.KeyInput {
	return &pb.KeyInput{
		Name:        in.Name,
		Type:        string(in.Type),
		Description: in.Description,
		Value:       in.Value,
		Url:         in.URL,
		Username:    in.Username,
		Tags:        slices.Clone(in.Tags),
		ExpiresAt:   toPBTime(in.ExpiresAt),
	}
}

// fromPBTime keeps an unset expiry as nil instead of the Unix epoch.
func fromPBTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func toPBTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func keyOrError(resp *pb.KeyResponse) (*models.SecurityKey, error) {
	if resp == nil || resp.Key == nil {
		return nil, &RemoteError{Kind: common.ErrorInternal, Message: "empty key in response"}
	}
	return fromPBKey(resp.Key), nil
}

func profileOrError(resp *pb.ProfileResponse) (*models.Profile, error) {
	if resp == nil || resp.Profile == nil {
		return nil, &RemoteError{Kind: common.ErrorInternal, Message: "empty profile in response"}
	}
	p := resp.Profile
	return &models.Profile{UserID: p.UserId, Email: p.Email, FullName: p.FullName}, nil
}

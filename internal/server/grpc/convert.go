package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/securevault/internal/proto"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/dmitrijs2005/securevault/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func userToPB(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{Id: u.ID, Email: u.Email}
}

func profileToPB(u *models.User) *pb.Profile {
	return &pb.Profile{UserId: u.ID, Email: u.Email, FullName: u.FullName}
}

func sessionToPB(s *services.Session) *pb.Session {
	return &pb.Session{
		User:         userToPB(s.User),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    timestamppb.New(s.ExpiresAt),
	}
}

func keyToPB(k *models.SecurityKey) *pb.SecurityKey {
	return &pb.SecurityKey{
		Id:          k.ID,
		UserId:      k.UserID,
		Name:        k.Name,
		Type:        k.Type,
		Description: k.Description,
		Value:       k.Value,
		Url:         k.URL,
		Username:    k.Username,
		Tags:        k.Tags,
		ExpiresAt:   optionalTimeToPB(k.ExpiresAt),
		CreatedAt:   timestamppb.New(k.CreatedAt),
		UpdatedAt:   timestamppb.New(k.UpdatedAt),
	}
}

func keyFromPB(in *pb.KeyInput) *models.SecurityKey {
	if in == nil {
		return nil
	}
	return &models.SecurityKey{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Value:       in.Value,
		URL:         in.Url,
		Username:    in.Username,
		Tags:        in.Tags,
		ExpiresAt:   optionalTimeFromPB(in.ExpiresAt),
	}
}

// optionalTimeToPB maps a missing expiry to an unset field.
func optionalTimeToPB(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func optionalTimeFromPB(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

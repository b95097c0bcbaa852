package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/securevault/internal/proto"
	"github.com/dmitrijs2005/securevault/internal/server/auth"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) caller(ctx context.Context) (auth.Identity, error) {
	id, ok := identityFromContext(ctx)
	if !ok {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	user, err := s.users.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.SignUpResponse{User: userToPB(user)}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	session, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SignInResponse{Session: sessionToPB(session)}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	session, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RefreshTokenResponse{Session: sessionToPB(session)}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, _ *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.SignOut(ctx, id.UserID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SignOutResponse{}, nil
}

func (s *GRPCServer) UpdatePassword(ctx context.Context, req *pb.UpdatePasswordRequest) (*pb.UpdatePasswordResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.UpdatePassword(ctx, id.UserID, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdatePasswordResponse{User: userToPB(user)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Profile(ctx, id.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProfileResponse{Profile: profileToPB(user)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.UpdateProfile(ctx, id.UserID, req.FullName)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProfileResponse{Profile: profileToPB(user)}, nil
}

func (s *GRPCServer) ListKeys(ctx context.Context, req *pb.ListKeysRequest) (*pb.ListKeysResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	q := models.KeyQuery{UserID: id.UserID, OrderBy: req.OrderBy, Descending: req.Descending}
	if req.FilterColumn != "" {
		q.Filter = &models.KeyFilter{Column: req.FilterColumn, Value: req.FilterValue}
	}

	keys, err := s.keys.List(ctx, q)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListKeysResponse{Keys: make([]*pb.SecurityKey, 0, len(keys))}
	for _, k := range keys {
		resp.Keys = append(resp.Keys, keyToPB(k))
	}
	return resp, nil
}

func (s *GRPCServer) GetKey(ctx context.Context, req *pb.GetKeyRequest) (*pb.KeyResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	key, err := s.keys.Get(ctx, id.UserID, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.KeyResponse{Key: keyToPB(key)}, nil
}

func (s *GRPCServer) CreateKey(ctx context.Context, req *pb.CreateKeyRequest) (*pb.KeyResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	key, err := s.keys.Create(ctx, id.UserID, keyFromPB(req.Key))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.KeyResponse{Key: keyToPB(key)}, nil
}

func (s *GRPCServer) UpdateKey(ctx context.Context, req *pb.UpdateKeyRequest) (*pb.KeyResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	key, err := s.keys.Update(ctx, id.UserID, req.Id, keyFromPB(req.Key))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.KeyResponse{Key: keyToPB(key)}, nil
}

func (s *GRPCServer) DeleteKey(ctx context.Context, req *pb.DeleteKeyRequest) (*pb.DeleteKeyResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.keys.Delete(ctx, id.UserID, req.Id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteKeyResponse{}, nil
}

func (s *GRPCServer) ExportKeys(ctx context.Context, _ *pb.ExportKeysRequest) (*pb.ExportKeysResponse, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	exp, err := s.exports.Export(ctx, id.UserID)
	if err != nil {
		s.logger.Error(ctx, "export failed", "user_id", id.UserID, "error", err)
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "Vault exported", "user_id", id.UserID, "object", exp.ObjectKey, "count", exp.Count)
	return &pb.ExportKeysResponse{
		Url:       exp.URL,
		ObjectKey: exp.ObjectKey,
		Count:     int32(exp.Count),
		ExpiresAt: timestamppb.New(exp.ExpiresAt),
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

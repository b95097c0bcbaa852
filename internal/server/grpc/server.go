// Package grpc exposes the vault services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/securevault/internal/logging"
	pb "github.com/dmitrijs2005/securevault/internal/proto"
	"github.com/dmitrijs2005/securevault/internal/server/models"
	"github.com/dmitrijs2005/securevault/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account API the transport depends on.
type UserService interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.Session, error)
	SignOut(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, password string) (*models.User, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, fullName string) (*models.User, error)
}

// KeyService is the security key API the transport depends on.
type KeyService interface {
	List(ctx context.Context, q models.KeyQuery) ([]*models.SecurityKey, error)
	Get(ctx context.Context, userID, id string) (*models.SecurityKey, error)
	Create(ctx context.Context, userID string, key *models.SecurityKey) (*models.SecurityKey, error)
	Update(ctx context.Context, userID, id string, key *models.SecurityKey) (*models.SecurityKey, error)
	Delete(ctx context.Context, userID, id string) error
}

// ExportService writes vault snapshots.
type ExportService interface {
	Export(ctx context.Context, userID string) (*services.Export, error)
}

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address   string
	users     UserService
	keys      KeyService
	exports   ExportService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ks KeyService, es ExportService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		keys:      ks,
		exports:   es,
		jwtSecret: []byte(secretKey),
	}
}

// NewServer builds a grpc.Server with the vault service and interceptors
// registered, ready to Serve on any listener.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	}, opts...)
	srv := grpc.NewServer(opts...)
	pb.RegisterVaultServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

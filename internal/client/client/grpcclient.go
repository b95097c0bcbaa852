package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/dmitrijs2005/securevault/internal/logging"
	pb "github.com/dmitrijs2005/securevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	logger      logging.Logger
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient

	mu      sync.RWMutex
	session *models.Session

	// refreshMu lets one RefreshToken call run at a time.
	refreshMu sync.Mutex

	lmu       sync.Mutex
	listeners map[int]AuthListener
	nextID    int
}

var (
	_ Auth     = (*GRPCClient)(nil)
	_ Records  = (*GRPCClient)(nil)
	_ Profiles = (*GRPCClient)(nil)
)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return "", ""
	}
	return s.session.AccessToken, s.session.RefreshToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	accessToken, refreshToken := s.tokens()
	ctx = withAccessToken(ctx, accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		if method == pb.VaultService_RefreshToken_FullMethodName {
			return err
		}

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refreshToken == "" {
			return err
		}

		fresh, ok := s.refreshSession(ctx, accessToken)
		if !ok {
			return err
		}

		ctx = withAccessToken(ctx, fresh)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// refreshSession replaces the session after stale was rejected as expired
// and returns the access token to retry with. Concurrent callers holding the
// same stale token share one RefreshToken call: whoever gets the lock later
// finds the session already rotated and reuses it.
func (s *GRPCClient) refreshSession(ctx context.Context, stale string) (string, bool) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if access != "" && access != stale {
		return access, true
	}
	if refresh == "" {
		return "", false
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			s.logger.Info(ctx, "refresh token rejected, signing out", "error", err)
			s.setSession(nil, EventSignedOut)
		}
		return "", false
	}

	sess := fromPBSession(resp.Session)
	if sess == nil {
		return "", false
	}
	s.setSession(sess, EventTokenRefreshed)
	return sess.AccessToken, true
}

// NewVaultClient dials endpointURL lazily; the connection is established on
// the first call. timeout bounds every call, zero disables it.
func NewVaultClient(endpointURL string, timeout time.Duration, logger logging.Logger) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		timeout:     timeout,
		logger:      logger,
		listeners:   make(map[int]AuthListener),
	}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) requireSession() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ErrNoSession
	}
	return nil
}

// OnAuthStateChange registers fn for auth events. The returned func removes
// it and may be called more than once.
func (s *GRPCClient) OnAuthStateChange(fn AuthListener) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			delete(s.listeners, id)
			s.lmu.Unlock()
		})
	}
}

func (s *GRPCClient) setSession(sess *models.Session, event AuthEvent) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	s.emit(event, sess)
}

func (s *GRPCClient) emit(event AuthEvent, sess *models.Session) {
	s.lmu.Lock()
	ls := make([]AuthListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.lmu.Unlock()

	for _, l := range ls {
		l(event, cloneSession(sess))
	}
}

func (s *GRPCClient) CurrentSession(ctx context.Context) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.session), nil
}

func (s *GRPCClient) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBUser(resp.User), nil
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	sess := fromPBSession(resp.Session)
	if sess == nil {
		return nil, &RemoteError{Kind: common.ErrorInternal, Message: "empty session in response"}
	}
	s.setSession(sess, EventSignedIn)
	return cloneSession(sess), nil
}

// SignOut revokes the session on the server and forgets it locally. A
// session the server no longer accepts is forgotten as well.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	_, refreshToken := s.tokens()
	if refreshToken == "" {
		s.setSession(nil, EventSignedOut)
		return nil
	}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refreshToken})
	if err != nil {
		mapped := s.mapError(err)
		if !errors.Is(mapped, ErrUnauthorized) {
			return mapped
		}
	}

	s.setSession(nil, EventSignedOut)
	return nil
}

func (s *GRPCClient) UpdatePassword(ctx context.Context, password string) (*models.User, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdatePassword(ctx, &pb.UpdatePasswordRequest{Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.mu.RLock()
	sess := cloneSession(s.session)
	s.mu.RUnlock()
	s.emit(EventUserUpdated, sess)

	return fromPBUser(resp.User), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) List(ctx context.Context, q ListQuery) ([]*models.SecurityKey, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req := &pb.ListKeysRequest{OrderBy: q.OrderBy, Descending: q.Desc}
	if q.Eq != nil {
		req.FilterColumn = q.Eq.Column
		req.FilterValue = q.Eq.Value
	}

	resp, err := s.client.ListKeys(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	keys := make([]*models.SecurityKey, 0, len(resp.Keys))
	for _, k := range resp.Keys {
		if k != nil {
			keys = append(keys, fromPBKey(k))
		}
	}
	return keys, nil
}

func (s *GRPCClient) Get(ctx context.Context, id string) (*models.SecurityKey, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetKey(ctx, &pb.GetKeyRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return keyOrError(resp)
}

func (s *GRPCClient) Insert(ctx context.Context, in models.KeyInput) (*models.SecurityKey, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateKey(ctx, &pb.CreateKeyRequest{Key: toPBInput(in)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return keyOrError(resp)
}

func (s *GRPCClient) Update(ctx context.Context, id string, in models.KeyInput) (*models.SecurityKey, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateKey(ctx, &pb.UpdateKeyRequest{Id: id, Key: toPBInput(in)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return keyOrError(resp)
}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.DeleteKey(ctx, &pb.DeleteKeyRequest{Id: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return profileOrError(resp)
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, fullName string) (*models.Profile, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{FullName: fullName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return profileOrError(resp)
}

func (s *GRPCClient) ExportVault(ctx context.Context) (*models.Export, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ExportKeys(ctx, &pb.ExportKeysRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Export{
		URL:       resp.Url,
		ObjectKey: resp.ObjectKey,
		Count:     int(resp.Count),
		ExpiresAt: resp.ExpiresAt.AsTime(),
	}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind error
	switch st.Code() {
	case codes.NotFound:
		kind = common.ErrorNotFound
	case codes.InvalidArgument:
		kind = common.ErrorValidation
	case codes.AlreadyExists:
		kind = common.ErrorAlreadyExists
	case codes.Unauthenticated, codes.PermissionDenied:
		kind = ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		kind = ErrUnavailable
	case codes.Canceled:
		return context.Canceled
	default:
		kind = common.ErrorInternal
	}
	return &RemoteError{Kind: kind, Message: st.Message()}
}

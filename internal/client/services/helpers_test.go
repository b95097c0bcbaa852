package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/client"
	"github.com/dmitrijs2005/securevault/internal/client/models"
)

type toast struct {
	Title, Description string
	Err               bool
}

type recNotifier struct {
	mu     sync.Mutex
	toasts []toast
}

func (n *recNotifier) Success(title, desc string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{Title: title, Description: desc})
}

func (n *recNotifier) Error(title, desc string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{Title: title, Description: desc, Err: true})
}

func (n *recNotifier) last() toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

type recNavigator struct {
	routes []string
}

func (n *recNavigator) Navigate(r string) { n.routes = append(n.routes, r) }

type fixedConfirmer struct {
	answer bool
	asked  int
}

func (c *fixedConfirmer) Confirm(context.Context, string, string) bool {
	c.asked++
	return c.answer
}

type fakeRecords struct {
	client.Records

	listQuery client.ListQuery
	listRet   []*models.SecurityKey
	listErr   error
	listHook  func(ctx context.Context)

	getRet  *models.SecurityKey
	getErr  error
	getHook func(ctx context.Context)

	insertIn  *models.KeyInput
	insertErr error

	updateID  string
	updateIn  *models.KeyInput
	updateErr error

	deleteID   string
	deleteErr  error
	deleteHook func(ctx context.Context)
	calls      int
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func (f *fakeRecords) List(ctx context.Context, q client.ListQuery) ([]*models.SecurityKey, error) {
	f.calls++
	f.listQuery = q
	if f.listHook != nil {
		f.listHook(ctx)
	}
	return f.listRet, f.listErr
}

func (f *fakeRecords) Get(ctx context.Context, id string) (*models.SecurityKey, error) {
	f.calls++
	if f.getHook != nil {
		f.getHook(ctx)
	}
	return f.getRet, f.getErr
}

func (f *fakeRecords) Insert(ctx context.Context, in models.KeyInput) (*models.SecurityKey, error) {
	f.calls++
	f.insertIn = &in
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return serverKey("srv-1", in), nil
}

func (f *fakeRecords) Update(ctx context.Context, id string, in models.KeyInput) (*models.SecurityKey, error) {
	f.calls++
	f.updateID = id
	f.updateIn = &in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return serverKey(id, in), nil
}

func (f *fakeRecords) Delete(ctx context.Context, id string) error {
	f.calls++
	f.deleteID = id
	if f.deleteHook != nil {
		f.deleteHook(ctx)
	}
	return f.deleteErr
}

func serverKey(id string, in models.KeyInput) *models.SecurityKey {
	return &models.SecurityKey{
		ID:          id,
		UserID:      "u1",
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Value:       in.Value,
		URL:         in.URL,
		Username:    in.Username,
		Tags:        in.Tags,
		ExpiresAt:   in.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func remoteErr(kind error, msg string) error {
	return &client.RemoteError{Kind: kind, Message: msg}
}

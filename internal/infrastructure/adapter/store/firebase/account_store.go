package firebase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	firebasesdk "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
)

const driverName = "firebase"

// DefaultRootPath is the node holding one child per user
const DefaultRootPath = "users"

// Options configures the Realtime Database connection
type Options struct {
	DatabaseURL     string
	CredentialsFile string
	RootPath        string
}

// node is the subset of *db.Ref the store needs
type node interface {
	Get(ctx context.Context, v interface{}) error
	Set(ctx context.Context, v interface{}) error
	Update(ctx context.Context, v map[string]interface{}) error
}

// record is the JSON shape kept under users/{id}
type record struct {
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

// AccountStore keeps accounts in Firebase Realtime Database
type AccountStore struct {
	ref          func(path string) node
	rootPath     string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountStore initializes the firebase app and database client
func NewAccountStore(ctx context.Context, opts Options, timeProvider coreport.TimeProvider, logger coreport.Logger) (persistence.AccountRepository, error) {
	if opts.DatabaseURL == "" {
		return nil, fmt.Errorf("firebase database URL is required")
	}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	app, err := firebasesdk.NewApp(ctx, &firebasesdk.Config{DatabaseURL: opts.DatabaseURL}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase database: %w", err)
	}

	logger.Info("Firebase store initialized", map[string]any{
		"database_url": opts.DatabaseURL,
		"root_path":    rootPathOrDefault(opts.RootPath),
	})

	return newAccountStore(func(path string) node { return client.NewRef(path) }, opts.RootPath, timeProvider, logger), nil
}

func newAccountStore(ref func(path string) node, rootPath string, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountStore {
	return &AccountStore{
		ref:          ref,
		rootPath:     rootPathOrDefault(rootPath),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func rootPathOrDefault(rootPath string) string {
	rootPath = strings.Trim(rootPath, "/")
	if rootPath == "" {
		return DefaultRootPath
	}
	return rootPath
}

func (s *AccountStore) path(userID int64) string {
	return s.rootPath + "/" + strconv.FormatInt(userID, 10)
}

// Get reads users/{id}. A null node means the user has no record yet.
func (s *AccountStore) Get(ctx context.Context, userID int64) (*entity.Account, error) {
	var rec *record
	if err := s.ref(s.path(userID)).Get(ctx, &rec); err != nil {
		return nil, errs.NewStoreError(driverName, "get", userID, err)
	}
	if rec == nil {
		return nil, errs.ErrAccountNotFound
	}

	return &entity.Account{
		UserID:    userID,
		Username:  rec.Username,
		Points:    rec.Points,
		UpdatedAt: s.timeProvider.Now(),
	}, nil
}

func (s *AccountStore) Set(ctx context.Context, account *entity.Account) error {
	if account.UserID == 0 {
		return errs.ErrInvalidUserID
	}

	rec := record{Username: account.Username, Points: account.Points}
	if err := s.ref(s.path(account.UserID)).Set(ctx, rec); err != nil {
		return errs.NewStoreError(driverName, "set", account.UserID, err)
	}
	return nil
}

// Update writes the partial record; the realtime database merges it into the existing node
func (s *AccountStore) Update(ctx context.Context, account *entity.Account) error {
	fields := map[string]interface{}{
		"username": account.Username,
		"points":   account.Points,
	}
	if err := s.ref(s.path(account.UserID)).Update(ctx, fields); err != nil {
		return errs.NewStoreError(driverName, "update", account.UserID, err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no closable resources
func (s *AccountStore) Close() error {
	return nil
}

var _ node = (*db.Ref)(nil)

package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/wolfread/wolfread-go/internal/api"
	"github.com/wolfread/wolfread-go/internal/logging"
	"github.com/wolfread/wolfread-go/internal/models"
	"github.com/wolfread/wolfread-go/internal/repositories/tokens"
)

// Controller drives the session state machine. All mutation goes through it;
// consumers read snapshots via Session() or Subscribe().
type Controller struct {
	api   api.Client
	store tokens.Repository
	log   logging.Logger

	mu      sync.Mutex
	session Session
	started bool
	// gen is bumped by logout. An in-flight refresh re-checks it after every
	// awaited call so a slow refresh cannot resurrect a logged-out session.
	gen     uint64
	subs    map[int]func(Session)
	nextSub int

	flight singleflight.Group
}

func NewController(client api.Client, store tokens.Repository, log logging.Logger) *Controller {
	return &Controller{
		api:     client,
		store:   store,
		log:     log.With("component", "session"),
		session: newInitialSession(),
		subs:    make(map[int]func(Session)),
	}
}

// Session returns the current snapshot.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Subscribe registers fn to be called with a snapshot after every session
// change. The returned function unsubscribes.
func (c *Controller) Subscribe(fn func(Session)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// update applies mutate under the lock, re-derives IsAuthenticated, and
// notifies subscribers outside the lock.
func (c *Controller) update(mutate func(*Session)) {
	c.mu.Lock()
	mutate(&c.session)
	c.session.IsAuthenticated = c.session.User != nil &&
		c.session.Tokens != nil && c.session.Tokens.Access != ""
	snapshot := c.session
	fns := make([]func(Session), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func (c *Controller) currentGen() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// superseded reports whether a logout landed after gen was captured.
func (c *Controller) superseded(gen uint64) bool {
	return c.currentGen() != gen
}

// Start runs the startup verification once per process. Concurrent callers
// coalesce onto the same in-flight check; later callers return immediately.
// Start never returns an error: a broken stored token must not block app
// load, so failures are logged, the store is wiped, and the session lands
// in StateAnonymous.
func (c *Controller) Start(ctx context.Context) {
	_, _, _ = c.flight.Do("startup", func() (any, error) {
		c.mu.Lock()
		if c.started {
			c.mu.Unlock()
			return nil, nil
		}
		c.started = true
		c.mu.Unlock()

		c.verify(ctx)
		return nil, nil
	})
}

func (c *Controller) verify(ctx context.Context) {
	c.update(func(s *Session) {
		s.State = StateVerifying
		s.IsLoading = true
	})

	pair, err := c.store.LoadTokens(ctx)
	if err != nil {
		c.log.Error(ctx, "loading stored tokens failed", "error", err)
	}
	if pair.Empty() {
		c.update(func(s *Session) { *s = emptySession() })
		return
	}

	st, err := c.api.CheckStatus(ctx, pair.Access)
	if err != nil {
		c.log.Warn(ctx, "startup status check failed", "error", err)
		if err := c.store.Clear(ctx); err != nil {
			c.log.Error(ctx, "clearing local state failed", "error", err)
		}
		c.update(func(s *Session) { *s = emptySession() })
		return
	}

	if st.Authenticated && st.User != nil {
		c.setAuthenticated(st.User, pair)
		return
	}

	// Access token rejected but we may still hold a refresh token.
	c.Refresh(ctx)
}

// Refresh runs the silent refresh protocol and reports whether the session
// is authenticated afterwards. Concurrent callers share one refresh request;
// the pair must never be refreshed twice for a single expiry.
func (c *Controller) Refresh(ctx context.Context) bool {
	v, _, _ := c.flight.Do("refresh", func() (any, error) {
		return c.refresh(ctx), nil
	})
	ok, _ := v.(bool)
	return ok
}

func (c *Controller) refresh(ctx context.Context) bool {
	gen := c.currentGen()

	pair, err := c.store.LoadTokens(ctx)
	if err != nil {
		c.log.Error(ctx, "loading stored tokens failed", "error", err)
	}
	if pair == nil || pair.Refresh == "" {
		c.log.Warn(ctx, "silent refresh not possible", "error", ErrSessionExpired)
		c.expire(ctx)
		return false
	}

	fresh, err := c.api.RefreshToken(ctx, pair.Refresh)
	if c.superseded(gen) {
		return false
	}
	if err != nil {
		c.log.Warn(ctx, "token refresh rejected", "error", err)
		c.expire(ctx)
		return false
	}

	if c.superseded(gen) {
		return false
	}
	if err := c.store.SaveTokens(ctx, fresh); err != nil {
		c.log.Error(ctx, "persisting refreshed tokens failed", "error", err)
		c.expire(ctx)
		return false
	}
	if c.superseded(gen) {
		// Logout raced the save: its Clear must not be undone by the pair
		// we just wrote, or the next startup would revive a terminated
		// session from disk.
		if err := c.store.Clear(ctx); err != nil {
			c.log.Error(ctx, "clearing local state failed", "error", err)
		}
		return false
	}

	// Re-verify as an explicit second step, never recursively, so a
	// successful refresh always yields a populated user.
	st, err := c.api.CheckStatus(ctx, fresh.Access)
	if c.superseded(gen) {
		return false
	}
	if err != nil || !st.Authenticated || st.User == nil {
		c.log.Warn(ctx, "post-refresh status check failed", "error", err)
		c.expire(ctx)
		return false
	}

	c.setAuthenticated(st.User, fresh)
	return true
}

// expire wipes local state, onboarding flag included, and drops to anonymous.
func (c *Controller) expire(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "clearing local state failed", "error", err)
	}
	c.update(func(s *Session) { *s = emptySession() })
}

func (c *Controller) setAuthenticated(user *models.User, pair *models.TokenPair) {
	c.update(func(s *Session) {
		s.State = StateAuthenticated
		s.User = user
		s.Tokens = pair
		s.IsLoading = false
		s.Err = ""
	})
}

// Login authenticates with the backend. On failure the session keeps its
// prior state and Session.Err carries a normalized message. On success the
// preference profile is checked independently; that check can never fail
// the login itself.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.update(func(s *Session) {
		s.IsLoading = true
		s.Err = ""
	})

	res, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.fail(err)
		return err
	}
	if res.User == nil || res.Tokens == nil {
		err := ErrNotAuthenticated
		c.fail(err)
		return err
	}

	if err := c.store.SaveTokens(ctx, res.Tokens); err != nil {
		c.fail(err)
		return err
	}
	c.setAuthenticated(res.User, res.Tokens)

	show, err := c.api.CheckPreferences(ctx, res.Tokens.Access)
	if err != nil {
		c.log.Warn(ctx, "preference profile check failed", "error", err)
		return nil
	}
	if show {
		if err := c.store.SetOnboarding(ctx); err != nil {
			c.log.Error(ctx, "setting onboarding flag failed", "error", err)
		}
	}
	return nil
}

// Register creates an account and signs the user in. A fresh account never
// has a preference profile, so the onboarding flag is set unconditionally.
func (c *Controller) Register(ctx context.Context, req api.RegisterRequest) error {
	c.update(func(s *Session) {
		s.IsLoading = true
		s.Err = ""
	})

	res, err := c.api.Register(ctx, req)
	if err != nil {
		c.fail(err)
		return err
	}
	if res.User == nil || res.Tokens == nil {
		err := ErrNotAuthenticated
		c.fail(err)
		return err
	}

	if err := c.store.SaveTokens(ctx, res.Tokens); err != nil {
		c.fail(err)
		return err
	}
	c.setAuthenticated(res.User, res.Tokens)

	if err := c.store.SetOnboarding(ctx); err != nil {
		c.log.Error(ctx, "setting onboarding flag failed", "error", err)
	}
	return nil
}

// fail records a normalized error and stops loading without touching the
// rest of the session, so a transient error never logs the user out.
func (c *Controller) fail(err error) {
	msg := normalizeError(err)
	c.update(func(s *Session) {
		s.IsLoading = false
		s.Err = msg
	})
}

// Logout invalidates the session. The remote call is best-effort; local
// cleanup happens regardless, and any refresh still in flight is discarded.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	pair := c.session.Tokens
	c.mu.Unlock()

	if pair != nil && pair.Access != "" {
		if err := c.api.Logout(ctx, pair.Access); err != nil {
			c.log.Warn(ctx, "remote logout failed", "error", err)
		}
	}

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "clearing local state failed", "error", err)
	}
	c.update(func(s *Session) { *s = emptySession() })
}

// ReloadProfile re-reads the profile record from the backend and replaces
// the session's user with the server's copy. Failures leave the session
// authenticated.
func (c *Controller) ReloadProfile(ctx context.Context) error {
	access := c.accessToken()
	if access == "" {
		return ErrNotAuthenticated
	}

	user, err := c.api.GetProfile(ctx, access)
	if err != nil {
		c.fail(err)
		return err
	}

	c.update(func(s *Session) {
		s.User = user
		s.Err = ""
	})
	return nil
}

// UpdateProfile pushes profile changes and refreshes the session's user
// record. Failures leave the session authenticated.
func (c *Controller) UpdateProfile(ctx context.Context, fields api.ProfileUpdate) error {
	access := c.accessToken()
	if access == "" {
		return ErrNotAuthenticated
	}

	user, err := c.api.UpdateProfile(ctx, fields, access)
	if err != nil {
		c.fail(err)
		return err
	}

	c.update(func(s *Session) {
		s.User = user
		s.Err = ""
	})
	return nil
}

// ChangePassword changes the password and, on success, runs the logout
// protocol: the server has invalidated every token for the account, this
// client's included.
func (c *Controller) ChangePassword(ctx context.Context, current, next string) (string, error) {
	access := c.accessToken()
	if access == "" {
		return "", ErrNotAuthenticated
	}

	msg, err := c.api.ChangePassword(ctx, api.ChangePasswordRequest{
		CurrentPassword:    current,
		NewPassword:        next,
		NewPasswordConfirm: next,
	}, access)
	if err != nil {
		c.fail(err)
		return "", err
	}

	c.Logout(ctx)
	return msg, nil
}

// ConsumeOnboarding reads and clears the one-shot onboarding signal.
func (c *Controller) ConsumeOnboarding(ctx context.Context) bool {
	set, err := c.store.ConsumeOnboarding(ctx)
	if err != nil {
		c.log.Error(ctx, "consuming onboarding flag failed", "error", err)
		return false
	}
	return set
}

func (c *Controller) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Tokens == nil {
		return ""
	}
	return c.session.Tokens.Access
}

// StartRefreshWatcher refreshes the access token before it expires, using
// the token's own exp claim. Tokens without a readable claim are left to the
// reactive path (a failed status check). Blocks until ctx is done.
func (c *Controller) StartRefreshWatcher(ctx context.Context, interval, leeway time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s := c.Session()
			if !s.IsAuthenticated {
				continue
			}
			exp, err := s.Tokens.AccessExpiresAt()
			if err != nil {
				continue
			}
			if time.Until(exp) > leeway {
				continue
			}
			c.log.Info(ctx, "access token close to expiry, refreshing", "expires_at", exp)
			c.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

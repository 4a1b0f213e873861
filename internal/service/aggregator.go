package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vilaca/portfolio-stats/internal/api"
	"github.com/vilaca/portfolio-stats/internal/api/codeforces"
	"github.com/vilaca/portfolio-stats/internal/api/github"
	"github.com/vilaca/portfolio-stats/internal/api/leetcode"
	"github.com/vilaca/portfolio-stats/internal/domain"
)

// ProfileFetcher fetches the identity profile.
type ProfileFetcher interface {
	FetchUser(ctx context.Context) api.Outcome[github.User]
}

// LeetCodeFetcher fetches judge A statistics.
type LeetCodeFetcher interface {
	FetchStats(ctx context.Context) api.Outcome[leetcode.StatsResponse]
}

// CodeforcesFetcher fetches judge B user info and submission history.
// The two methods are independent sources.
type CodeforcesFetcher interface {
	FetchUserInfo(ctx context.Context) api.Outcome[codeforces.UserInfoResponse]
	FetchSubmissions(ctx context.Context) api.Outcome[codeforces.StatusResponse]
}

// AggregatorConfig holds the dependencies of an Aggregator.
type AggregatorConfig struct {
	Profile     ProfileFetcher
	LeetCode    LeetCodeFetcher
	Codeforces  CodeforcesFetcher
	RecentLimit int
	Logger      *zap.Logger
}

// Aggregator fetches every statistics source concurrently and merges the normalized records.
type Aggregator struct {
	profile     ProfileFetcher
	leetcode    LeetCodeFetcher
	codeforces  CodeforcesFetcher
	recentLimit int
	logger      *zap.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := cfg.RecentLimit
	if limit == 0 {
		limit = MaxRecentSubmissions
	}

	return &Aggregator{
		profile:     cfg.Profile,
		leetcode:    cfg.LeetCode,
		codeforces:  cfg.Codeforces,
		recentLimit: clampRecent(limit),
		logger:      logger,
	}
}

// View is one mounted aggregate: Loading until every source settles, then Ready.
// It never goes back to Loading and is never refreshed.
type View struct {
	ID string

	state atomic.Pointer[domain.Aggregate]
	done  chan struct{}
}

// Loading reports whether any source is still in flight.
func (v *View) Loading() bool {
	return v.state.Load().StillLoading
}

// Done is closed once the view is Ready.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Snapshot returns the current aggregate. While loading it holds fallback records
// with StillLoading set; callers gate presentation on that flag.
func (v *View) Snapshot() domain.Aggregate {
	return *v.state.Load()
}

// Wait blocks until the view is Ready or ctx is done.
// On ctx expiry the loading snapshot is returned with ctx's error.
func (v *View) Wait(ctx context.Context) (domain.Aggregate, error) {
	select {
	case <-v.done:
		return v.Snapshot(), nil
	case <-ctx.Done():
		return v.Snapshot(), ctx.Err()
	}
}

// Mount launches all source fetches and returns immediately with a loading view.
// Cancelling ctx makes in-flight fetches fail over to their fallback records.
func (a *Aggregator) Mount(ctx context.Context) *View {
	v := &View{
		ID:   uuid.NewString(),
		done: make(chan struct{}),
	}

	loading := FallbackAggregate()
	loading.StillLoading = true
	v.state.Store(&loading)

	go a.settle(ctx, v)

	return v
}

// Load mounts a view and waits for it to be Ready.
func (a *Aggregator) Load(ctx context.Context) (domain.Aggregate, string, error) {
	v := a.Mount(ctx)
	agg, err := v.Wait(ctx)
	return agg, v.ID, err
}

// settle runs one goroutine per source. Each goroutine writes only its own cell;
// the cells are merged after the join and published in a single store.
func (a *Aggregator) settle(ctx context.Context, v *View) {
	logger := a.logger.With(zap.String("view", v.ID))

	var (
		profile       domain.ProfileSnapshot
		profileStatus domain.SourceStatus
		lc            domain.LeetCodeStats
		lcStatus      domain.SourceStatus
		cf            domain.CodeforcesStats
		cfStatus      domain.SourceStatus
		recent        []domain.Submission
		recentStatus  domain.SourceStatus
	)

	var g errgroup.Group

	g.Go(func() error {
		out := fetchSource(ctx, a.profile.FetchUser)
		profile, profileStatus = NormalizeProfile(out)
		logOutcome(logger, domain.SourceGitHubProfile, profileStatus, out.Reason())
		return nil
	})

	g.Go(func() error {
		out := fetchSource(ctx, a.leetcode.FetchStats)
		lc, lcStatus = NormalizeLeetCode(out)
		logOutcome(logger, domain.SourceLeetCodeStats, lcStatus, out.Reason())
		return nil
	})

	g.Go(func() error {
		out := fetchSource(ctx, a.codeforces.FetchUserInfo)
		cf, cfStatus = NormalizeCodeforces(out)
		logOutcome(logger, domain.SourceCodeforcesInfo, cfStatus, out.Reason())
		return nil
	})

	g.Go(func() error {
		out := fetchSource(ctx, a.codeforces.FetchSubmissions)
		recent, recentStatus = NormalizeSubmissions(out, a.recentLimit)
		logOutcome(logger, domain.SourceCodeforcesStatus, recentStatus, out.Reason())
		return nil
	})

	// Source goroutines never return errors; failures are already fallbacks.
	_ = g.Wait()

	ready := domain.Aggregate{
		Profile:           profile,
		LeetCode:          lc,
		Codeforces:        cf,
		RecentSubmissions: recent,
		RecentSolved:      RecentSolved(),
		Sources: map[domain.Source]domain.SourceStatus{
			domain.SourceGitHubProfile:    profileStatus,
			domain.SourceLeetCodeStats:    lcStatus,
			domain.SourceCodeforcesInfo:   cfStatus,
			domain.SourceCodeforcesStatus: recentStatus,
		},
	}

	v.state.Store(&ready)
	close(v.done)

	logger.Info("stats settled", zap.Int("fallbacks", countFallbacks(ready.Sources)))
}

// fetchSource calls fetch and turns a panic into an unavailable outcome
// so one misbehaving source cannot take the others down.
func fetchSource[T any](ctx context.Context, fetch func(context.Context) api.Outcome[T]) (out api.Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = api.Unavailable[T](fmt.Errorf("fetcher panicked: %v", r))
		}
	}()
	return fetch(ctx)
}

func logOutcome(logger *zap.Logger, source domain.Source, status domain.SourceStatus, reason error) {
	fields := []zap.Field{
		zap.String("source", string(source)),
		zap.String("status", string(status)),
	}
	if reason != nil {
		fields = append(fields, zap.NamedError("reason", reason))
	}
	logger.Debug("source settled", fields...)
}

func countFallbacks(sources map[domain.Source]domain.SourceStatus) int {
	n := 0
	for _, s := range sources {
		if s == domain.StatusFallback {
			n++
		}
	}
	return n
}

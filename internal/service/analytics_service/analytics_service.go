package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/config"
	"github.com/dinerozz/snippet-analytics-backend/internal/analytics"
	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
	"github.com/gofrs/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrPolicyNeedsTeam = errors.New("merge policy none cannot combine team members")

// SeriesQuery is what a chart asks for. Zero values fall back to per-view defaults.
type SeriesQuery struct {
	Window    entity.WindowSpec
	Metric    analytics.Metric
	Policy    analytics.MergePolicy
	Trendline bool
	Weekday   bool
	Critical  bool
	// Threshold overrides the configured critical threshold.
	Threshold *float64
}

type AnalyticsService struct {
	source SnippetSource
	dir    Directory
	skills SkillStore
	cfg    config.AnalyticsConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewAnalyticsService(source SnippetSource, dir Directory, skills SkillStore, cfg config.AnalyticsConfig, logger *slog.Logger) *AnalyticsService {
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 1
	}
	return &AnalyticsService{
		source: source,
		dir:    dir,
		skills: skills,
		cfg:    cfg,
		logger: logger,
		now:    utils.Now,
	}
}

func (s *AnalyticsService) today() entity.Date {
	return entity.DateOf(s.now())
}

// UserSeries charts one user's snippets. The default policy charts them unmerged.
func (s *AnalyticsService) UserSeries(ctx context.Context, userID uuid.UUID, q SeriesQuery) (*analytics.Result, error) {
	user, err := s.dir.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if q.Policy == "" {
		q.Policy = analytics.MergeNone
	}

	return s.series(ctx, []uuid.UUID{user.ID}, q, "")
}

// TeamSeries charts a team from its members' snippets, averaged per day unless told otherwise.
func (s *AnalyticsService) TeamSeries(ctx context.Context, teamID uuid.UUID, q SeriesQuery) (*analytics.Result, error) {
	team, err := s.dir.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	switch q.Policy {
	case "":
		q.Policy = analytics.MergeDailyAverage
	case analytics.MergeNone:
		return nil, ErrPolicyNeedsTeam
	}

	return s.series(ctx, team.MemberUserIDs, q, team.Name)
}

// TeamSummary averages the team's merged daily scores over all of its snippets.
func (s *AnalyticsService) TeamSummary(ctx context.Context, teamID uuid.UUID) (*entity.TeamSummary, error) {
	team, err := s.dir.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := s.fetchMembers(ctx, team.MemberUserIDs)
	if err != nil {
		return nil, err
	}

	return &entity.TeamSummary{
		ID:           team.ID,
		Name:         team.Name,
		MemberCount:  len(team.MemberUserIDs),
		AverageScore: analytics.TeamAverage(members),
	}, nil
}

// HomeDashboard is the landing view: the week around date, pooled with direct reports
// when the user manages anyone.
func (s *AnalyticsService) HomeDashboard(ctx context.Context, userID uuid.UUID, date entity.Date, trendline bool) (*analytics.Result, error) {
	user, err := s.dir.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ids := []uuid.UUID{user.ID}
	if user.ManagesOthers() {
		managed, err := s.dir.ListManagedUsers(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list managed users: %w", err)
		}
		for _, m := range managed {
			ids = append(ids, m.ID)
		}
	}

	if date.IsZero() {
		date = s.today()
	}

	return s.series(ctx, ids, SeriesQuery{
		Window:    entity.WindowSpec{Kind: entity.WindowAnchored, Anchor: date},
		Policy:    analytics.MergePooled,
		Trendline: trendline,
	}, "")
}

func (s *AnalyticsService) series(ctx context.Context, userIDs []uuid.UUID, q SeriesQuery, label string) (*analytics.Result, error) {
	req := analytics.Request{
		Window:    q.Window,
		Today:     s.today(),
		Policy:    q.Policy,
		Metric:    q.Metric,
		Trendline: q.Trendline,
		Weekday:   q.Weekday,
	}
	if label != "" {
		metric := q.Metric
		if metric == "" {
			metric = analytics.MetricSentiment
		}
		req.Label = label + " " + metric.Label()
	}
	if q.Critical {
		threshold := s.cfg.CriticalThreshold
		if q.Threshold != nil {
			threshold = *q.Threshold
		}
		req.CriticalThreshold = &threshold
	}

	if _, err := analytics.Resolve(req.Window, req.Today); err != nil {
		if errors.Is(err, analytics.ErrInvalidRange) {
			s.logger.Debug("empty result for inverted range", slog.Any("error", err))
			return emptyResult(req), nil
		}
		return nil, err
	}

	members, err := s.fetchMembers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result, err := analytics.Assemble(req, members)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble series: %w", err)
	}

	return result, nil
}

func emptyResult(req analytics.Request) *analytics.Result {
	policy := req.Policy
	if policy == "" {
		policy = analytics.MergeNone
	}
	metric := req.Metric
	if metric == "" {
		metric = analytics.MetricSentiment
	}
	return &analytics.Result{
		Policy: policy,
		Metric: metric,
		Series: []entity.Series{},
		Empty:  true,
	}
}

// fetchMembers loads every member's snippets concurrently and keeps membership order.
// Under the best effort policy failed members are logged and left out, unless all of them fail.
func (s *AnalyticsService) fetchMembers(ctx context.Context, userIDs []uuid.UUID) ([]entity.MemberSnippets, error) {
	fetched := make([]entity.MemberSnippets, len(userIDs))
	failures := make([]error, len(userIDs))
	strict := s.cfg.FetchPolicy == config.FetchPolicyStrict

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FetchConcurrency)

	for i, userID := range userIDs {
		g.Go(func() error {
			snippets, err := s.source.ListByOwner(gctx, userID)
			if err != nil {
				fetchErr := &UpstreamFetchError{UserID: userID, Err: err}
				if strict {
					return fetchErr
				}
				failures[i] = fetchErr
				return nil
			}
			fetched[i] = entity.MemberSnippets{UserID: userID, Snippets: snippets}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	members := make([]entity.MemberSnippets, 0, len(userIDs))
	var firstFailure error
	for i := range userIDs {
		if failures[i] != nil {
			s.logger.Warn("skipping member with failed snippet fetch", slog.Any("error", failures[i]))
			if firstFailure == nil {
				firstFailure = failures[i]
			}
			continue
		}
		members = append(members, fetched[i])
	}

	if len(members) == 0 && firstFailure != nil {
		return nil, firstFailure
	}

	return members, nil
}

// SkillRadar returns the user's latest rating for every skill of their company.
func (s *AnalyticsService) SkillRadar(ctx context.Context, userID uuid.UUID) ([]entity.SkillScore, error) {
	user, err := s.dir.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.CompanyID == nil {
		return []entity.SkillScore{}, nil
	}

	skills, err := s.skills.ListByCompany(ctx, *user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	ratings, err := s.skills.ListRatings(ctx, []uuid.UUID{user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get skill ratings: %w", err)
	}

	return analytics.SkillRadar(user.ID, skills, ratings), nil
}

// SkillHistory charts every rating the user received, one series per skill.
func (s *AnalyticsService) SkillHistory(ctx context.Context, userID uuid.UUID) ([]entity.Series, error) {
	user, err := s.dir.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var skills []entity.Skill
	if user.CompanyID != nil {
		skills, err = s.skills.ListByCompany(ctx, *user.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to get skills: %w", err)
		}
	}

	ratings, err := s.skills.ListRatings(ctx, []uuid.UUID{user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get skill ratings: %w", err)
	}

	return analytics.SkillHistory(skills, ratings), nil
}

func (s *AnalyticsService) SkillMatrix(ctx context.Context, companyID uuid.UUID) ([]entity.SkillMatrixRow, error) {
	users, err := s.dir.ListCompanyUsers(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company users: %w", err)
	}

	skills, err := s.skills.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	userIDs := make([]uuid.UUID, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	ratings, err := s.skills.ListRatings(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill ratings: %w", err)
	}

	return analytics.SkillMatrix(userIDs, skills, ratings), nil
}

package analytics

import (
	"testing"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	communication = entity.Skill{ID: uuid.Must(uuid.FromString("aaaaaaaa-0000-0000-0000-000000000001")), Name: "Communication"}
	ownership     = entity.Skill{ID: uuid.Must(uuid.FromString("aaaaaaaa-0000-0000-0000-000000000002")), Name: "Ownership"}
)

func rating(user uuid.UUID, skill entity.Skill, score float64, at time.Time) entity.SkillRating {
	return entity.SkillRating{UserID: user, SkillID: skill.ID, Score: score, CreatedAt: at}
}

func TestSkillRadarMissingRatingIsZero(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	ratings := []entity.SkillRating{
		rating(alice, communication, 6, now.Add(-48*time.Hour)),
		rating(alice, communication, 8, now),
		rating(bob, ownership, 9, now),
	}

	radar := SkillRadar(alice, []entity.Skill{communication, ownership}, ratings)

	require.Len(t, radar, 2)
	assert.Equal(t, "Communication", radar[0].SkillName)
	assert.Equal(t, 8.0, radar[0].Score, "latest rating wins")
	assert.Equal(t, "Ownership", radar[1].SkillName)
	assert.Zero(t, radar[1].Score)
}

func TestSkillMatrixAveragesOverAllUsers(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	carol := uuid.Must(uuid.FromString("33333333-3333-3333-3333-333333333333"))
	ratings := []entity.SkillRating{
		rating(alice, communication, 7, now),
		rating(bob, communication, 8, now),
		rating(alice, ownership, 5, now),
	}

	rows := SkillMatrix([]uuid.UUID{alice, bob, carol}, []entity.Skill{communication, ownership}, ratings)

	require.Len(t, rows, 2)
	assert.Equal(t, 15.0, rows[0].Total)
	assert.Equal(t, 2, rows[0].Rated)
	assert.Equal(t, 5.0, rows[0].Average)
	assert.Equal(t, 5.0, rows[1].Total)
	assert.Equal(t, 1.7, rows[1].Average)
}

func TestSkillMatrixWithoutUsers(t *testing.T) {
	rows := SkillMatrix(nil, []entity.Skill{communication}, nil)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Average)
	assert.Zero(t, rows[0].Rated)
}

func TestSkillHistoryGroupsRatingsPerSkill(t *testing.T) {
	first := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	second := time.Date(2024, 2, 7, 22, 30, 0, 0, time.FixedZone("EST", -5*3600))
	stray := entity.Skill{ID: uuid.Must(uuid.FromString("aaaaaaaa-0000-0000-0000-000000000009")), Name: "Retired"}

	history := SkillHistory([]entity.Skill{communication, ownership}, []entity.SkillRating{
		rating(alice, ownership, 4, second),
		rating(alice, stray, 3, first),
		rating(alice, ownership, 6, first),
	})

	require.Len(t, history, 2)
	assert.Equal(t, "Ownership", history[0].Label, "unrated skills are left out")
	assert.Equal(t, entity.SeriesSkillHistory, history[0].Kind)
	require.Len(t, history[0].Points, 2)
	assert.Equal(t, "2024-01-03", history[0].Points[0].Date.String())
	assert.Equal(t, 6.0, history[0].Points[0].Value)
	assert.Equal(t, "2024-02-08", history[0].Points[1].Date.String(), "rating days are UTC")
	assert.Equal(t, 4.0, history[0].Points[1].Value)

	assert.Equal(t, "Unknown skill", history[1].Label)
	require.Len(t, history[1].Points, 1)
	assert.Equal(t, 3.0, history[1].Points[0].Value)
}

func TestSkillHistoryWithoutRatings(t *testing.T) {
	assert.Empty(t, SkillHistory([]entity.Skill{communication}, nil))
}

package analytics

import (
	"sort"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
	"github.com/gofrs/uuid"
)

type ratingKey struct {
	userID  uuid.UUID
	skillID uuid.UUID
}

// latestRatings keeps the most recent rating per user and skill.
func latestRatings(ratings []entity.SkillRating) map[ratingKey]entity.SkillRating {
	latest := make(map[ratingKey]entity.SkillRating, len(ratings))
	for _, r := range ratings {
		key := ratingKey{userID: r.UserID, skillID: r.SkillID}
		if prev, ok := latest[key]; !ok || r.CreatedAt.After(prev.CreatedAt) {
			latest[key] = r
		}
	}
	return latest
}

// SkillRadar scores every skill for one user. Skills the user was never rated on score 0.
func SkillRadar(userID uuid.UUID, skills []entity.Skill, ratings []entity.SkillRating) []entity.SkillScore {
	latest := latestRatings(ratings)

	scores := make([]entity.SkillScore, 0, len(skills))
	for _, skill := range skills {
		scores = append(scores, entity.SkillScore{
			SkillID:   skill.ID,
			SkillName: skill.Name,
			Score:     latest[ratingKey{userID: userID, skillID: skill.ID}].Score,
		})
	}
	return scores
}

// SkillMatrix totals each skill across users and averages over all of them,
// counting an unrated user as 0.
func SkillMatrix(userIDs []uuid.UUID, skills []entity.Skill, ratings []entity.SkillRating) []entity.SkillMatrixRow {
	latest := latestRatings(ratings)

	rows := make([]entity.SkillMatrixRow, 0, len(skills))
	for _, skill := range skills {
		row := entity.SkillMatrixRow{SkillID: skill.ID, SkillName: skill.Name}
		for _, userID := range userIDs {
			if r, ok := latest[ratingKey{userID: userID, skillID: skill.ID}]; ok {
				row.Total += r.Score
				row.Rated++
			}
		}
		if len(userIDs) > 0 {
			row.Average = utils.RoundToOneDecimal(row.Total / float64(len(userIDs)))
		}
		rows = append(rows, row)
	}
	return rows
}

const unknownSkillLabel = "Unknown skill"

// SkillHistory turns a user's ratings into one series per rated skill, each point
// dated by the day the rating was given. Series follow the order of skills; ratings
// for skills outside that list share one trailing series.
func SkillHistory(skills []entity.Skill, ratings []entity.SkillRating) []entity.Series {
	sorted := make([]entity.SkillRating, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	known := make(map[uuid.UUID]bool, len(skills))
	for _, skill := range skills {
		known[skill.ID] = true
	}

	bySkill := make(map[uuid.UUID][]entity.AggregatedPoint)
	var unknown []entity.AggregatedPoint
	for _, r := range sorted {
		point := entity.AggregatedPoint{Date: entity.DateOf(r.CreatedAt.UTC()), Value: r.Score}
		if !known[r.SkillID] {
			unknown = append(unknown, point)
			continue
		}
		bySkill[r.SkillID] = append(bySkill[r.SkillID], point)
	}

	history := make([]entity.Series, 0, len(bySkill)+1)
	for _, skill := range skills {
		points, ok := bySkill[skill.ID]
		if !ok {
			continue
		}
		history = append(history, entity.Series{Label: skill.Name, Kind: entity.SeriesSkillHistory, Points: points})
		delete(bySkill, skill.ID)
	}
	if len(unknown) > 0 {
		history = append(history, entity.Series{Label: unknownSkillLabel, Kind: entity.SeriesSkillHistory, Points: unknown})
	}
	return history
}

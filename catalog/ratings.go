package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

type (
	Rating struct {
		ID       int64
		Rating   int
		Review   string
		HasText  bool
		RecipeID int64
		UserID   int64
	}
)

// StoreRating attaches a scored review to a recipe. An empty review is
// stored as null when hasText is false.
func (s *Store) StoreRating(ctx context.Context, r Rating) (int64, error) {
	seq, err := s.nextSeq(ctx, "ratings")
	if err != nil {
		return 0, err
	}
	review := sql.NullString{String: r.Review, Valid: r.HasText}
	_, err = s.db.ExecContext(ctx, `insert into ratings(rating_id, rating, review, recipe_id, user_id) values (?, ?, ?, ?, ?)`,
		seq, r.Rating, review, r.RecipeID, r.UserID)
	if err != nil {
		return 0, fmt.Errorf("unable to store rating for recipe %v, cause %w", r.RecipeID, err)
	}
	return seq, nil
}

// RatingsForRecipe returns every rating attached to the given recipe,
// ordered by rating id. The caller is responsible for checking that the
// recipe itself exists.
func (s *Store) RatingsForRecipe(ctx context.Context, recipeID int64) ([]Rating, error) {
	rows, err := s.db.QueryContext(ctx, `select rating_id, rating, review, recipe_id, user_id from ratings where recipe_id = ? order by rating_id asc`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("unable to list ratings for recipe %v, cause %w", recipeID, err)
	}
	defer rows.Close()
	out := []Rating{}
	for rows.Next() {
		var r Rating
		var review sql.NullString
		err = rows.Scan(&r.ID, &r.Rating, &review, &r.RecipeID, &r.UserID)
		if err != nil {
			return nil, fmt.Errorf("unable to scan rating to output, cause %v", err)
		}
		r.Review, r.HasText = review.String, review.Valid
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list ratings for recipe %v, cause %w", recipeID, err)
	}
	return out, nil
}

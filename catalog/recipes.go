package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type (
	Recipe struct {
		ID               int64
		Title            string
		Description      string
		Ingredients      string
		PreparationSteps string
		CookingTime      int
		ServingSize      int
		CategoryID       int64
		AuthorID         int64
	}

	// RecipeView is a recipe joined with its category name and
	// author username, the shape exposed by the read API.
	RecipeView struct {
		ID               int64
		Title            string
		Description      string
		Ingredients      string
		PreparationSteps string
		CookingTime      int
		ServingSize      int
		Category         string
		Author           string
	}
)

const recipeViewQuery = `select r.recipe_id, r.title, r.description, r.ingredients, r.preparation_steps,
	r.cooking_time, r.serving_size, coalesce(c.name, ''), coalesce(u.username, '')
	from recipes r
	left join categories c on r.category_id = c.category_id
	left join users u on r.author_id = u.user_id`

// StoreCategory ensures a category with the given name exists and
// returns its id.
func (s *Store) StoreCategory(ctx context.Context, name string) (int64, error) {
	seq, err := s.nextSeq(ctx, "categories")
	if err != nil {
		return 0, err
	}
	_, err = s.db.ExecContext(ctx, `insert into categories(category_id, name) values (?, ?) on conflict (name) do nothing`, seq, name)
	if err != nil {
		return 0, fmt.Errorf("unable to store category %v, cause %w", name, err)
	}
	var id int64
	err = s.db.QueryRowContext(ctx, `select category_id from categories where name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, CategoryNotFound{Name: name}
	} else if err != nil {
		return 0, fmt.Errorf("unable to load category %v, cause %w", name, err)
	}
	return id, nil
}

// StoreRecipe persists a new recipe and returns its id.
func (s *Store) StoreRecipe(ctx context.Context, r Recipe) (int64, error) {
	seq, err := s.nextSeq(ctx, "recipes")
	if err != nil {
		return 0, err
	}
	_, err = s.db.ExecContext(ctx, `insert into recipes(recipe_id, title, description, ingredients, preparation_steps, cooking_time, serving_size, category_id, author_id)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, r.Title, r.Description, r.Ingredients, r.PreparationSteps, r.CookingTime, r.ServingSize, r.CategoryID, r.AuthorID)
	if err != nil {
		return 0, fmt.Errorf("unable to store recipe %v, cause %w", r.Title, err)
	}
	return seq, nil
}

// ListRecipes returns every recipe in the catalog ordered by id.
// An empty catalog yields an empty slice, not an error.
func (s *Store) ListRecipes(ctx context.Context) ([]RecipeView, error) {
	rows, err := s.db.QueryContext(ctx, recipeViewQuery+` order by r.recipe_id asc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list recipes, cause %w", err)
	}
	defer rows.Close()
	out := []RecipeView{}
	for rows.Next() {
		var v RecipeView
		err = rows.Scan(&v.ID, &v.Title, &v.Description, &v.Ingredients, &v.PreparationSteps,
			&v.CookingTime, &v.ServingSize, &v.Category, &v.Author)
		if err != nil {
			return nil, fmt.Errorf("unable to scan recipe to output, cause %v", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list recipes, cause %w", err)
	}
	return out, nil
}

// GetRecipe loads a single recipe by its id.
func (s *Store) GetRecipe(ctx context.Context, id int64) (RecipeView, error) {
	var v RecipeView
	err := s.db.QueryRowContext(ctx, recipeViewQuery+` where r.recipe_id = ?`, id).Scan(
		&v.ID, &v.Title, &v.Description, &v.Ingredients, &v.PreparationSteps,
		&v.CookingTime, &v.ServingSize, &v.Category, &v.Author)
	if errors.Is(err, sql.ErrNoRows) {
		return RecipeView{}, RecipeNotFound{ID: id}
	} else if err != nil {
		return RecipeView{}, fmt.Errorf("unable to load recipe %v from catalog, cause %w", id, err)
	}
	return v, nil
}

// RecipeExists reports whether a recipe with the given id is present.
func (s *Store) RecipeExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `select 1 from recipes where recipe_id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to check recipe %v, cause %w", id, err)
	}
	return true, nil
}

// Package api exposes the recipe catalog over HTTP.
//
// The read surface is public on purpose, tokens are issued at login but
// never demanded for reads. Only the admin surface (see admin.go) sits
// behind a security realm.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/kitchenlab/recipebox/auth"
	"github.com/kitchenlab/recipebox/catalog"
	"github.com/kitchenlab/recipebox/internal/logutil"
)

type (
	recipeProjection struct {
		ID               int64  `json:"id"`
		Title            string `json:"title"`
		Description      string `json:"description"`
		Ingredients      string `json:"ingredients"`
		PreparationSteps string `json:"preparation_steps"`
		CookingTime      int    `json:"cooking_time"`
		ServingSize      int    `json:"serving_size"`
		Category         string `json:"category"`
		Author           string `json:"author"`
	}

	ratingProjection struct {
		ID       int64   `json:"id"`
		Rating   int     `json:"rating"`
		Review   *string `json:"review"`
		RecipeID int64   `json:"recipe_id"`
		UserID   int64   `json:"user_id"`
	}

	messageBody struct {
		Message string `json:"message"`
	}

	registrationRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	tokenBody struct {
		AccessToken string `json:"access_token"`
	}
)

// AsHandler builds the public API surface: recipe reads plus the
// registration and login endpoints.
func AsHandler(ctx context.Context, store *catalog.Store, authsvc *auth.Service) (http.Handler, error) {
	router := httprouter.New()
	router.HandlerFunc("GET", "/recipes/", listRecipes(store))
	router.Handle("GET", "/recipes/:id", getRecipe(store))
	router.HandlerFunc("POST", "/recipes/login", login(authsvc))
	router.HandlerFunc("POST", "/recipes/registration", register(authsvc))

	ratings := httprouter.New()
	ratings.Handle("GET", "/:id", listRatings(store))

	// httprouter cannot hold /recipes/:id and /recipes/review-rating/:id
	// in the same tree, so the rating routes hang off their own router.
	mux := http.NewServeMux()
	mux.Handle("/recipes/review-rating/", http.StripPrefix("/recipes/review-rating", ratings))
	mux.Handle("/", router)
	return mux, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	buf, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "unable to encode response, server is mis-behaving", http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	w.Header().Add("Content-Length", strconv.Itoa(len(buf)))
	w.WriteHeader(status)
	w.Write(buf)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

func internalError(w http.ResponseWriter) {
	writeMessage(w, http.StatusInternalServerError, "internal server error")
}

func projectRecipe(v catalog.RecipeView) recipeProjection {
	return recipeProjection{
		ID:               v.ID,
		Title:            v.Title,
		Description:      v.Description,
		Ingredients:      v.Ingredients,
		PreparationSteps: v.PreparationSteps,
		CookingTime:      v.CookingTime,
		ServingSize:      v.ServingSize,
		Category:         v.Category,
		Author:           v.Author,
	}
}

func projectRating(r catalog.Rating) ratingProjection {
	p := ratingProjection{
		ID:       r.ID,
		Rating:   r.Rating,
		RecipeID: r.RecipeID,
		UserID:   r.UserID,
	}
	if r.HasText {
		review := r.Review
		p.Review = &review
	}
	return p
}

func listRecipes(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logutil.GetOrDefault(r.Context())
		views, err := store.ListRecipes(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("Unable to list recipes")
			internalError(w)
			return
		}
		out := make([]recipeProjection, 0, len(views))
		for _, v := range views {
			out = append(out, projectRecipe(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getRecipe(store *catalog.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		log := logutil.GetOrDefault(r.Context())
		id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusNotFound, "Recipe not found")
			return
		}
		view, err := store.GetRecipe(r.Context(), id)
		var notFound catalog.RecipeNotFound
		if errors.As(err, &notFound) {
			writeMessage(w, http.StatusNotFound, "Recipe not found")
			return
		} else if err != nil {
			log.Error().Err(err).Int64("recipe.id", id).Msg("Unable to load recipe")
			internalError(w)
			return
		}
		writeJSON(w, http.StatusOK, projectRecipe(view))
	}
}

func listRatings(store *catalog.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		log := logutil.GetOrDefault(r.Context())
		id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusNotFound, "Recipe not found")
			return
		}
		exists, err := store.RecipeExists(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Int64("recipe.id", id).Msg("Unable to check recipe")
			internalError(w)
			return
		}
		if !exists {
			writeMessage(w, http.StatusNotFound, "Recipe not found")
			return
		}
		ratings, err := store.RatingsForRecipe(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Int64("recipe.id", id).Msg("Unable to list ratings")
			internalError(w)
			return
		}
		out := make([]ratingProjection, 0, len(ratings))
		for _, rt := range ratings {
			out = append(out, projectRating(rt))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func register(authsvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logutil.GetOrDefault(r.Context())
		var req registrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		for _, field := range []struct {
			name, value string
		}{
			{"username", req.Username},
			{"email", req.Email},
			{"password", req.Password},
		} {
			if field.value == "" {
				writeMessage(w, http.StatusBadRequest, field.name+" is required")
				return
			}
		}
		err := authsvc.Register(r.Context(), req.Username, req.Email, req.Password)
		var dup catalog.DuplicateUser
		if errors.As(err, &dup) {
			writeMessage(w, http.StatusConflict, "Username already taken")
			return
		} else if err != nil {
			log.Error().Err(err).Msg("Unable to register user")
			internalError(w)
			return
		}
		writeMessage(w, http.StatusCreated, "User created successfully")
	}
}

func login(authsvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logutil.GetOrDefault(r.Context())
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Username == "" {
			writeMessage(w, http.StatusBadRequest, "username is required")
			return
		}
		if req.Password == "" {
			writeMessage(w, http.StatusBadRequest, "password is required")
			return
		}
		token, err := authsvc.Login(r.Context(), req.Username, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		} else if err != nil {
			log.Error().Err(err).Msg("Unable to login user")
			internalError(w)
			return
		}
		writeJSON(w, http.StatusOK, tokenBody{AccessToken: token})
	}
}

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/kitchenlab/recipebox/auth"
	"github.com/kitchenlab/recipebox/catalog"
	"github.com/kitchenlab/recipebox/internal/testutil"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
)

var testSecret = []byte("a-very-long-test-secret")

func acquireHandler(ctx context.Context, t *testing.T, store *catalog.Store) http.Handler {
	authsvc := auth.NewService(store, auth.InMemoryTokenStore(10*time.Minute), testSecret, time.Hour)
	handler, err := AsHandler(ctx, store, authsvc)
	if err != nil {
		t.Fatal(err)
	}
	return handler
}

func TestListRecipesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireCatalog(ctx, t, "api")
	defer cleanup()
	handler := acquireHandler(ctx, t, store)

	apitest.Handler(handler).
		Get("/recipes/").
		Expect(t).
		Status(http.StatusOK).
		Body(`[]`).
		End()
}

func TestListRecipes(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquirePopulatedCatalog(ctx, t)
	defer cleanup()
	handler := acquireHandler(ctx, t, store)

	apitest.Handler(handler).
		Get("/recipes/").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 2)).
		Assert(jsonpath.Equal(`$[0].title`, "Pumpkin soup")).
		Assert(jsonpath.Equal(`$[0].category`, "soups")).
		Assert(jsonpath.Equal(`$[0].author`, "carol")).
		Assert(jsonpath.Equal(`$[1].title`, "Lemon tart")).
		End()
}

func TestGetRecipeByID(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquirePopulatedCatalog(ctx, t)
	defer cleanup()
	handler := acquireHandler(ctx, t, store)

	// the projection id must match the requested id, not an arbitrary row
	apitest.Handler(handler).
		Get("/recipes/2").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.id`, float64(2))).
		Assert(jsonpath.Equal(`$.title`, "Lemon tart")).
		Assert(jsonpath.Equal(`$.serving_size`, float64(8))).
		End()

	apitest.Handler(handler).
		Get("/recipes/999").
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"message":"Recipe not found"}`).
		End()

	apitest.Handler(handler).
		Get("/recipes/not-a-number").
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"message":"Recipe not found"}`).
		End()
}

func TestListRatings(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquirePopulatedCatalog(ctx, t)
	defer cleanup()
	handler := acquireHandler(ctx, t, store)

	apitest.Handler(handler).
		Get("/recipes/review-rating/1").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 2)).
		Assert(jsonpath.Equal(`$[0].rating`, float64(5))).
		Assert(jsonpath.Equal(`$[0].review`, "family favourite")).
		Assert(jsonpath.Equal(`$[0].recipe_id`, float64(1))).
		End()

	// a recipe without ratings yields an empty list, not a 404
	apitest.Handler(handler).
		Get("/recipes/review-rating/2").
		Expect(t).
		Status(http.StatusOK).
		Body(`[]`).
		End()

	apitest.Handler(handler).
		Get("/recipes/review-rating/999").
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"message":"Recipe not found"}`).
		End()
}

func TestRegistration(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireCatalog(ctx, t, "api")
	defer cleanup()
	handler := acquireHandler(ctx, t, store)

	apitest.Handler(handler).
		Post("/recipes/registration").
		JSON(`{"username":"alice","email":"a@x.com","password":"secret123"}`).
		Expect(t).
		Status(http.StatusCreated).
		Body(`{"message":"User created successfully"}`).
		End()

	apitest.Handler(handler).
		Post("/recipes/registration").
		JSON(`{"username":"alice","email":"other@x.com","password":"different"}`).
		Expect(t).
		Status(http.StatusConflict).
		Body(`{"message":"Username already taken"}`).
		End()

	apitest.Handler(handler).
		Post("/recipes/registration").
		JSON(`{"username":"bob","email":"b@x.com"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"password is required"}`).
		End()

	apitest.Handler(handler).
		Post("/recipes/registration").
		Body(`not json`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestLoginFlow(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireCatalog(ctx, t, "api")
	defer cleanup()
	handler := acquireHandler(ctx, t, store)

	apitest.Handler(handler).
		Post("/recipes/registration").
		JSON(`{"username":"alice","email":"a@x.com","password":"secret123"}`).
		Expect(t).
		Status(http.StatusCreated).
		End()

	// wrong password and unknown user share one uniform answer
	apitest.Handler(handler).
		Post("/recipes/login").
		JSON(`{"username":"alice","password":"wrong"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"message":"Invalid username or password"}`).
		End()

	apitest.Handler(handler).
		Post("/recipes/login").
		JSON(`{"username":"nobody","password":"secret123"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"message":"Invalid username or password"}`).
		End()

	apitest.Handler(handler).
		Post("/recipes/login").
		JSON(`{"username":"alice","password":"secret123"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present(`$.access_token`)).
		End()

	apitest.Handler(handler).
		Post("/recipes/login").
		JSON(`{"username":"alice"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"password is required"}`).
		End()
}

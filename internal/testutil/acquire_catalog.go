package testutil

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kitchenlab/recipebox/catalog"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireCatalog opens a writable catalog in a temporary directory and
// returns it together with a cleanup function.
func AcquireCatalog(ctx context.Context, t TestLog, name string) (*catalog.Store, func()) {
	dir, err := os.MkdirTemp("", "recipebox-tests")
	if err != nil {
		t.Fatal(err)
	}
	abspath := filepath.Join(dir, name+".db")
	store, err := catalog.Open(ctx, abspath, true)
	if err != nil {
		t.Fatal(err)
	}
	return store, func() {
		err := store.Close()
		if err != nil {
			t.Log("unable to close catalog", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

// AcquirePopulatedCatalog opens a temporary catalog seeded with one
// author, two categories, two recipes and ratings on the first one.
func AcquirePopulatedCatalog(ctx context.Context, t TestLog) (*catalog.Store, func()) {
	store, cleanup := AcquireCatalog(ctx, t, "populated")
	authorID, err := store.CreateUser(ctx, "carol", "carol@example.com", "not-a-real-digest")
	if err != nil {
		t.Fatal(err)
	}
	soups, err := store.StoreCategory(ctx, "soups")
	if err != nil {
		t.Fatal(err)
	}
	desserts, err := store.StoreCategory(ctx, "desserts")
	if err != nil {
		t.Fatal(err)
	}
	first, err := store.StoreRecipe(ctx, catalog.Recipe{
		Title:            "Pumpkin soup",
		Description:      "A thick autumn soup",
		Ingredients:      "pumpkin, cream, nutmeg",
		PreparationSteps: "roast the pumpkin, blend, season",
		CookingTime:      45,
		ServingSize:      4,
		CategoryID:       soups,
		AuthorID:         authorID,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.StoreRecipe(ctx, catalog.Recipe{
		Title:            "Lemon tart",
		Description:      "Sharp and sweet",
		Ingredients:      "lemon, butter, sugar, flour",
		PreparationSteps: "blind bake, fill, chill",
		CookingTime:      90,
		ServingSize:      8,
		CategoryID:       desserts,
		AuthorID:         authorID,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.StoreRating(ctx, catalog.Rating{Rating: 5, Review: "family favourite", HasText: true, RecipeID: first, UserID: authorID})
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.StoreRating(ctx, catalog.Rating{Rating: 3, RecipeID: first, UserID: authorID})
	if err != nil {
		t.Fatal(err)
	}
	return store, cleanup
}

// Package importer seeds a catalog from CSV datasets. The read API
// never creates recipes, so this is how data gets into the catalog.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kitchenlab/recipebox/catalog"
)

// Recipe CSV columns, in order. Categories and authors are created on
// demand; authors created here carry an unusable password digest.
var recipeHeader = []string{
	"title", "description", "ingredients", "preparation_steps",
	"cooking_time", "serving_size", "category", "author",
}

type (
	InvalidImportRow struct {
		Line  int
		Cause string
	}
)

func (i InvalidImportRow) Error() string {
	return fmt.Sprintf("invalid row at line %v: %v", i.Line, i.Cause)
}

// Recipes reads recipe rows from the CSV input and stores them in the
// catalog, returning the number of imported recipes. The first record
// must match recipeHeader.
func Recipes(ctx context.Context, store *catalog.Store, input io.Reader) (int, error) {
	reader := csv.NewReader(input)
	reader.FieldsPerRecord = len(recipeHeader)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("unable to read csv header, cause %w", err)
	}
	for i, col := range recipeHeader {
		if header[i] != col {
			return 0, InvalidImportRow{Line: 1, Cause: fmt.Sprintf("expecting column %v got %v", col, header[i])}
		}
	}
	authors := map[string]int64{}
	categories := map[string]int64{}
	count := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return count, fmt.Errorf("unable to read csv row, cause %w", err)
		}
		cookingTime, err := strconv.Atoi(row[4])
		if err != nil {
			return count, InvalidImportRow{Line: line, Cause: "cooking_time must be an integer"}
		}
		servingSize, err := strconv.Atoi(row[5])
		if err != nil {
			return count, InvalidImportRow{Line: line, Cause: "serving_size must be an integer"}
		}
		categoryID, err := ensureCategory(ctx, store, categories, row[6])
		if err != nil {
			return count, err
		}
		authorID, err := ensureAuthor(ctx, store, authors, row[7])
		if err != nil {
			return count, err
		}
		_, err = store.StoreRecipe(ctx, catalog.Recipe{
			Title:            row[0],
			Description:      row[1],
			Ingredients:      row[2],
			PreparationSteps: row[3],
			CookingTime:      cookingTime,
			ServingSize:      servingSize,
			CategoryID:       categoryID,
			AuthorID:         authorID,
		})
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func ensureCategory(ctx context.Context, store *catalog.Store, cache map[string]int64, name string) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	id, err := store.StoreCategory(ctx, name)
	if err != nil {
		return 0, err
	}
	cache[name] = id
	return id, nil
}

func ensureAuthor(ctx context.Context, store *catalog.Store, cache map[string]int64, username string) (int64, error) {
	if id, ok := cache[username]; ok {
		return id, nil
	}
	user, err := store.LookupUser(ctx, username)
	if err == nil {
		cache[username] = user.ID
		return user.ID, nil
	}
	var notFound catalog.UserNotFound
	if !errors.As(err, &notFound) {
		return 0, err
	}
	// locked digest, imported authors have no usable password
	id, err := store.CreateUser(ctx, username, username+"@imported.invalid", "!imported")
	if err != nil {
		return 0, err
	}
	cache[username] = id
	return id, nil
}

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	authapi "github.com/kitchenlab/recipebox/auth/api"
	"github.com/kitchenlab/recipebox/catalog"
	"github.com/kitchenlab/recipebox/catalog/importer"
	"github.com/kitchenlab/recipebox/internal/logutil"
)

type (
	importResult struct {
		Imported int `json:"imported"`
	}
)

// AsAdminHandler builds the private API surface. Every route sits
// behind the given security realm, writes are never open to anonymous
// callers.
func AsAdminHandler(ctx context.Context, store *catalog.Store, realm *authapi.SecurityRealm) (http.Handler, error) {
	router := httprouter.New()
	router.HandlerFunc("POST", "/catalog/import", importRecipes(store))
	return realm.Protect(router), nil
}

func importRecipes(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logutil.GetOrDefault(r.Context())
		n, err := importer.Recipes(r.Context(), store, r.Body)
		if err != nil {
			var badRow importer.InvalidImportRow
			if errors.As(err, &badRow) {
				writeMessage(w, http.StatusBadRequest, badRow.Error())
				return
			}
			log.Error().Err(err).Int("recipes.imported", n).Msg("Unable to import recipes")
			internalError(w)
			return
		}
		writeJSON(w, http.StatusOK, importResult{Imported: n})
	}
}

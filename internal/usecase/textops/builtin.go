package textops

import (
	"errors"

	"github.com/Dr-Obek/textfilter/internal/domain"
	"github.com/Dr-Obek/textfilter/internal/ports"
)

// Builtin returns the registry of the six supported operations, in the
// order they are listed to users. Slugify and remove_diacritics delegate
// to the given collaborators.
func Builtin(sl ports.Slugger, tr ports.Transliterator) (*domain.Registry, error) {
	if sl == nil || tr == nil {
		return nil, &domain.OpError{
			Op:   "textops.builtin",
			Kind: domain.KindInvalidRegistry,
			Err:  errors.New("slugger and transliterator are required"),
		}
	}

	return domain.NewRegistry(
		domain.Operation{Name: domain.OpLowercase, Transform: Lowercase},
		domain.Operation{Name: domain.OpUppercase, Transform: Uppercase},
		domain.Operation{Name: domain.OpNoSpaces, Transform: NoSpaces},
		domain.Operation{Name: domain.OpSlugify, Transform: sl.Slugify},
		domain.Operation{Name: domain.OpRevert, Transform: Revert},
		domain.Operation{Name: domain.OpRemoveDiacritics, Transform: tr.Transliterate},
	)
}

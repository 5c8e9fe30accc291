package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validate checks that the file at path is a structurally sound PDF before
// any extraction work is attempted. Court dockets are occasionally truncated
// in transit; validating up front turns those into a clean per-document skip
// instead of a half-parsed record.
func Validate(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return &UnreadableDocumentError{Path: path, Err: err}
	}
	return nil
}

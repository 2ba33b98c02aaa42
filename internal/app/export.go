package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"appbar/internal/types"
)

func (s Service) Export(req ExportRequest, inventory types.Inventory) error {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export path is required")
	}
	if s.Writer == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no inventory writer configured")
	}
	return s.Writer.WriteInventory(path, req.Format, inventory)
}
